// Package preset provides named parameter set storage.
//
// A preset captures a full staircase parameter set under a user-chosen name
// so it can be recalled from the CLI, the panel, or the API. The Store
// interface supports multiple backends:
//   - memory: In-memory storage for development/testing
//   - file: TOML files for CLI applications
//   - mongo: MongoDB-backed storage for server deployments
//
// # Usage
//
// Create a store and save a preset:
//
//	store, err := preset.NewFileStore("")  // Uses ~/.config/stairforge/presets/
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	saved, err := store.Put(ctx, preset.Preset{
//	    Name:   "spiral-tight",
//	    Params: params,
//	})
//
// Recall it later:
//
//	p, err := store.Get(ctx, "spiral-tight")
//	if err != nil {
//	    return err
//	}
//	layout, err := stair.Generate(p.Params)
package preset

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/stairforge/pkg/errors"
	"github.com/matzehuels/stairforge/pkg/stair"
)

// Preset is a named, stored parameter set.
type Preset struct {
	ID        string           `json:"id" toml:"id" bson:"_id"`
	Name      string           `json:"name" toml:"name" bson:"name"`
	Params    stair.Parameters `json:"params" toml:"params" bson:"params"`
	CreatedAt time.Time        `json:"created_at" toml:"created_at" bson:"created_at"`
	UpdatedAt time.Time        `json:"updated_at" toml:"updated_at" bson:"updated_at"`
}

// Validate checks the preset name and its parameter set.
func (p *Preset) Validate() error {
	if err := errors.ValidatePresetName(p.Name); err != nil {
		return err
	}
	return p.Params.Validate()
}

// Store is the interface for preset storage backends.
//
// Presets are addressed by name; Put upserts, preserving the ID and creation
// time of an existing preset with the same name.
type Store interface {
	// Get retrieves a preset by name.
	// Returns an error with code PRESET_NOT_FOUND if it doesn't exist.
	Get(ctx context.Context, name string) (Preset, error)

	// List returns all presets, sorted by name.
	List(ctx context.Context) ([]Preset, error)

	// Put stores a preset and returns the stored copy with ID and
	// timestamps filled in.
	Put(ctx context.Context, p Preset) (Preset, error)

	// Delete removes a preset by name.
	// Returns an error with code PRESET_NOT_FOUND if it doesn't exist.
	Delete(ctx context.Context, name string) error

	// Close releases backend resources.
	Close() error
}

// notFound builds the standard missing-preset error.
func notFound(name string) error {
	return errors.New(errors.ErrCodePresetNotFound, "preset %q not found", name)
}

// stamp fills in the ID and timestamps for an upsert. The previous preset,
// if any, keeps its identity and creation time.
func stamp(p Preset, prev *Preset) Preset {
	now := time.Now().UTC()
	if prev != nil {
		p.ID = prev.ID
		p.CreatedAt = prev.CreatedAt
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	return p
}
