package preset

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/stairforge/pkg/errors"
	"github.com/matzehuels/stairforge/pkg/stair"
)

// stores returns one of each local backend for shared behavior tests.
func stores(t *testing.T) map[string]Store {
	t.Helper()
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   fs,
	}
}

func TestStorePutGet(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()
			ctx := context.Background()

			params := stair.Default()
			params.StepCount = 14
			params.Railings = true

			saved, err := store.Put(ctx, Preset{Name: "main-hall", Params: params})
			if err != nil {
				t.Fatalf("Put: %v", err)
			}
			if saved.ID == "" {
				t.Error("Put should assign an ID")
			}
			if saved.CreatedAt.IsZero() || saved.UpdatedAt.IsZero() {
				t.Error("Put should set timestamps")
			}

			got, err := store.Get(ctx, "main-hall")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if got.Params != params {
				t.Errorf("Params = %+v, want %+v", got.Params, params)
			}
			if got.ID != saved.ID {
				t.Errorf("ID = %s, want %s", got.ID, saved.ID)
			}
		})
	}
}

func TestStoreUpsertKeepsIdentity(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()
			ctx := context.Background()

			first, err := store.Put(ctx, Preset{Name: "spiral", Params: stair.Default()})
			if err != nil {
				t.Fatal(err)
			}

			time.Sleep(5 * time.Millisecond)

			updated := stair.Default()
			updated.Curved = true
			second, err := store.Put(ctx, Preset{Name: "spiral", Params: updated})
			if err != nil {
				t.Fatal(err)
			}

			if second.ID != first.ID {
				t.Error("upsert should keep the preset ID")
			}
			if !second.CreatedAt.Equal(first.CreatedAt) {
				t.Error("upsert should keep the creation time")
			}
			if !second.UpdatedAt.After(first.UpdatedAt) {
				t.Error("upsert should advance the update time")
			}
			if got, _ := store.Get(ctx, "spiral"); !got.Params.Curved {
				t.Error("upsert should replace the parameters")
			}
		})
	}
}

func TestStoreListSorted(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()
			ctx := context.Background()

			for _, n := range []string{"cellar", "attic", "balcony"} {
				if _, err := store.Put(ctx, Preset{Name: n, Params: stair.Default()}); err != nil {
					t.Fatal(err)
				}
			}

			presets, err := store.List(ctx)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(presets) != 3 {
				t.Fatalf("len = %d, want 3", len(presets))
			}
			for i, want := range []string{"attic", "balcony", "cellar"} {
				if presets[i].Name != want {
					t.Errorf("presets[%d].Name = %s, want %s", i, presets[i].Name, want)
				}
			}
		})
	}
}

func TestStoreDelete(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()
			ctx := context.Background()

			if _, err := store.Put(ctx, Preset{Name: "temp", Params: stair.Default()}); err != nil {
				t.Fatal(err)
			}
			if err := store.Delete(ctx, "temp"); err != nil {
				t.Fatalf("Delete: %v", err)
			}

			_, err := store.Get(ctx, "temp")
			if errors.GetCode(err) != errors.ErrCodePresetNotFound {
				t.Errorf("Get after delete: code = %s", errors.GetCode(err))
			}
			if err := store.Delete(ctx, "temp"); errors.GetCode(err) != errors.ErrCodePresetNotFound {
				t.Errorf("double delete: code = %s", errors.GetCode(err))
			}
		})
	}
}

func TestStoreNotFound(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()

			_, err := store.Get(context.Background(), "missing")
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.GetCode(err) != errors.ErrCodePresetNotFound {
				t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodePresetNotFound)
			}
		})
	}
}

func TestStoreRejectsInvalid(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()
			ctx := context.Background()

			// Invalid name.
			if _, err := store.Put(ctx, Preset{Name: "../escape", Params: stair.Default()}); err == nil {
				t.Error("path-like names should be rejected")
			}
			if _, err := store.Get(ctx, ""); err == nil {
				t.Error("empty name should be rejected")
			}

			// Invalid parameters.
			p := stair.Default()
			p.StepCount = 0
			_, err := store.Put(ctx, Preset{Name: "broken", Params: p})
			if errors.GetCode(err) != errors.ErrCodeInvalidParameter {
				t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidParameter)
			}
		})
	}
}

func TestFileStoreOnDisk(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	ctx := context.Background()

	if _, err := store.Put(ctx, Preset{Name: "porch", Params: stair.Default()}); err != nil {
		t.Fatal(err)
	}

	// One TOML file per preset, hand-editable.
	if _, err := os.Stat(filepath.Join(dir, "porch.toml")); err != nil {
		t.Errorf("preset file missing: %v", err)
	}

	// Unparseable files are skipped by List.
	if err := os.WriteFile(filepath.Join(dir, "garbage.toml"), []byte("{not toml"), 0600); err != nil {
		t.Fatal(err)
	}
	presets, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(presets) != 1 {
		t.Errorf("len = %d, want 1 (garbage skipped)", len(presets))
	}

	// A fresh store over the same directory sees the preset.
	again, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := again.Get(ctx, "porch"); err != nil {
		t.Errorf("reopened store should see stored preset: %v", err)
	}
}
