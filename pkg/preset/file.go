package preset

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stairforge/pkg/errors"
)

// FileStore is a file-based preset store for CLI applications.
// Presets are stored as TOML files in a config directory, one per preset,
// so they stay hand-editable.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a new file-based preset store.
// If baseDir is empty, defaults to ~/.config/stairforge/presets/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "stairforge", "presets")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create preset dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) presetPath(name string) string {
	return filepath.Join(s.baseDir, name+".toml")
}

func (s *FileStore) Get(ctx context.Context, name string) (Preset, error) {
	if err := errors.ValidatePresetName(name); err != nil {
		return Preset{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read(name)
}

// read loads a single preset file. Callers hold the lock.
func (s *FileStore) read(name string) (Preset, error) {
	data, err := os.ReadFile(s.presetPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return Preset{}, notFound(name)
		}
		return Preset{}, fmt.Errorf("read preset file: %w", err)
	}

	var p Preset
	if err := toml.Unmarshal(data, &p); err != nil {
		return Preset{}, errors.Wrap(errors.ErrCodeInvalidPreset, err, "parse preset %q", name)
	}
	return p, nil
}

func (s *FileStore) List(ctx context.Context) ([]Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read preset dir: %w", err)
	}

	presets := make([]Preset, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".toml")
		p, err := s.read(name)
		if err != nil {
			// Skip files that are not valid presets.
			continue
		}
		presets = append(presets, p)
	}

	slices.SortFunc(presets, func(a, b Preset) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return presets, nil
}

func (s *FileStore) Put(ctx context.Context, p Preset) (Preset, error) {
	if err := p.Validate(); err != nil {
		return Preset{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var prev *Preset
	if existing, err := s.read(p.Name); err == nil {
		prev = &existing
	}
	p = stamp(p, prev)

	data, err := toml.Marshal(p)
	if err != nil {
		return Preset{}, fmt.Errorf("marshal preset: %w", err)
	}
	if err := os.WriteFile(s.presetPath(p.Name), data, 0600); err != nil {
		return Preset{}, fmt.Errorf("write preset file: %w", err)
	}
	return p, nil
}

func (s *FileStore) Delete(ctx context.Context, name string) error {
	if err := errors.ValidatePresetName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.presetPath(name)); err != nil {
		if os.IsNotExist(err) {
			return notFound(name)
		}
		return fmt.Errorf("remove preset file: %w", err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

// Path returns the base directory for preset files.
func (s *FileStore) Path() string {
	return s.baseDir
}

var _ Store = (*FileStore)(nil)
