package profile

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"kleo/generator"
)

// FileStore keeps the profile in a single JSON file. A missing file is
// not an error: first run uses the defaults. Fields added after a blob
// was written decode to the empty string (every field is a plain
// string), so no migration logic is needed.
type FileStore struct {
	Path string
}

func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("profile file path is required")
	}
	return &FileStore{Path: path}, nil
}

func (f *FileStore) Load(_ context.Context) (generator.BrandProfile, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return generator.BrandProfile{}, err
	}
	var p generator.BrandProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return generator.BrandProfile{}, err
	}
	return p, nil
}

func (f *FileStore) Save(_ context.Context, p generator.BrandProfile) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(f.Path, data, 0o644)
}
