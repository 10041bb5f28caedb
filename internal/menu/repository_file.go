package menu

import (
	"context"
	"fmt"
	"os"
)

// FileSource reads the menu from a JSON file on disk.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Load(ctx context.Context) ([]RawDish, error) {
	if s.path == "" {
		return nil, ErrSourceNotConfigured
	}
	if err := ValidateMenuFile(s.path); err != nil {
		return nil, fmt.Errorf("menu file %s: %w", s.path, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}

	dishes, err := ParseRawMenu(data)
	if err != nil {
		return nil, fmt.Errorf("parse menu file %s: %w", s.path, err)
	}
	return dishes, nil
}
