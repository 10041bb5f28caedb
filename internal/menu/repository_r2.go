package menu

import (
	"context"
	"fmt"
)

// ObjectStore downloads objects from a bucket.
type ObjectStore interface {
	Download(ctx context.Context, key string) ([]byte, error)
}

// R2Source reads the menu document from object storage.
type R2Source struct {
	store ObjectStore
	key   string
}

func NewR2Source(store ObjectStore, key string) *R2Source {
	return &R2Source{store: store, key: key}
}

func (s *R2Source) Load(ctx context.Context) ([]RawDish, error) {
	if s.store == nil || s.key == "" {
		return nil, ErrSourceNotConfigured
	}
	if err := ValidateMenuFile(s.key); err != nil {
		return nil, fmt.Errorf("menu object %s: %w", s.key, err)
	}

	data, err := s.store.Download(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("download menu object %s: %w", s.key, err)
	}

	dishes, err := ParseRawMenu(data)
	if err != nil {
		return nil, fmt.Errorf("parse menu object %s: %w", s.key, err)
	}
	return dishes, nil
}
