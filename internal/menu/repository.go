package menu

import (
	"context"
	"errors"
)

var (
	ErrSourceNotConfigured = errors.New("menu source not configured")
	ErrUnknownSource       = errors.New("unknown menu source")
)

// Source supplies the raw menu. Implementations do I/O; nothing downstream does.
type Source interface {
	Load(ctx context.Context) ([]RawDish, error)
}
