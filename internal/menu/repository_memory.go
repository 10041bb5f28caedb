package menu

import "context"

type MemorySource struct {
	dishes []RawDish
	err    error
}

func NewMemorySource(dishes []RawDish) *MemorySource {
	return &MemorySource{dishes: dishes}
}

// NewFailingSource returns a source whose Load always fails with err.
func NewFailingSource(err error) *MemorySource {
	return &MemorySource{err: err}
}

func (s *MemorySource) Load(ctx context.Context) ([]RawDish, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]RawDish, len(s.dishes))
	copy(out, s.dishes)
	return out, nil
}
