package menu

import (
	"context"
	"sync/atomic"

	"github.com/Shangshirestaurant/ShangShiAllergenSelector/internal/allergen"
	"go.uber.org/zap"
)

// Service holds the normalized menu and answers filter queries against it.
// The menu is swapped as a whole on Load and never mutated afterwards, so
// concurrent readers need no locking.
type Service struct {
	source Source
	rules  []CategoryRule
	log    *zap.Logger

	dishes atomic.Pointer[[]Dish]
}

// NewService builds a service over source. rules enables category inference
// for dishes without a category; pass nil to disable it.
func NewService(source Source, rules []CategoryRule, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{source: source, rules: rules, log: log}
	empty := []Dish{}
	s.dishes.Store(&empty)
	return s
}

// --------------------------------------------------
// Load menu (ONCE AT STARTUP)
// --------------------------------------------------

// Load reads and normalizes the menu. When the source fails, the service
// falls back to an empty menu and the error is returned for logging.
func (s *Service) Load(ctx context.Context) error {
	if s.source == nil {
		s.replace([]Dish{})
		return ErrSourceNotConfigured
	}

	raw, err := s.source.Load(ctx)
	if err != nil {
		s.replace([]Dish{})
		s.log.Error("menu load failed, serving empty menu", zap.Error(err))
		return err
	}

	dishes := Normalize(raw)
	if len(s.rules) > 0 {
		dishes = InferCategories(dishes, s.rules)
	}
	s.replace(dishes)

	s.log.Info("menu loaded",
		zap.Int("dishes", len(dishes)),
		zap.Int("categories", len(s.Categories())),
		zap.Strings("allergens", s.AllergenCodes()),
	)
	return nil
}

func (s *Service) replace(dishes []Dish) {
	s.dishes.Store(&dishes)
}

// Dishes returns the current menu. Callers must not modify it.
func (s *Service) Dishes() []Dish {
	return *s.dishes.Load()
}

// Filter evaluates sel against the current menu.
func (s *Service) Filter(sel Selection) Result {
	return Evaluate(s.Dishes(), sel)
}

// Categories lists distinct categories in menu order.
func (s *Service) Categories() []string {
	seen := map[string]bool{}
	out := []string{}
	for _, d := range s.Dishes() {
		if d.Uncategorized() || seen[d.Category] {
			continue
		}
		seen[d.Category] = true
		out = append(out, d.Category)
	}
	return out
}

// AllergenCodes lists the codes used by the menu in chip order.
func (s *Service) AllergenCodes() []string {
	seen := map[string]bool{}
	codes := []string{}
	for _, d := range s.Dishes() {
		for _, c := range d.Allergens {
			if !seen[c] {
				seen[c] = true
				codes = append(codes, c)
			}
		}
	}
	return allergen.Sort(codes)
}
