package menu

import (
	"encoding/json"
	"sort"
	"strings"
)

// Mode decides how selected allergen codes filter dishes.
type Mode string

const (
	// ModeSafe hides every dish containing a selected code.
	ModeSafe Mode = "SAFE"
	// ModeContains shows only dishes containing at least one selected code.
	ModeContains Mode = "CONTAINS"
)

// ParseMode maps user input to a Mode. Only "contains" (any case) selects
// ModeContains; everything else falls back to ModeSafe.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), string(ModeContains)) {
		return ModeContains
	}
	return ModeSafe
}

func (m Mode) normalized() Mode {
	if m == ModeContains {
		return ModeContains
	}
	return ModeSafe
}

// Label is the long-form description shown next to the mode switch.
func (m Mode) Label() string {
	if m.normalized() == ModeContains {
		return "CONTAINS (show dishes that CONTAIN selected allergens)"
	}
	return "SAFE (hide dishes that CONTAIN selected allergens)"
}

// Selection is the user's current filter choice.
//
// It is a value: every method returns a new Selection and leaves the
// receiver untouched, so callers can rebuild it from UI state on each event
// without anything carrying over from earlier toggles.
type Selection struct {
	allergens map[string]struct{}

	Mode     Mode
	Category string
	Search   string
}

// NewSelection returns a SAFE selection holding the given codes.
func NewSelection(codes ...string) Selection {
	return Selection{Mode: ModeSafe}.WithAllergens(codes...)
}

func (s Selection) clone() Selection {
	out := s
	out.allergens = make(map[string]struct{}, len(s.allergens))
	for c := range s.allergens {
		out.allergens[c] = struct{}{}
	}
	return out
}

// WithAllergens replaces the selected codes.
func (s Selection) WithAllergens(codes ...string) Selection {
	out := s.clone()
	out.allergens = make(map[string]struct{}, len(codes))
	for _, c := range NormalizeCodes(codes) {
		out.allergens[c] = struct{}{}
	}
	return out
}

// Toggle selects code if absent and deselects it if present.
func (s Selection) Toggle(code string) Selection {
	code = NormalizeCode(code)
	if code == "" {
		return s.clone()
	}

	out := s.clone()
	if _, ok := out.allergens[code]; ok {
		delete(out.allergens, code)
	} else {
		out.allergens[code] = struct{}{}
	}
	return out
}

// WithMode sets the filtering mode.
func (s Selection) WithMode(m Mode) Selection {
	out := s.clone()
	out.Mode = m.normalized()
	return out
}

// WithCategory sets the category; blank clears it.
func (s Selection) WithCategory(category string) Selection {
	out := s.clone()
	out.Category = strings.TrimSpace(category)
	return out
}

// WithSearch sets the free-text search; blank clears it.
func (s Selection) WithSearch(text string) Selection {
	out := s.clone()
	out.Search = strings.TrimSpace(text)
	return out
}

// Reset returns the empty SAFE selection.
func (s Selection) Reset() Selection {
	return NewSelection()
}

// Has reports whether code is selected.
func (s Selection) Has(code string) bool {
	_, ok := s.allergens[NormalizeCode(code)]
	return ok
}

// Codes returns the selected codes, sorted.
func (s Selection) Codes() []string {
	out := make([]string, 0, len(s.allergens))
	for c := range s.allergens {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// EffectiveMode is Mode with the zero value read as ModeSafe.
func (s Selection) EffectiveMode() Mode {
	return s.Mode.normalized()
}

// IsEmpty reports whether no filter clause is active.
func (s Selection) IsEmpty() bool {
	return len(s.allergens) == 0 &&
		strings.TrimSpace(s.Category) == "" &&
		strings.TrimSpace(s.Search) == ""
}

type selectionJSON struct {
	Allergens []string `json:"allergens"`
	Mode      string   `json:"mode"`
	Category  string   `json:"category,omitempty"`
	Search    string   `json:"search,omitempty"`
}

func (s Selection) MarshalJSON() ([]byte, error) {
	return json.Marshal(selectionJSON{
		Allergens: s.Codes(),
		Mode:      string(s.EffectiveMode()),
		Category:  s.Category,
		Search:    s.Search,
	})
}

// UnmarshalJSON normalizes the decoded fields. A blank mode leaves Mode unset
// so the caller can apply its own default; EffectiveMode reads it as SAFE.
func (s *Selection) UnmarshalJSON(data []byte) error {
	var in selectionJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	sel := NewSelection(in.Allergens...).
		WithCategory(in.Category).
		WithSearch(in.Search)
	sel.Mode = ""
	if strings.TrimSpace(in.Mode) != "" {
		sel = sel.WithMode(ParseMode(in.Mode))
	}

	*s = sel
	return nil
}
