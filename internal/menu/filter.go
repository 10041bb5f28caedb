package menu

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// NoFiltersSummary is the summary when no clause is active.
const NoFiltersSummary = "No filters active"

// SummarySeparator joins summary clauses.
const SummarySeparator = " · "

// Result is what the menu view renders.
type Result struct {
	Visible []Dish `json:"visible"`
	Count   int    `json:"count"`
	Summary string `json:"summary"`
}

// CountLabel is the results counter text, e.g. "1 dish" or "4 dishes".
func (r Result) CountLabel() string {
	if r.Count == 1 {
		return "1 dish"
	}
	return fmt.Sprintf("%d dishes", r.Count)
}

// Evaluate computes the dishes visible under sel.
//
// It is a pure function of its arguments: it keeps no state between calls
// and never fails. Visible keeps the order of dishes and is never nil.
func Evaluate(dishes []Dish, sel Selection) Result {
	m := newMatcher(sel)

	visible := make([]Dish, 0, len(dishes))
	for _, d := range dishes {
		if m.match(d) {
			visible = append(visible, d)
		}
	}

	return Result{
		Visible: visible,
		Count:   len(visible),
		Summary: Summary(sel),
	}
}

// Summary describes the active clauses of sel.
func Summary(sel Selection) string {
	var clauses []string

	if codes := sel.Codes(); len(codes) > 0 {
		list := strings.Join(codes, ", ")
		if sel.EffectiveMode() == ModeContains {
			clauses = append(clauses, "Contains: "+list)
		} else {
			clauses = append(clauses, "SAFE from: "+list)
		}
	}
	if c := strings.TrimSpace(sel.Category); c != "" {
		clauses = append(clauses, c)
	}
	if q := strings.TrimSpace(sel.Search); q != "" {
		clauses = append(clauses, fmt.Sprintf("Search: %q", q))
	}

	if len(clauses) == 0 {
		return NoFiltersSummary
	}
	return strings.Join(clauses, SummarySeparator)
}

type matcher struct {
	category string
	codes    map[string]struct{}
	contains bool
	search   string
	fold     cases.Caser
}

func newMatcher(sel Selection) *matcher {
	m := &matcher{
		category: strings.TrimSpace(sel.Category),
		codes:    sel.allergens,
		contains: sel.EffectiveMode() == ModeContains,
		fold:     cases.Fold(),
	}
	if q := strings.TrimSpace(sel.Search); q != "" {
		m.search = m.fold.String(q)
	}
	return m
}

func (m *matcher) match(d Dish) bool {
	return m.matchCategory(d) && m.matchAllergens(d) && m.matchSearch(d)
}

func (m *matcher) matchCategory(d Dish) bool {
	return m.category == "" || d.Category == m.category
}

func (m *matcher) matchAllergens(d Dish) bool {
	if len(m.codes) == 0 {
		return true
	}

	overlap := false
	for _, c := range d.Allergens {
		if _, ok := m.codes[c]; ok {
			overlap = true
			break
		}
	}

	if m.contains {
		return overlap
	}
	return !overlap
}

func (m *matcher) matchSearch(d Dish) bool {
	if m.search == "" {
		return true
	}
	return strings.Contains(m.fold.String(d.Name), m.search) ||
		strings.Contains(m.fold.String(d.Description), m.search)
}
