package menu

import "strings"

// FishCode is the canonical code for fish.
const FishCode = "FI"

// codeFixes rewrites historical data-entry mistakes.
var codeFixes = map[string]string{
	"FL": FishCode,
}

// NormalizeCode trims and upper-cases a code and applies known typo fixes.
func NormalizeCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if fixed, ok := codeFixes[code]; ok {
		return fixed
	}
	return code
}

// NormalizeCodes normalizes codes, dropping blanks and duplicates.
// First-seen order is kept. The result is never nil.
func NormalizeCodes(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))

	for _, c := range codes {
		c = NormalizeCode(c)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	return out
}

// NormalizeDish converts one raw record. Missing fields become empty defaults.
func NormalizeDish(r RawDish) Dish {
	return Dish{
		Name:        r.Name,
		Description: r.Description,
		Category:    strings.TrimSpace(r.Category),
		Allergens:   NormalizeCodes(r.Allergens),
		Price:       r.Price,
	}
}

// Normalize converts raw records into canonical dishes, preserving order.
// Records without a name are dropped. The input is not modified.
func Normalize(raw []RawDish) []Dish {
	out := make([]Dish, 0, len(raw))
	for _, r := range raw {
		if strings.TrimSpace(r.Name) == "" {
			continue
		}
		out = append(out, NormalizeDish(r))
	}
	return out
}
