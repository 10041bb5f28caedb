package allergen

import (
	"sort"
	"strings"
)

// Names maps every known allergen code to its display name.
var Names = map[string]string{
	"CE": "Celery",
	"GL": "Cereals (gluten)",
	"CR": "Crustaceans",
	"EG": "Eggs",
	"FI": "Fish",
	"GA": "Garlic",
	"LU": "Lupin",
	"MO": "Molluscs",
	"MR": "Mushrooms",
	"MI": "Milk",
	"MU": "Mustard",
	"NU": "Nuts",
	"ON": "Onion",
	"PE": "Peanuts",
	"SE": "Sesame",
	"SO": "Soya",
	"SU": "Sulfites",
	"HO": "Honey",
}

// Priority is the order filter chips are shown in. It ranks every known code;
// unknown codes go last, alphabetically.
var Priority = []string{
	"GL", "CR", "MI", "EG", "MR", "ON", "SO", "GA", "SE",
	"NU", "MU", "FI", "MO", "LU", "CE", "PE", "SU", "HO",
}

// Info is one row of the allergen legend.
type Info struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Known   bool   `json:"known"`
	Present bool   `json:"present"`
}

// Name returns the display name for code, or the code itself when unknown.
func Name(code string) string {
	if name, ok := Names[strings.ToUpper(code)]; ok {
		return name
	}
	return code
}

// IsKnown reports whether code belongs to the fixed vocabulary.
func IsKnown(code string) bool {
	_, ok := Names[strings.ToUpper(code)]
	return ok
}

// NamesOf resolves a list of codes to display names, keeping order.
func NamesOf(codes []string) []string {
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = Name(c)
	}
	return out
}

func rank(code string) int {
	for i, p := range Priority {
		if p == code {
			return i
		}
	}
	return -1
}

// Sort orders codes by chip priority. It returns a new slice.
func Sort(codes []string) []string {
	out := append([]string(nil), codes...)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := rank(out[i]), rank(out[j])
		switch {
		case ri == -1 && rj == -1:
			return out[i] < out[j]
		case ri == -1:
			return false
		case rj == -1:
			return true
		default:
			return ri < rj
		}
	})
	return out
}

// Legend lists every known code plus any unknown code found in present,
// in chip order, flagging which ones occur in the menu.
func Legend(present []string) []Info {
	seen := make(map[string]bool, len(present))
	for _, c := range present {
		seen[c] = true
	}

	codes := make([]string, 0, len(Names)+len(present))
	for c := range Names {
		codes = append(codes, c)
	}
	added := map[string]bool{}
	for _, c := range present {
		if !IsKnown(c) && !added[c] {
			added[c] = true
			codes = append(codes, c)
		}
	}

	out := make([]Info, 0, len(codes))
	for _, c := range Sort(codes) {
		out = append(out, Info{
			Code:    c,
			Name:    Name(c),
			Known:   IsKnown(c),
			Present: seen[c],
		})
	}
	return out
}
