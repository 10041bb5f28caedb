package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Shangshirestaurant/ShangShiAllergenSelector/internal/allergen"
	"github.com/Shangshirestaurant/ShangShiAllergenSelector/internal/menu"

	toon "github.com/toon-format/toon-go"
)

// Formatter renders a filter result.
type Formatter interface {
	FormatResult(w io.Writer, res menu.Result, sel menu.Selection) error
}

// NewFormatter returns the formatter for name: text, json or toon.
func NewFormatter(name string) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text":
		return &TextFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "toon":
		return &ToonFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want text, json or toon)", name)
	}
}

// TextFormatter prints aligned columns for a terminal.
type TextFormatter struct{}

func (f *TextFormatter) FormatResult(w io.Writer, res menu.Result, sel menu.Selection) error {
	fmt.Fprintf(w, "%s\n", res.Summary)
	fmt.Fprintf(w, "%s\n", res.CountLabel())

	if res.Count == 0 {
		fmt.Fprintln(w, "No dishes match the current filters.")
		return nil
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-32s%-18s%s\n", "DISH", "CATEGORY", "ALLERGENS")
	for _, d := range res.Visible {
		category := d.Category
		if category == "" {
			category = "-"
		}
		fmt.Fprintf(w, "%-32s%-18s%s\n", d.Name, category, strings.Join(allergen.NamesOf(d.Allergens), ", "))
	}
	return nil
}

// JSONFormatter emits the result plus the selection that produced it.
type JSONFormatter struct{}

func (f *JSONFormatter) FormatResult(w io.Writer, res menu.Result, sel menu.Selection) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		menu.Result
		CountLabel string         `json:"count_label"`
		Selection  menu.Selection `json:"selection"`
	}{res, res.CountLabel(), sel})
}

// ToonFormatter emits TOON: a summary header followed by a tabular dish list.
type ToonFormatter struct{}

func (f *ToonFormatter) FormatResult(w io.Writer, res menu.Result, sel menu.Selection) error {
	dishes := make([]toon.Object, len(res.Visible))
	for i, d := range res.Visible {
		dishes[i] = toon.NewObject(
			toon.Field{Key: "name", Value: d.Name},
			toon.Field{Key: "category", Value: d.Category},
			toon.Field{Key: "allergens", Value: strings.Join(d.Allergens, " ")},
		)
	}

	doc := toon.NewObject(
		toon.Field{Key: "summary", Value: res.Summary},
		toon.Field{Key: "mode", Value: string(sel.EffectiveMode())},
		toon.Field{Key: "count", Value: res.Count},
		toon.Field{Key: "dishes", Value: dishes},
	)

	out, err := toon.MarshalString(doc)
	if err != nil {
		return fmt.Errorf("toon marshal error: %w", err)
	}
	fmt.Fprintln(w, out)
	return nil
}
