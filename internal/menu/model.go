package menu

import (
	"bytes"
	"encoding/json"
	"errors"
)

// RawDish is a dish record exactly as it arrives from a menu source.
// Every field is optional; Normalize turns it into a Dish.
type RawDish struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Allergens   []string `json:"allergens,omitempty"`
	Price       any      `json:"price,omitempty"`
}

// UnmarshalJSON decodes a record leniently: fields of the wrong type are
// dropped instead of failing the whole menu.
func (r *RawDish) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		// not an object; keep the zero value
		*r = RawDish{}
		return nil
	}

	out := RawDish{
		Name:        looseString(fields["name"]),
		Description: looseString(fields["description"]),
		Category:    looseString(fields["category"]),
		Allergens:   looseStrings(fields["allergens"]),
	}

	if p, ok := fields["price"]; ok {
		out.Price = loosePrice(p)
	}

	*r = out
	return nil
}

func looseString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// loosePrice keeps numbers as json.Number so they are re-encoded exactly as
// written.
func loosePrice(raw json.RawMessage) any {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var price any
	if err := dec.Decode(&price); err != nil {
		return nil
	}
	return price
}

func looseStrings(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if string(bytes.TrimSpace(item)) == "null" {
			continue
		}
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
		}
	}
	return out
}

// menuDocument is the wrapped form {"items": [...]} some exports use.
type menuDocument struct {
	Items []RawDish `json:"items"`
}

var ErrInvalidMenu = errors.New("menu document must be a JSON array or an object with items")

// ParseRawMenu decodes a menu document: either a bare JSON array of dishes
// or an object holding them under "items".
func ParseRawMenu(data []byte) ([]RawDish, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []RawDish{}, nil
	}

	switch data[0] {
	case '[':
		var dishes []RawDish
		if err := json.Unmarshal(data, &dishes); err != nil {
			return nil, err
		}
		return dishes, nil
	case '{':
		var doc menuDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		if doc.Items == nil {
			return []RawDish{}, nil
		}
		return doc.Items, nil
	default:
		return nil, ErrInvalidMenu
	}
}
