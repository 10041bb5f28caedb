package menu

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresSource struct {
	db *pgxpool.Pool
}

func NewPostgresSource(db *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{db: db}
}

// --------------------------------------------------
// LOAD MENU (ORDERED AS PRINTED)
// --------------------------------------------------
func (s *PostgresSource) Load(ctx context.Context) ([]RawDish, error) {
	if s.db == nil {
		return nil, ErrSourceNotConfigured
	}

	rows, err := s.db.Query(ctx, `
		SELECT
			name,
			description,
			category,
			allergens,
			price
		FROM menu_items
		ORDER BY position ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query menu items: %w", err)
	}
	defer rows.Close()

	dishes := []RawDish{}

	for rows.Next() {
		var (
			name        *string
			description *string
			category    *string
			allergens   []string
			price       *string
		)

		if err := rows.Scan(
			&name,
			&description,
			&category,
			&allergens,
			&price,
		); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}

		d := RawDish{
			Name:        deref(name),
			Description: deref(description),
			Category:    deref(category),
			Allergens:   allergens,
		}
		if price != nil {
			d.Price = *price
		}

		dishes = append(dishes, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read menu items: %w", err)
	}
	return dishes, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
