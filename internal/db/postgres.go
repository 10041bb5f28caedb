package db

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func ConnectPostgres(ctx context.Context, dsn string, log *zap.Logger) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, errors.New("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, err
	}

	log.Info("connected to PostgreSQL")

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	log.Info("schema initialized")
	return db, nil
}

// initSchema creates the menu table if it is missing.
func initSchema(ctx context.Context, db *pgxpool.Pool) error {
	// -------------------------------
	// MENU ITEMS
	// -------------------------------
	menuItemsSQL := `
		CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			position INTEGER NOT NULL DEFAULT 0,
			name VARCHAR(255) NOT NULL,
			description TEXT NULL,
			category VARCHAR(100) NULL,
			allergens TEXT[] NOT NULL DEFAULT '{}',
			price TEXT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, menuItemsSQL); err != nil {
		return err
	}

	positionIndexSQL := `
		CREATE INDEX IF NOT EXISTS menu_items_position_idx
		ON menu_items (position, id)
	`
	_, err := db.Exec(ctx, positionIndexSQL)
	return err
}
