package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	apperrors "github.com/essenza-parfums/web/internal/errors"
	"github.com/essenza-parfums/web/internal/retry"
)

// Connect opens a pgx pool for the given URL and verifies it with a few ping
// attempts, since the database may still be coming up when we boot.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	cfg.MaxConns = 25
	cfg.MaxConnLifetime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	policy := retry.Policy{
		MaxAttempts:    5,
		InitialBackoff: 500 * time.Millisecond,
		OnRetry: func(attempt int, err error, backoff time.Duration) {
			slog.Warn("Database ping failed, retrying", "attempt", attempt, "backoff", backoff, "error", err)
		},
	}
	if err := retry.DoVoid(ctx, policy, func() error { return pool.Ping(ctx) }); err != nil {
		pool.Close()
		return nil, apperrors.ExternalError("failed to ping database", err).
			WithContext("dependency", "postgres")
	}

	return pool, nil
}

// RunMigrations applies the schema. Statements are idempotent so the list can
// grow append-only across deploys.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS subscribers (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT UNIQUE NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_subscribers_email ON subscribers(email)`,
		`CREATE TABLE IF NOT EXISTS testimonials (
			position INT PRIMARY KEY,
			quote TEXT NOT NULL,
			author TEXT NOT NULL,
			origin TEXT NOT NULL DEFAULT ''
		)`,
		`INSERT INTO testimonials (position, quote, author, origin) VALUES
			(0, 'Nuit d''Ambre is the first perfume strangers stop me on the street to ask about.', 'Claire M.', 'Lyon'),
			(1, 'The samples arrived with handwritten notes on each blend. You can tell people care here.', 'Jonas K.', 'Hamburg'),
			(2, 'I have worn Vetiver Sauvage every day for a year and I am still not tired of it.', 'Sofia R.', 'Porto')
		ON CONFLICT (position) DO NOTHING`,
	}

	for _, migration := range migrations {
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	slog.Info("Database migrations completed")
	return nil
}
