package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/essenza-parfums/web/internal/domain"
)

// SubscriberRepo persists newsletter signups in Postgres.
type SubscriberRepo struct {
	pool *pgxpool.Pool
}

var _ domain.SubscriberRepository = (*SubscriberRepo)(nil)

func NewSubscriberRepo(pool *pgxpool.Pool) *SubscriberRepo {
	return &SubscriberRepo{pool: pool}
}

// Insert stores a new subscriber. Addresses are stored lowercased so the
// unique constraint catches case-variant duplicates.
func (r *SubscriberRepo) Insert(ctx context.Context, email string) (*domain.Subscriber, error) {
	var sub domain.Subscriber
	err := r.pool.QueryRow(ctx, `
		INSERT INTO subscribers (email)
		VALUES ($1)
		ON CONFLICT (email) DO NOTHING
		RETURNING id, email, created_at
	`, strings.ToLower(strings.TrimSpace(email))).Scan(&sub.ID, &sub.Email, &sub.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAlreadySubscribed
	}
	if err != nil {
		return nil, fmt.Errorf("failed to insert subscriber: %w", err)
	}

	return &sub, nil
}

// Count returns the total number of subscribers.
func (r *SubscriberRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM subscribers`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count subscribers: %w", err)
	}
	return count, nil
}
