package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/essenza-parfums/web/internal/domain"
)

// TestimonialRepo loads the carousel panels. It is read once at startup: the
// panel sequence stays fixed for the lifetime of the process.
type TestimonialRepo struct {
	pool *pgxpool.Pool
}

var _ domain.TestimonialSource = (*TestimonialRepo)(nil)

func NewTestimonialRepo(pool *pgxpool.Pool) *TestimonialRepo {
	return &TestimonialRepo{pool: pool}
}

// ListTestimonials returns the panels ordered by position.
func (r *TestimonialRepo) ListTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT quote, author, origin
		FROM testimonials
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query testimonials: %w", err)
	}
	defer rows.Close()

	var panels []domain.Testimonial
	for rows.Next() {
		var t domain.Testimonial
		if err := rows.Scan(&t.Quote, &t.Author, &t.Origin); err != nil {
			return nil, fmt.Errorf("failed to scan testimonial: %w", err)
		}
		panels = append(panels, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read testimonials: %w", err)
	}

	return panels, nil
}
