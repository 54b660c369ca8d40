package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Subscriber is one newsletter signup.
type Subscriber struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

// SubscriberRepository persists newsletter signups.
type SubscriberRepository interface {
	// Insert stores a new subscriber. Returns ErrAlreadySubscribed when the
	// address is already on the list.
	Insert(ctx context.Context, email string) (*Subscriber, error)
	// Count returns the total number of subscribers.
	Count(ctx context.Context) (int64, error)
}

// SignupDebouncer suppresses rapid repeat signups for the same address.
type SignupDebouncer interface {
	// Allow reports whether a signup for the address may proceed right now.
	Allow(ctx context.Context, email string) (bool, error)
}
