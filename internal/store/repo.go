package store

import (
	"context"

	"github.com/Sanchess0-o/bot/internal/domain"
)

// Repo is the durable mapping from user to reminder preference. It is the
// single source of truth the scheduler rebuilds its timers from.
//
// All methods are safe for concurrent use. Conflicting writes to the same
// user are serialized: the last Put wins and Get never observes a torn row.
type Repo interface {
	// Put validates and upserts a preference, fully replacing any prior
	// row for the user. Returns domain.ErrInvalidTime or
	// domain.ErrInvalidTimezone on bad input, leaving any stored row
	// untouched.
	Put(ctx context.Context, p *domain.Preference) error
	// Get returns the stored preference or domain.ErrPreferenceNotFound.
	Get(ctx context.Context, userID int64) (*domain.Preference, error)
	// Remove deletes the user's row. Removing an absent user is not an
	// error.
	Remove(ctx context.Context, userID int64) error
	// ListAll enumerates every stored preference. Used at recovery;
	// ordering is unspecified.
	ListAll(ctx context.Context) ([]domain.Preference, error)
	Close() error
}
