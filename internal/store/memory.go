package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Sanchess0-o/bot/internal/domain"
)

// MemoryRepo is an in-memory Repo with the same contract as SQLiteRepo.
// Used by tests and suitable for throwaway runs without a database file.
type MemoryRepo struct {
	mu    sync.RWMutex
	prefs map[int64]domain.Preference
}

// NewMemory returns an empty in-memory repository.
func NewMemory() *MemoryRepo {
	return &MemoryRepo{prefs: make(map[int64]domain.Preference)}
}

func (r *MemoryRepo) Put(_ context.Context, p *domain.Preference) error {
	if p == nil {
		return fmt.Errorf("nil preference")
	}
	if err := p.Validate(); err != nil {
		return err
	}
	cp := *p
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now().UTC()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.prefs[cp.UserID]; ok {
		cp.CreatedAt = prev.CreatedAt
	}
	r.prefs[cp.UserID] = cp
	return nil
}

func (r *MemoryRepo) Get(_ context.Context, userID int64) (*domain.Preference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.prefs[userID]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", userID, domain.ErrPreferenceNotFound)
	}
	cp := p
	return &cp, nil
}

func (r *MemoryRepo) Remove(_ context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.prefs, userID)
	return nil
}

func (r *MemoryRepo) ListAll(_ context.Context) ([]domain.Preference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]domain.Preference, 0, len(r.prefs))
	for _, p := range r.prefs {
		res = append(res, p)
	}
	return res, nil
}

func (r *MemoryRepo) Close() error { return nil }
