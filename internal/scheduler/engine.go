// Package scheduler owns one live timer per subscribed user and turns a
// stored reminder preference into a once-per-day delivery at the user's
// local HH:MM. The durable store is the only source of truth: timers are
// transient and are rebuilt from it on startup (see recovery.go).
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/jmhodges/clock"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Sanchess0-o/bot/internal/domain"
	"github.com/Sanchess0-o/bot/internal/store"
	"github.com/Sanchess0-o/bot/internal/tips"
)

// Sender is the minimal interface the engine needs to deliver a tip.
// telegram.Router implements it.
type Sender interface {
	SendMessage(chatID int64, text string) error
}

const defaultSendTimeout = 10 * time.Second

// Engine schedules one timer per user. All map transitions (arm, cancel,
// fire, replace) are serialized by a single mutex; per-user ordering falls
// out of the one-entry-per-user invariant. A generation number per install
// makes replacement atomic: a timer whose generation no longer matches the
// current entry fires into a no-op.
type Engine struct {
	repo        store.Repo
	sender      Sender
	catalog     *tips.Catalog
	log         *zap.Logger
	clk         clock.Clock
	sendTimeout time.Duration

	mu     sync.Mutex
	gen    uint64
	timers map[int64]*userTimer
	closed bool
}

type userTimer struct {
	fireAt time.Time
	timer  *time.Timer
	gen    uint64
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock substitutes the wall clock, letting tests pin "now".
func WithClock(c clock.Clock) Option {
	return func(e *Engine) { e.clk = c }
}

// WithSendTimeout bounds a single delivery attempt. A stuck transport call
// must not starve the re-arm that follows it.
func WithSendTimeout(d time.Duration) Option {
	return func(e *Engine) { e.sendTimeout = d }
}

// NewEngine creates an engine with no timers armed.
func NewEngine(repo store.Repo, sender Sender, catalog *tips.Catalog, log *zap.Logger, opts ...Option) *Engine {
	e := &Engine{
		repo:        repo,
		sender:      sender,
		catalog:     catalog,
		log:         log,
		clk:         clock.New(),
		sendTimeout: defaultSendTimeout,
		timers:      make(map[int64]*userTimer),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Arm reads the user's stored preference, computes the next occurrence of
// its HH:MM in its timezone strictly after now, and installs a timer for
// it, atomically retiring any previous timer for the same user. Returns
// domain.ErrPreferenceNotFound (wrapped) when no row exists.
func (e *Engine) Arm(ctx context.Context, userID int64) error {
	pref, err := e.repo.Get(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed reading reminder preference")
	}
	fireAt, err := domain.NextFire(e.clk.Now(), pref)
	if err != nil {
		return errors.Wrapf(err, "failed computing next fire for user %d", userID)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return errors.New("engine is shut down")
	}
	e.installLocked(userID, fireAt)
	e.log.Debug("timer armed",
		zap.Int64("user", userID),
		zap.Time("fire_at", fireAt),
	)
	return nil
}

// installLocked replaces the user's timer. Caller holds e.mu.
func (e *Engine) installLocked(userID int64, fireAt time.Time) {
	if prev, ok := e.timers[userID]; ok {
		prev.timer.Stop()
	}
	e.gen++
	g := e.gen
	ut := &userTimer{fireAt: fireAt, gen: g}
	ut.timer = time.AfterFunc(fireAt.Sub(e.clk.Now()), func() { e.fire(userID, g) })
	e.timers[userID] = ut
}

// Cancel retires the user's timer if present; no-op otherwise.
func (e *Engine) Cancel(userID int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if ut, ok := e.timers[userID]; ok {
		ut.timer.Stop()
		delete(e.timers, userID)
		e.log.Debug("timer cancelled", zap.Int64("user", userID))
	}
}

// fire handles one timer expiry: defensively re-read the preference (it may
// have changed or vanished since arming), deliver today's tip, then re-arm
// for the following day. Delivery failure is logged and never blocks the
// re-arm; a missed day is not escalated.
func (e *Engine) fire(userID int64, gen uint64) {
	e.mu.Lock()
	cur, ok := e.timers[userID]
	if !ok || cur.gen != gen {
		// Replaced or cancelled after the timer already went off.
		e.mu.Unlock()
		return
	}
	e.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), e.sendTimeout)
	defer cancel()

	pref, err := e.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrPreferenceNotFound) {
			// Unsubscribed between arm and fire: the fire is a no-op.
			e.dropIfCurrent(userID, gen)
			e.log.Info("preference removed, abandoning fire", zap.Int64("user", userID))
			return
		}
		e.log.Error("preference re-read at fire time failed",
			zap.Int64("user", userID), zap.Error(err))
	} else if loc, locErr := pref.Location(); locErr != nil {
		e.log.Warn("stored timezone no longer resolves, skipping delivery",
			zap.Int64("user", userID), zap.String("timezone", pref.Timezone))
	} else {
		// The tip's day-of-year comes from the fire instant actually
		// observed, localized to the user's zone.
		tip := e.catalog.ForDate(e.clk.Now().In(loc))
		if sendErr := e.deliver(ctx, userID, tip); sendErr != nil {
			e.log.Warn("tip delivery failed, next day unaffected",
				zap.Int64("user", userID), zap.Error(sendErr))
		} else {
			e.log.Info("tip delivered", zap.Int64("user", userID))
		}
	}

	// Re-arm for tomorrow from whatever preference is stored now, so a
	// change made while this fire was in flight takes effect next cycle.
	if err := e.Arm(context.Background(), userID); err != nil {
		e.dropIfCurrent(userID, gen)
		if errors.Is(err, domain.ErrPreferenceNotFound) {
			e.log.Info("user unsubscribed during fire", zap.Int64("user", userID))
			return
		}
		e.log.Error("re-arm failed, user unscheduled until next write or restart",
			zap.Int64("user", userID), zap.Error(err))
	}
}

// deliver runs one send attempt bounded by ctx. The transport call has no
// context of its own, so it is raced against the deadline in a goroutine.
func (e *Engine) deliver(ctx context.Context, userID int64, text string) error {
	done := make(chan error, 1)
	go func() { done <- e.sender.SendMessage(userID, text) }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "delivery timed out")
	}
}

// dropIfCurrent removes the user's entry only if it still belongs to the
// given generation, never clobbering a newer install.
func (e *Engine) dropIfCurrent(userID int64, gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if cur, ok := e.timers[userID]; ok && cur.gen == gen {
		cur.timer.Stop()
		delete(e.timers, userID)
	}
}

// NextFireAt reports the pending fire instant for the user, if any.
func (e *Engine) NextFireAt(userID int64) (time.Time, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	ut, ok := e.timers[userID]
	if !ok {
		return time.Time{}, false
	}
	return ut.fireAt, true
}

// Armed reports how many users currently hold a live timer.
func (e *Engine) Armed() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.timers)
}

// Shutdown stops every timer and rejects further arms. Pending schedules
// survive in the store and are rebuilt by recovery on the next start.
func (e *Engine) Shutdown() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	for _, ut := range e.timers {
		ut.timer.Stop()
	}
	e.timers = make(map[int64]*userTimer)
	e.log.Info("scheduler stopped")
}
