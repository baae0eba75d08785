package scheduler

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Sanchess0-o/bot/internal/store"
)

// RecoverAll rebuilds every user's timer from the durable store. It runs
// once at process start, before the dialog begins accepting preference
// writes. A row that fails to arm (e.g. its timezone no longer resolves)
// is logged and skipped so it cannot block recovery of the rest. Returns
// the number of timers armed.
func RecoverAll(ctx context.Context, repo store.Repo, eng *Engine, log *zap.Logger) (int, error) {
	prefs, err := repo.ListAll(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed listing stored preferences")
	}

	armed := 0
	for _, p := range prefs {
		if err := eng.Arm(ctx, p.UserID); err != nil {
			log.Warn("skipping unrecoverable reminder row",
				zap.Int64("user", p.UserID), zap.Error(err))
			continue
		}
		armed++
	}
	log.Info("reminder recovery complete",
		zap.Int("restored", armed), zap.Int("rows", len(prefs)))
	return armed, nil
}
