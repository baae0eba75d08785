package telegram

import (
	"context"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Sanchess0-o/bot/internal/store"
)

// Scheduler is the part of the schedule engine the dialog drives.
type Scheduler interface {
	Arm(ctx context.Context, userID int64) error
	Cancel(userID int64)
	NextFireAt(userID int64) (time.Time, bool)
}

// Dialog steps for the subscription flow. The flow is: pick a timezone
// (preset or free-form), then pick a delivery time (preset or free-form).
const (
	stepNone     = ""
	stepCustomTZ = "await_tz_text"
	stepTime     = "await_time_choice"
)

// dialogState is the in-memory, non-persistent state of one user's
// subscription conversation.
type dialogState struct {
	step string
	tz   string // chosen timezone, set once the TZ step completes
}

// Router wires Telegram updates to handlers and holds minimal in-memory state.
type Router struct {
	bot    *tgbotapi.BotAPI
	log    *zap.Logger
	repo   store.Repo
	sched  Scheduler
	states map[int64]dialogState
	mu     sync.RWMutex
}

// NewRouter creates a new Telegram router.
func NewRouter(bot *tgbotapi.BotAPI, log *zap.Logger, repo store.Repo, sched Scheduler) *Router {
	return &Router{
		bot:    bot,
		log:    log,
		repo:   repo,
		sched:  sched,
		states: make(map[int64]dialogState),
	}
}

func (r *Router) setState(chatID int64, s dialogState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states[chatID] = s
}

func (r *Router) getState(chatID int64) dialogState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.states[chatID]
}

func (r *Router) clearState(chatID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.states, chatID)
}

// HandleUpdate routes a single update to the appropriate handler.
func (r *Router) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	if upd.Message != nil {
		msg := upd.Message
		chatID := msg.Chat.ID
		text := strings.TrimSpace(msg.Text)

		switch {
		case strings.HasPrefix(text, "/start"):
			r.handleStart(ctx, chatID)
		case strings.HasPrefix(text, "/subscribe"):
			r.handleSubscribe(ctx, chatID)
		case strings.HasPrefix(text, "/stop"):
			r.handleStop(ctx, chatID)
		case strings.HasPrefix(text, "/status"):
			r.handleStatus(ctx, chatID)
		case strings.HasPrefix(text, "/globalwarming"):
			r.sendText(chatID, globalWarmingText)
		case strings.HasPrefix(text, "/what"):
			r.sendText(chatID, whatText)
		case strings.HasPrefix(text, "/why"):
			r.sendText(chatID, whyText)
		default:
			// Free-form text used by the custom timezone / time steps.
			r.handleFreeForm(ctx, chatID, text)
		}
		return
	}

	if upd.CallbackQuery != nil {
		cb := upd.CallbackQuery
		data := cb.Data
		chatID := cb.Message.Chat.ID

		switch {
		case strings.HasPrefix(data, "tz:"):
			r.handleTZCallback(ctx, chatID, strings.TrimPrefix(data, "tz:"), cb.ID)
		case strings.HasPrefix(data, "time:"):
			r.handleTimeCallback(ctx, chatID, strings.TrimPrefix(data, "time:"), cb.ID)
		default:
			// Unknown callback — ignore silently
		}
		return
	}
}
