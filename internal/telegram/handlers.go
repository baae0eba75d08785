package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Sanchess0-o/bot/internal/domain"
)

// --- Generic helpers ---

func (r *Router) sendText(chatID int64, text string) {
	_, _ = r.bot.Send(tgbotapi.NewMessage(chatID, text))
}

func (r *Router) answerCallback(id string) {
	_, _ = r.bot.Request(tgbotapi.NewCallback(id, ""))
}

// --- Core commands ---

func (r *Router) handleStart(_ context.Context, chatID int64) {
	r.sendText(chatID, startText)
}

// handleSubscribe begins the preference dialog: timezone first, then time.
func (r *Router) handleSubscribe(_ context.Context, chatID int64) {
	r.clearState(chatID)
	msg := tgbotapi.NewMessage(chatID, chooseTZText)
	msg.ReplyMarkup = tzPresetsKeyboard()
	_, _ = r.bot.Send(msg)
}

// handleStop unsubscribes: remove the stored preference, then retire the
// timer. Both halves are idempotent, so /stop for a non-subscriber is fine.
func (r *Router) handleStop(ctx context.Context, chatID int64) {
	if err := r.repo.Remove(ctx, chatID); err != nil {
		r.log.Error("unsubscribe failed", zap.Int64("user", chatID), zap.Error(err))
		r.sendText(chatID, "Something went wrong, please try again later.")
		return
	}
	r.sched.Cancel(chatID)
	r.clearState(chatID)
	r.sendText(chatID, stoppedText)
}

func (r *Router) handleStatus(ctx context.Context, chatID int64) {
	p, err := r.repo.Get(ctx, chatID)
	if errors.Is(err, domain.ErrPreferenceNotFound) {
		r.sendText(chatID, notSubscribedText)
		return
	}
	if err != nil {
		r.log.Error("status read failed", zap.Int64("user", chatID), zap.Error(err))
		r.sendText(chatID, "Error reading your settings.")
		return
	}

	next := "—"
	if fireAt, ok := r.sched.NextFireAt(chatID); ok {
		if s, err := domain.LocalizeTime(fireAt, p.Timezone); err == nil {
			next = s
		}
	}
	r.sendText(chatID, fmt.Sprintf(statusFmt,
		domain.FormatHHMM(p.Hour, p.Minute), p.Timezone, next))
}

// --- Timezone step ---

func (r *Router) handleTZCallback(_ context.Context, chatID int64, val, cbID string) {
	r.answerCallback(cbID)
	if val == "custom" {
		r.setState(chatID, dialogState{step: stepCustomTZ})
		r.sendText(chatID, customTZPrompt)
		return
	}
	tz, err := domain.ValidateTZ(val)
	if err != nil {
		r.sendText(chatID, invalidTZText)
		return
	}
	r.askTime(chatID, tz)
}

func (r *Router) askTime(chatID int64, tz string) {
	r.setState(chatID, dialogState{step: stepTime, tz: tz})
	msg := tgbotapi.NewMessage(chatID, chooseTimeText)
	msg.ReplyMarkup = timePresetsKeyboard()
	_, _ = r.bot.Send(msg)
}

// --- Time step ---

func (r *Router) handleTimeCallback(ctx context.Context, chatID int64, val, cbID string) {
	r.answerCallback(cbID)
	st := r.getState(chatID)
	if st.step != stepTime || st.tz == "" {
		// Button pressed out of order (e.g. an old message): restart flow.
		r.handleSubscribe(ctx, chatID)
		return
	}
	if val == "custom" {
		r.sendText(chatID, customTimePrompt)
		return
	}
	hour, minute, err := domain.ParseHHMM(val)
	if err != nil {
		r.sendText(chatID, invalidTimeText)
		return
	}
	r.completeSubscription(ctx, chatID, hour, minute, st.tz)
}

// --- Free-form input (custom timezone / custom time) ---

func (r *Router) handleFreeForm(ctx context.Context, chatID int64, text string) {
	st := r.getState(chatID)
	switch st.step {
	case stepCustomTZ:
		tz, err := domain.ValidateTZ(text)
		if err != nil {
			r.sendText(chatID, invalidTZText)
			return
		}
		r.askTime(chatID, tz)

	case stepTime:
		hour, minute, err := domain.ParseHHMM(text)
		if err != nil {
			r.sendText(chatID, invalidTimeText)
			return
		}
		r.completeSubscription(ctx, chatID, hour, minute, st.tz)

	case stepNone:
		// No pending flow: ignore free-form message
	}
}

// completeSubscription persists the preference and arms the timer, in that
// order: the schedule is durable before it is live.
func (r *Router) completeSubscription(ctx context.Context, chatID int64, hour, minute int, tz string) {
	p := &domain.Preference{UserID: chatID, Hour: hour, Minute: minute, Timezone: tz}
	if err := r.repo.Put(ctx, p); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidTime):
			r.sendText(chatID, invalidTimeText)
		case errors.Is(err, domain.ErrInvalidTimezone):
			r.sendText(chatID, invalidTZText)
		default:
			r.log.Error("preference save failed", zap.Int64("user", chatID), zap.Error(err))
			r.sendText(chatID, "Could not save your settings, please try again.")
		}
		return
	}
	if err := r.sched.Arm(ctx, chatID); err != nil {
		r.log.Error("arm after subscribe failed", zap.Int64("user", chatID), zap.Error(err))
		r.sendText(chatID, "Saved, but scheduling failed. It will recover on the next restart.")
		return
	}
	r.clearState(chatID)
	r.sendText(chatID, fmt.Sprintf(subscribedFmt, domain.FormatHHMM(hour, minute), tz))
}
