package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Sanchess0-o/bot/assets"
	"github.com/Sanchess0-o/bot/internal/config"
	"github.com/Sanchess0-o/bot/internal/scheduler"
	"github.com/Sanchess0-o/bot/internal/store"
	"github.com/Sanchess0-o/bot/internal/telegram"
	"github.com/Sanchess0-o/bot/internal/tips"
)

type App struct {
	cfg     config.Config
	log     *zap.Logger
	bot     *tgbotapi.BotAPI
	httpSrv *http.Server
	repo    store.Repo
	engine  *scheduler.Engine
	router  *telegram.Router
}

func New(cfg config.Config, log *zap.Logger) (*App, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}
	bot.Debug = false

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}

	return &App{cfg: cfg, log: log, bot: bot, httpSrv: srv}, nil
}

// loadCatalog builds the tip catalog: the embedded default list unless
// TIPS_PATH points at a replacement file (one tip per line).
func (a *App) loadCatalog() (*tips.Catalog, error) {
	list := assets.DefaultTips()
	if a.cfg.TipsPath != "" {
		raw, err := os.ReadFile(a.cfg.TipsPath)
		if err != nil {
			return nil, err
		}
		list = list[:0]
		for _, line := range strings.Split(string(raw), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				list = append(list, line)
			}
		}
	}
	return tips.New(list)
}

func (a *App) Run(ctx context.Context) error {
	a.log.Info("starting ecotip-bot", zap.String("http", a.cfg.HTTPAddr))

	// Open SQLite and run migrations.
	repo, err := store.OpenSQLite(ctx, a.cfg.DBPath)
	if err != nil {
		a.log.Error("open sqlite failed", zap.Error(err))
		return err
	}
	a.repo = repo
	a.log.Info("sqlite ready")

	catalog, err := a.loadCatalog()
	if err != nil {
		a.log.Error("tip catalog load failed", zap.Error(err))
		return err
	}
	a.log.Info("tip catalog loaded", zap.Int("tips", catalog.Len()))

	a.engine = scheduler.NewEngine(a.repo, &botSender{bot: a.bot}, catalog, a.log,
		scheduler.WithSendTimeout(a.cfg.SendTimeout))
	a.router = telegram.NewRouter(a.bot, a.log, a.repo, a.engine)

	// Rebuild all pending timers before accepting any new writes.
	if _, err := scheduler.RecoverAll(ctx, a.repo, a.engine, a.log); err != nil {
		a.log.Error("recovery failed", zap.Error(err))
		return err
	}

	go func() {
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", zap.Error(err))
		}
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updCh := a.bot.GetUpdatesChan(u)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			a.log.Info("shutdown signal received")

			a.engine.Shutdown()

			shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			err := a.httpSrv.Shutdown(shCtx)
			cancel()
			if err != nil {
				a.log.Warn("http server shutdown error", zap.Error(err))
			}
			if a.repo != nil {
				_ = a.repo.Close()
			}
			return nil

		case upd := <-updCh:
			a.router.HandleUpdate(ctx, upd)
		}
	}
}

// botSender adapts the bot API to scheduler.Sender.
type botSender struct {
	bot *tgbotapi.BotAPI
}

func (s *botSender) SendMessage(chatID int64, text string) error {
	_, err := s.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}
