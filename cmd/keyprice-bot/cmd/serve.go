package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/autokeyhq/keyprice-bot/api/openapi"
	"github.com/autokeyhq/keyprice-bot/internal/api/handlers"
	"github.com/autokeyhq/keyprice-bot/internal/api/middleware"
	"github.com/autokeyhq/keyprice-bot/internal/bot"
	"github.com/autokeyhq/keyprice-bot/internal/config"
	"github.com/autokeyhq/keyprice-bot/internal/metrics"
	"github.com/autokeyhq/keyprice-bot/internal/notify"
	"github.com/autokeyhq/keyprice-bot/internal/session"
	"github.com/autokeyhq/keyprice-bot/internal/store"
	"github.com/autokeyhq/keyprice-bot/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Telegram bot, admin API, and session sweeper",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// Local development convenience; a missing .env is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	cached := store.NewCachedStore(st)

	sessions, closeSessions, err := newSessionStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSessions()

	updater := bot.NewUpdater(cached,
		bot.WithCache(cached),
		bot.WithNotifier(newNotifier(cfg, log)),
		bot.WithUpdaterLogger(log),
	)

	engine := bot.NewEngine(cached, sessions, updater,
		bot.WithLogger(log),
		bot.WithUpdaterAllowList(cfg.Telegram.UpdaterIDs),
	)

	tg, err := bot.NewTelegram(bot.TelegramConfig{
		Token:       cfg.Telegram.Token,
		PollTimeout: cfg.Telegram.PollTimeout,
		PerSecond:   cfg.Telegram.RateLimit.PerSecond,
		Burst:       cfg.Telegram.RateLimit.Burst,
	}, engine, log)
	if err != nil {
		return fmt.Errorf("starting telegram transport: %w", err)
	}

	go func() {
		if err := tg.Run(ctx); err != nil {
			log.Error("telegram transport stopped", "err", err)
		}
	}()

	sweeper := cron.New()
	_, err = sweeper.AddFunc(
		fmt.Sprintf("@every %s", cfg.Sessions.SweepInterval),
		func() { sweepSessions(sessions, cfg.Sessions.IdleTimeout, log) },
	)
	if err != nil {
		return fmt.Errorf("scheduling session sweep: %w", err)
	}
	sweeper.Start()
	defer sweeper.Stop()

	e := newServer(log, cached, updater)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

func newSessionStore(ctx context.Context, cfg *config.Config) (session.Store, func(), error) {
	switch cfg.Sessions.Backend {
	case "redis":
		rs, err := session.NewRedisStore(
			ctx,
			cfg.Redis.Addr,
			cfg.Redis.Password,
			cfg.Redis.DB,
			cfg.Sessions.IdleTimeout,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return rs, func() { _ = rs.Close() }, nil
	default:
		return session.NewMemoryStore(), func() {}, nil
	}
}

func newNotifier(cfg *config.Config, log *slog.Logger) notify.Notifier {
	if cfg.Notifications.Discord.Enabled {
		return notify.NewDiscordNotifier(cfg.Notifications.Discord.WebhookURL)
	}
	return notify.NewNoOpNotifier(log)
}

func sweepSessions(sessions session.Store, idle time.Duration, log *slog.Logger) {
	swept, err := sessions.Sweep(context.Background(), idle)
	if err != nil {
		log.Error("session sweep failed", "err", err)
		return
	}
	metrics.SessionsSweptTotal.Add(float64(swept))
	if m, ok := sessions.(*session.MemoryStore); ok {
		metrics.SessionsActive.Set(float64(m.Len()))
	}
	if swept > 0 {
		log.Info("swept idle sessions", "count", swept)
	}
}

func newServer(log *slog.Logger, st store.Store, updater *bot.Updater) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())
	e.Use(middleware.Recovery(log))

	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("KeyPrice Bot API", Version))
	handlers.RegisterVehicleRoutes(api, handlers.NewVehiclesHandler(st))
	handlers.RegisterPriceRoutes(api, handlers.NewPricesHandler(st, updater))
	handlers.RegisterAuditRoutes(api, handlers.NewAuditsHandler(st))
	handlers.RegisterSystemStateRoutes(api, handlers.NewSystemStateHandler(st))

	openapi.RegisterRoutes(e)

	return e
}
