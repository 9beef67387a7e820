package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

// Telegram adapts the long-polling Telegram API to the Engine. Chat IDs
// become userID strings of the form "tg:<id>"; replies go back to the
// originating chat. Outbound sends are throttled to stay inside the
// Telegram global send limit.
type Telegram struct {
	api     *tgbotapi.BotAPI
	engine  *Engine
	log     *slog.Logger
	limiter *rate.Limiter
	timeout int
}

// TelegramConfig holds the transport settings.
type TelegramConfig struct {
	Token       string
	PollTimeout int // seconds, long-poll window
	PerSecond   float64
	Burst       int
}

// NewTelegram authenticates against the Telegram API.
func NewTelegram(cfg TelegramConfig, engine *Engine, log *slog.Logger) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}
	log.Info("telegram bot authorized", "username", api.Self.UserName)

	return &Telegram{
		api:     api,
		engine:  engine,
		log:     log,
		limiter: rate.NewLimiter(rate.Limit(cfg.PerSecond), cfg.Burst),
		timeout: cfg.PollTimeout,
	}, nil
}

// TelegramUserID maps a Telegram user to the engine's user ID space.
func TelegramUserID(id int64) string {
	return "tg:" + strconv.FormatInt(id, 10)
}

// Run polls for updates until ctx is cancelled. Handler errors are logged
// and never stop the loop.
func (t *Telegram) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = t.timeout

	updates := t.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			t.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			t.handleUpdate(ctx, update.Message)
		}
	}
}

func (t *Telegram) handleUpdate(ctx context.Context, msg *tgbotapi.Message) {
	userID := TelegramUserID(msg.From.ID)

	reply, err := t.engine.HandleMessage(ctx, userID, msg.Text)
	if err != nil {
		t.log.Error("handling message", "user_id", userID, "error", err)
	}
	if reply == "" {
		return
	}
	t.send(ctx, msg.Chat.ID, reply)
}

func (t *Telegram) send(ctx context.Context, chatID int64, text string) {
	if err := t.limiter.Wait(ctx); err != nil {
		return
	}
	if _, err := t.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		t.log.Error("sending message", "chat_id", chatID, "error", err)
	}
}
