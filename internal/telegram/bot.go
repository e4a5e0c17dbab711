package telegram

import (
	"context"
	"errors"
	"time"

	"github.com/diegoclair/channel-gatekeeper/internal/domain/contract"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

var errCallTimeout = errors.New("telegram call timed out")

// Bot adapts the Telegram Bot API to the engine: it approves and declines
// join requests, sends welcome messages and looks up chat metadata.
type Bot struct {
	api     contract.TelegramBot
	timeout time.Duration
	now     func() time.Time
	logger  *zap.Logger
}

func New(api contract.TelegramBot, timeout time.Duration, logger *zap.Logger) *Bot {
	return &Bot{
		api:     api,
		timeout: timeout,
		now:     time.Now,
		logger:  logger,
	}
}

// do runs fn bounded by the call timeout and ctx. The client has no context
// support, so a call that outlives the deadline keeps running in the background.
func (b *Bot) do(ctx context.Context, fn func() error) error {
	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	done := make(chan error, 1)
	go func() {
		done <- fn()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return errCallTimeout
	}
}

func (b *Bot) request(ctx context.Context, c tgbotapi.Chattable) error {
	return b.do(ctx, func() error {
		_, err := b.api.Request(c)
		return err
	})
}
