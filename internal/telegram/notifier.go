package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// SendWelcome messages the user directly. Telegram allows this right after
// a join request was approved, even without a prior conversation.
func (b *Bot) SendWelcome(ctx context.Context, userID int64, text string) error {
	msg := tgbotapi.NewMessage(userID, text)

	err := b.do(ctx, func() error {
		_, err := b.api.Send(msg)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to send welcome message: %w", err)
	}
	return nil
}
