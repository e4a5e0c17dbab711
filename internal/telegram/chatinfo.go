package telegram

import (
	"context"
	"fmt"

	"github.com/diegoclair/channel-gatekeeper/internal/domain/entity"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (b *Bot) FetchChannelInfo(ctx context.Context, channelID int64) (*entity.ChannelInfo, error) {
	var chat tgbotapi.Chat
	err := b.do(ctx, func() error {
		var err error
		chat, err = b.api.GetChat(tgbotapi.ChatInfoConfig{
			ChatConfig: tgbotapi.ChatConfig{ChatID: channelID},
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get chat %d: %w", channelID, err)
	}

	title := chat.Title
	if title == "" {
		title = fmt.Sprintf("ID: %d", channelID)
	}

	return &entity.ChannelInfo{
		ID:          chat.ID,
		Title:       title,
		Username:    chat.UserName,
		Description: chat.Description,
		FetchedAt:   b.now(),
	}, nil
}
