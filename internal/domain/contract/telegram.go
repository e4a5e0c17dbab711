package contract

import (
	"context"

	"github.com/diegoclair/channel-gatekeeper/internal/domain/entity"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramBot is the subset of the Telegram Bot API client the bot calls.
// It allows mocking in tests while keeping the real implementation simple.
type TelegramBot interface {
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetChat(config tgbotapi.ChatInfoConfig) (tgbotapi.Chat, error)
}

// ApprovalGateway performs the remote membership decision for one user.
type ApprovalGateway interface {
	Approve(ctx context.Context, channelID, userID int64) entity.Outcome
	Decline(ctx context.Context, channelID, userID int64) entity.Outcome
}

// Notifier delivers welcome messages. Delivery is best-effort.
type Notifier interface {
	SendWelcome(ctx context.Context, userID int64, text string) error
}

// ChannelInfoFetcher loads display metadata for a channel.
type ChannelInfoFetcher interface {
	FetchChannelInfo(ctx context.Context, channelID int64) (*entity.ChannelInfo, error)
}

// ChannelInfoInvalidator is implemented by fetchers that keep a cache.
type ChannelInfoInvalidator interface {
	Invalidate(channelID int64)
}
