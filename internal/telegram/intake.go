package telegram

import (
	"context"
	"strings"
	"time"

	"github.com/diegoclair/channel-gatekeeper/internal/domain/contract"
	"github.com/diegoclair/channel-gatekeeper/internal/domain/entity"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// UpdateSource is the long-polling side of the Bot API client.
type UpdateSource interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Intake feeds join requests and membership changes into the admission service.
type Intake struct {
	source      UpdateSource
	admission   contract.AdmissionService
	pollTimeout int
	logger      *zap.Logger
}

func NewIntake(source UpdateSource, admission contract.AdmissionService, pollTimeout int, logger *zap.Logger) *Intake {
	return &Intake{
		source:      source,
		admission:   admission,
		pollTimeout: pollTimeout,
		logger:      logger,
	}
}

// Run polls updates until ctx is cancelled.
func (i *Intake) Run(ctx context.Context) {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = i.pollTimeout
	updateConfig.AllowedUpdates = []string{"chat_join_request", "my_chat_member"}

	updates := i.source.GetUpdatesChan(updateConfig)
	i.logger.Info("receiving telegram updates")

	for {
		select {
		case <-ctx.Done():
			i.source.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			i.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate dispatches one update. Errors are logged; polling never stops on them.
func (i *Intake) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.ChatJoinRequest != nil:
		i.handleJoinRequest(ctx, update.ChatJoinRequest)
	case update.MyChatMember != nil:
		i.handleMembership(ctx, update.MyChatMember)
	}
}

func (i *Intake) handleJoinRequest(ctx context.Context, req *tgbotapi.ChatJoinRequest) {
	event := entity.JoinRequestEvent{
		ChannelID:    req.Chat.ID,
		ChannelTitle: req.Chat.Title,
		UserID:       req.From.ID,
		Username:     req.From.UserName,
		FullName:     strings.TrimSpace(req.From.FirstName + " " + req.From.LastName),
		At:           time.Unix(int64(req.Date), 0),
	}

	decision, err := i.admission.HandleJoinRequest(ctx, event)
	if err != nil {
		i.logger.Error("failed to handle join request",
			zap.Int64("channel_id", event.ChannelID),
			zap.Int64("user_id", event.UserID),
			zap.Error(err),
		)
		return
	}

	i.logger.Debug("join request handled",
		zap.Int64("channel_id", event.ChannelID),
		zap.Int64("user_id", event.UserID),
		zap.Stringer("decision", decision),
	)
}

// handleMembership records channels where the bot became an administrator.
func (i *Intake) handleMembership(ctx context.Context, change *tgbotapi.ChatMemberUpdated) {
	if !change.Chat.IsChannel() && !change.Chat.IsSuperGroup() {
		return
	}

	status := change.NewChatMember.Status
	log := i.logger.With(
		zap.Int64("channel_id", change.Chat.ID),
		zap.String("status", status),
	)

	if status != "administrator" && status != "creator" {
		log.Info("bot membership changed")
		return
	}

	if err := i.admission.DiscoverChannel(ctx, change.Chat.ID, change.Chat.Title); err != nil {
		log.Error("failed to record discovered channel", zap.Error(err))
	}
}
