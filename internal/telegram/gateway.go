package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/diegoclair/channel-gatekeeper/internal/domain/entity"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// userAlreadyParticipant means the user is in already, which is what approving wanted.
const userAlreadyParticipant = "USER_ALREADY_PARTICIPANT"

func (b *Bot) Approve(ctx context.Context, channelID, userID int64) entity.Outcome {
	err := b.request(ctx, tgbotapi.ApproveChatJoinRequestConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: channelID},
		UserID:     userID,
	})

	outcome := classify(err)
	if !outcome.IsOK() {
		b.logger.Debug("approve join request failed",
			zap.Int64("channel_id", channelID),
			zap.Int64("user_id", userID),
			zap.Stringer("outcome", outcome.Kind),
			zap.String("reason", outcome.Reason),
		)
	}
	return outcome
}

func (b *Bot) Decline(ctx context.Context, channelID, userID int64) entity.Outcome {
	err := b.request(ctx, tgbotapi.DeclineChatJoinRequest{
		ChatConfig: tgbotapi.ChatConfig{ChatID: channelID},
		UserID:     userID,
	})
	return classify(err)
}

// classify maps a Bot API error to an outcome. Client errors other than
// rate limiting are permanent; everything else may succeed on a later try.
func classify(err error) entity.Outcome {
	if err == nil {
		return entity.Ok()
	}

	var apiErr *tgbotapi.Error
	if !errors.As(err, &apiErr) {
		return entity.Unavailable(err.Error())
	}

	switch {
	case strings.Contains(apiErr.Message, userAlreadyParticipant):
		return entity.Ok()
	case apiErr.Code == http.StatusTooManyRequests:
		return entity.Unavailable(fmt.Sprintf("rate limited, retry after %ds", apiErr.RetryAfter))
	case apiErr.Code >= http.StatusInternalServerError:
		return entity.Unavailable(apiErr.Message)
	case apiErr.Code >= http.StatusBadRequest:
		return entity.Denied(apiErr.Message)
	default:
		return entity.Unavailable(apiErr.Message)
	}
}
