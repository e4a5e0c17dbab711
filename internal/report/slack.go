package report

import (
	"context"
	"fmt"

	"github.com/diegoclair/channel-gatekeeper/internal/domain/contract"
	"github.com/diegoclair/channel-gatekeeper/internal/domain/entity"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// SlackReporter posts batch summaries to an operator channel in Slack.
type SlackReporter struct {
	client    contract.SlackClient
	channelID string
	logger    *zap.Logger
}

func NewSlackReporter(client contract.SlackClient, channelID string, logger *zap.Logger) *SlackReporter {
	return &SlackReporter{
		client:    client,
		channelID: channelID,
		logger:    logger,
	}
}

func (r *SlackReporter) BatchCompleted(ctx context.Context, source string, channel *entity.Channel, result entity.BatchResult) {
	_, _, err := r.client.PostMessageContext(ctx, r.channelID,
		slack.MsgOptionText(FormatBatch(source, channel, result), false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		r.logger.Warn("failed to post batch report",
			zap.String("run_id", result.RunID),
			zap.Int64("channel_id", channel.ID),
			zap.Error(err),
		)
	}
}

// FormatBatch renders a batch result as Slack mrkdwn.
func FormatBatch(source string, channel *entity.Channel, result entity.BatchResult) string {
	title := channel.Title
	if title == "" {
		title = fmt.Sprintf("%d", channel.ID)
	}

	text := fmt.Sprintf("✅ *%s batch* for *%s*\nApproved: %d", source, title, result.Approved)
	if result.Rejected > 0 {
		text += fmt.Sprintf("\nRejected: %d", result.Rejected)
	}
	if result.Unavailable > 0 {
		text += fmt.Sprintf("\nStill pending after errors: %d", result.Unavailable)
	}
	return text
}
