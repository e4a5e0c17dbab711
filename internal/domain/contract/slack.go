package contract

import (
	"context"

	"github.com/diegoclair/channel-gatekeeper/internal/domain/entity"
	"github.com/slack-go/slack"
)

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// PostMessageContext sends a message to a Slack channel
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Reporter publishes batch outcomes to operators. Delivery is best-effort.
type Reporter interface {
	BatchCompleted(ctx context.Context, source string, channel *entity.Channel, result entity.BatchResult)
}
