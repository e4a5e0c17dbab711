package contract

import (
	"context"
	"time"

	"github.com/diegoclair/channel-gatekeeper/internal/domain/entity"
)

// AdmissionService handles inbound events from the chat platform.
type AdmissionService interface {
	HandleJoinRequest(ctx context.Context, event entity.JoinRequestEvent) (entity.Admission, error)
	DiscoverChannel(ctx context.Context, channelID int64, title string) error
}

// AdminService is the operator-facing surface of the engine.
type AdminService interface {
	AddChannel(ctx context.Context, channelID int64, title string) (*entity.Channel, error)
	ListChannels(ctx context.Context, activeOnly bool) ([]*entity.Channel, error)
	GetChannel(ctx context.Context, channelID int64) (*entity.Channel, error)
	DeactivateChannel(ctx context.Context, channelID int64) error
	DeleteChannel(ctx context.Context, channelID int64, confirmed bool) error
	SetWelcomeMessage(ctx context.Context, channelID int64, text string) error
	ToggleAutoApprove(ctx context.Context, channelID int64, enabled bool) error
	SetSchedulePolicy(ctx context.Context, channelID int64, policy entity.SchedulePolicy) error

	ListPending(ctx context.Context, channelID int64) ([]*entity.JoinRequest, error)
	PendingCount(ctx context.Context, channelID int64) (int, error)
	AcceptBatch(ctx context.Context, channelID int64, size entity.BatchSize, operator int64) (entity.BatchResult, error)
	ApproveRequest(ctx context.Context, requestID, operator int64) (entity.Outcome, error)
	RejectRequest(ctx context.Context, requestID, operator int64) (entity.Outcome, error)
	ReprocessRequest(ctx context.Context, requestID int64) (*entity.JoinRequest, error)

	BookOneOffTask(ctx context.Context, channelID int64, action entity.TaskAction, at time.Time, count *int) (*entity.ScheduledTask, error)
	CancelTask(ctx context.Context, taskID int64) error

	ExportAllRequests(ctx context.Context, channelID int64) ([]*entity.JoinRequest, error)
	GetStatistics(ctx context.Context, channelID int64, period entity.Period) (entity.Statistics, error)
	PeakHours(ctx context.Context, channelID int64) (entity.PeakHours, error)
	ChannelInfo(ctx context.Context, channelID int64) (*entity.ChannelInfo, error)
}
