package contract

import (
	"context"
	"time"

	"github.com/diegoclair/channel-gatekeeper/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Channel() ChannelRepo
	Request() RequestRepo
	Task() TaskRepo
	Statistics() StatisticsRepo
}

// ChannelRepo defines the contract for channel repository
type ChannelRepo interface {
	// Upsert creates or re-activates a channel added explicitly by an operator.
	Upsert(ctx context.Context, channel *entity.Channel) error
	// CreateIfMissing stores a minimal record for a channel seen for the first time.
	CreateIfMissing(ctx context.Context, channelID int64, title string, active bool) (*entity.Channel, error)
	GetByID(ctx context.Context, channelID int64) (*entity.Channel, error)
	List(ctx context.Context, activeOnly bool) ([]*entity.Channel, error)
	ListScheduled(ctx context.Context) ([]*entity.Channel, error)
	SetAutoApprove(ctx context.Context, channelID int64, enabled bool) error
	SetActive(ctx context.Context, channelID int64, active bool) error
	SetWelcomeMessage(ctx context.Context, channelID int64, text *string) error
	SetSchedule(ctx context.Context, channelID int64, policy *entity.SchedulePolicy) error
	IncrementAccepted(ctx context.Context, channelID int64) error
	Delete(ctx context.Context, channelID int64) error
}

// RequestRepo defines the contract for join request repository
type RequestRepo interface {
	// CreatePending inserts a pending request unless the user already has one
	// in this channel, in which case the existing request is returned with created=false.
	CreatePending(ctx context.Context, request *entity.JoinRequest) (existing *entity.JoinRequest, created bool, err error)
	GetByID(ctx context.Context, requestID int64) (*entity.JoinRequest, error)
	// ListPending returns pending requests oldest first; limit <= 0 means no limit.
	ListPending(ctx context.Context, channelID int64, limit int) ([]*entity.JoinRequest, error)
	CountPending(ctx context.Context, channelID int64) (int, error)
	// ListAll returns the full history of a channel, newest first.
	ListAll(ctx context.Context, channelID int64) ([]*entity.JoinRequest, error)
	MarkProcessed(ctx context.Context, requestID int64, status entity.RequestStatus, processedBy int64, at time.Time) error
	HourlyCounts(ctx context.Context, channelID int64, loc *time.Location) (entity.PeakHours, error)
}

// TaskRepo defines the contract for one-off scheduled task repository
type TaskRepo interface {
	Create(ctx context.Context, task *entity.ScheduledTask) error
	GetByID(ctx context.Context, taskID int64) (*entity.ScheduledTask, error)
	ListUnexecuted(ctx context.Context) ([]*entity.ScheduledTask, error)
	MarkExecuted(ctx context.Context, taskID int64) error
	Delete(ctx context.Context, taskID int64) error
}

// StatisticsRepo defines the contract for daily statistics repository
type StatisticsRepo interface {
	Increment(ctx context.Context, channelID int64, day time.Time, approved, rejected int) error
	Sum(ctx context.Context, channelID int64, from, to *time.Time) (entity.Statistics, error)
}
