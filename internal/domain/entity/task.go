package entity

import (
	"time"

	"github.com/diegoclair/channel-gatekeeper/internal/domain"
)

type TaskAction string

const (
	ActionApproveAll TaskAction = "approve_all"
	ActionApproveN   TaskAction = "approve_n"
)

// ScheduledTask is a one-off batch approval booked for a single moment.
type ScheduledTask struct {
	ID         int64
	ChannelID  int64
	Action     TaskAction
	RunAt      time.Time
	UserCount  *int
	IsExecuted bool
	CreatedAt  time.Time
}

// NewScheduledTask validates that UserCount is set exactly when the action is approve_n.
func NewScheduledTask(channelID int64, action TaskAction, runAt time.Time, userCount *int) (*ScheduledTask, error) {
	switch action {
	case ActionApproveAll:
		if userCount != nil {
			return nil, domain.ErrInvalidAction
		}
	case ActionApproveN:
		if userCount == nil || *userCount <= 0 {
			return nil, domain.ErrInvalidBatchSize
		}
	default:
		return nil, domain.ErrInvalidAction
	}

	return &ScheduledTask{
		ChannelID: channelID,
		Action:    action,
		RunAt:     runAt,
		UserCount: userCount,
	}, nil
}

// TaskForBatch maps a batch size to the matching task action.
func TaskForBatch(channelID int64, runAt time.Time, size BatchSize) (*ScheduledTask, error) {
	if size.IsAll() {
		return NewScheduledTask(channelID, ActionApproveAll, runAt, nil)
	}
	n := size.Limit()
	return NewScheduledTask(channelID, ActionApproveN, runAt, &n)
}

// BatchSize maps the stored action back to a batch size. An approve_n task
// without a positive count is refused rather than widened to all.
func (t *ScheduledTask) BatchSize() (BatchSize, error) {
	switch t.Action {
	case ActionApproveAll:
		return AllRequests(), nil
	case ActionApproveN:
		if t.UserCount == nil {
			return BatchSize{}, domain.ErrInvalidBatchSize
		}
		return Take(*t.UserCount)
	default:
		return BatchSize{}, domain.ErrInvalidAction
	}
}
