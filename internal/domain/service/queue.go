package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/channel-gatekeeper/internal/domain/contract"
	"github.com/diegoclair/channel-gatekeeper/internal/domain/entity"
)

// queueManager owns the per-channel FIFO of pending join requests.
type queueManager struct {
	dm  contract.DataManager
	now func() time.Time
}

func newQueueManager(dm contract.DataManager, now func() time.Time) *queueManager {
	return &queueManager{dm: dm, now: now}
}

// Enqueue stores a pending request. A user with a pending request in the
// channel gets the existing one back with Duplicate set.
func (q *queueManager) Enqueue(ctx context.Context, channelID, userID int64, username, fullName string) (entity.EnqueueResult, error) {
	request := &entity.JoinRequest{
		ChannelID: channelID,
		UserID:    userID,
		Username:  username,
		FullName:  fullName,
		CreatedAt: q.now().UTC(),
	}

	stored, created, err := q.dm.Request().CreatePending(ctx, request)
	if err != nil {
		return entity.EnqueueResult{}, fmt.Errorf("failed to enqueue join request: %w", err)
	}

	return entity.EnqueueResult{Request: stored, Duplicate: !created}, nil
}

// ListPending returns pending requests oldest first, ties broken by id.
func (q *queueManager) ListPending(ctx context.Context, channelID int64) ([]*entity.JoinRequest, error) {
	return q.dm.Request().ListPending(ctx, channelID, 0)
}

// SelectBatch returns the oldest pending requests: all of them, or at most n.
func (q *queueManager) SelectBatch(ctx context.Context, channelID int64, size entity.BatchSize) ([]*entity.JoinRequest, error) {
	return q.dm.Request().ListPending(ctx, channelID, size.Limit())
}

func (q *queueManager) PendingCount(ctx context.Context, channelID int64) (int, error) {
	return q.dm.Request().CountPending(ctx, channelID)
}
