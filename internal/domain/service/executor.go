package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/channel-gatekeeper/internal/domain"
	"github.com/diegoclair/channel-gatekeeper/internal/domain/contract"
	"github.com/diegoclair/channel-gatekeeper/internal/domain/entity"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Batch sources reported to operators.
const (
	SourceManual    = "manual"
	SourceSchedule  = "schedule"
	SourceOneOff    = "one-off"
	SourceAutoApply = "auto-approve"
)

type batchExecutor struct {
	dm       contract.DataManager
	queue    *queueManager
	gateway  contract.ApprovalGateway
	notifier contract.Notifier
	reporter contract.Reporter
	locks    *channelLocks
	now      func() time.Time
	loc      *time.Location
	logger   *zap.Logger
}

// ApproveQueued selects the oldest pending requests of a channel and runs them
// through the gateway while holding the channel lock.
// A non-empty RunID in the result means the batch itself was started.
func (e *batchExecutor) ApproveQueued(ctx context.Context, channelID int64, size entity.BatchSize, operator int64, source string) (entity.BatchResult, error) {
	unlock := e.locks.Lock(channelID)
	defer unlock()

	channel, err := e.dm.Channel().GetByID(ctx, channelID)
	if err != nil {
		return entity.BatchResult{ChannelID: channelID}, fmt.Errorf("failed to get channel: %w", err)
	}
	if channel == nil {
		return entity.BatchResult{ChannelID: channelID}, domain.ErrChannelNotFound
	}

	batch, err := e.queue.SelectBatch(ctx, channelID, size)
	if err != nil {
		return entity.BatchResult{ChannelID: channelID}, fmt.Errorf("failed to select batch: %w", err)
	}

	result, err := e.RunBatch(ctx, channel, batch, operator)
	if result.Attempted > 0 {
		e.report(ctx, source, channel, result)
	}
	return result, err
}

// report is best-effort: a failing reporter never changes the batch result.
func (e *batchExecutor) report(ctx context.Context, source string, channel *entity.Channel, result entity.BatchResult) {
	if e.reporter == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("batch report panicked",
				zap.Int64("channel_id", channel.ID),
				zap.String("run_id", result.RunID),
				zap.Any("panic", r),
			)
		}
	}()

	e.reporter.BatchCompleted(context.WithoutCancel(ctx), source, channel, result)
}

// RunBatch approves each request in order. Callers must hold the channel lock.
// A remote failure never aborts the batch; a persistence failure does, and the
// partial result is returned with the error.
func (e *batchExecutor) RunBatch(ctx context.Context, channel *entity.Channel, batch []*entity.JoinRequest, operator int64) (entity.BatchResult, error) {
	// a started batch runs to completion even if the caller goes away
	ctx = context.WithoutCancel(ctx)

	result := entity.BatchResult{
		RunID:     uuid.NewString(),
		ChannelID: channel.ID,
	}
	log := e.logger.With(
		zap.String("run_id", result.RunID),
		zap.Int64("channel_id", channel.ID),
	)

	for _, request := range batch {
		outcome, err := e.processOne(ctx, channel, request, operator)
		if errors.Is(err, domain.ErrRequestNotPending) {
			log.Warn("request left pending state outside this batch", zap.Int64("request_id", request.ID))
			continue
		}

		result.Attempted++
		if err != nil {
			log.Error("batch aborted on persistence error",
				zap.Int64("request_id", request.ID),
				zap.Error(err),
			)
			return result, err
		}

		switch outcome.Kind {
		case entity.OutcomeOK:
			result.Approved++
		case entity.OutcomeDenied:
			result.Rejected++
		default:
			result.Unavailable++
			log.Debug("approval unavailable, request stays pending",
				zap.Int64("request_id", request.ID),
				zap.String("reason", outcome.Reason),
			)
		}
	}

	log.Info("batch finished",
		zap.Int("attempted", result.Attempted),
		zap.Int("approved", result.Approved),
		zap.Int("rejected", result.Rejected),
		zap.Int("unavailable", result.Unavailable),
	)
	return result, nil
}

// processOne calls the gateway for a single request and records the outcome.
func (e *batchExecutor) processOne(ctx context.Context, channel *entity.Channel, request *entity.JoinRequest, operator int64) (entity.Outcome, error) {
	outcome := e.approve(ctx, channel.ID, request.UserID)

	switch outcome.Kind {
	case entity.OutcomeOK:
		if err := e.record(ctx, request, entity.StatusApproved, operator); err != nil {
			return outcome, err
		}
		e.welcome(ctx, channel, request)
	case entity.OutcomeDenied:
		if err := e.record(ctx, request, entity.StatusRejected, operator); err != nil {
			return outcome, err
		}
	}

	return outcome, nil
}

// approve treats a panicking gateway as unavailable so the request stays pending.
func (e *batchExecutor) approve(ctx context.Context, channelID, userID int64) (outcome entity.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("approval gateway panicked",
				zap.Int64("channel_id", channelID),
				zap.Int64("user_id", userID),
				zap.Any("panic", r),
			)
			outcome = entity.Unavailable(fmt.Sprint(r))
		}
	}()

	return e.gateway.Approve(ctx, channelID, userID)
}

// record moves a request out of pending and updates the counters in one transaction.
func (e *batchExecutor) record(ctx context.Context, request *entity.JoinRequest, status entity.RequestStatus, operator int64) error {
	now := e.now()
	day := now.In(e.loc)

	return e.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := tx.Request().MarkProcessed(ctx, request.ID, status, operator, now); err != nil {
			return err
		}

		approved, rejected := 0, 1
		if status == entity.StatusApproved {
			approved, rejected = 1, 0
			if err := tx.Channel().IncrementAccepted(ctx, request.ChannelID); err != nil {
				return err
			}
		}

		if err := tx.Statistics().Increment(ctx, request.ChannelID, day, approved, rejected); err != nil {
			return err
		}

		request.Status = status
		request.ProcessedBy = &operator
		request.ProcessedAt = &now
		return nil
	})
}

func (e *batchExecutor) welcome(ctx context.Context, channel *entity.Channel, request *entity.JoinRequest) {
	if !channel.HasWelcome() || e.notifier == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("welcome notifier panicked",
				zap.Int64("channel_id", channel.ID),
				zap.Int64("user_id", request.UserID),
				zap.Any("panic", r),
			)
		}
	}()

	if err := e.notifier.SendWelcome(ctx, request.UserID, *channel.WelcomeMessage); err != nil {
		e.logger.Debug("welcome message not delivered",
			zap.Int64("channel_id", channel.ID),
			zap.Int64("user_id", request.UserID),
			zap.Error(err),
		)
	}
}
