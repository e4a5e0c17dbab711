package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/channel-gatekeeper/internal/domain"
	"github.com/diegoclair/channel-gatekeeper/internal/domain/contract"
	"github.com/diegoclair/channel-gatekeeper/internal/domain/entity"
	"go.uber.org/zap"
)

type adminService struct {
	dm        contract.DataManager
	queue     *queueManager
	executor  *batchExecutor
	scheduler *scheduler
	info      contract.ChannelInfoFetcher
	now       func() time.Time
	loc       *time.Location
	logger    *zap.Logger
}

func (s *adminService) AddChannel(ctx context.Context, channelID int64, title string) (*entity.Channel, error) {
	channel := &entity.Channel{ID: channelID, Title: strings.TrimSpace(title)}
	if err := s.dm.Channel().Upsert(ctx, channel); err != nil {
		return nil, err
	}

	s.invalidateInfo(channelID)
	s.logger.Info("channel added", zap.Int64("channel_id", channelID), zap.String("title", channel.Title))
	return s.GetChannel(ctx, channelID)
}

func (s *adminService) ListChannels(ctx context.Context, activeOnly bool) ([]*entity.Channel, error) {
	return s.dm.Channel().List(ctx, activeOnly)
}

func (s *adminService) GetChannel(ctx context.Context, channelID int64) (*entity.Channel, error) {
	channel, err := s.dm.Channel().GetByID(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}
	if channel == nil {
		return nil, domain.ErrChannelNotFound
	}
	return channel, nil
}

func (s *adminService) DeactivateChannel(ctx context.Context, channelID int64) error {
	if _, err := s.GetChannel(ctx, channelID); err != nil {
		return err
	}
	return s.dm.Channel().SetActive(ctx, channelID, false)
}

// DeleteChannel removes the channel with its requests, tasks and statistics.
func (s *adminService) DeleteChannel(ctx context.Context, channelID int64, confirmed bool) error {
	if !confirmed {
		return domain.ErrDeleteNotConfirmed
	}
	if _, err := s.GetChannel(ctx, channelID); err != nil {
		return err
	}

	if err := s.dm.Channel().Delete(ctx, channelID); err != nil {
		return err
	}

	cancelled := s.scheduler.CancelChannel(channelID)
	s.invalidateInfo(channelID)
	s.logger.Info("channel deleted", zap.Int64("channel_id", channelID), zap.Int("tasks_cancelled", cancelled))
	return nil
}

// SetWelcomeMessage stores the message sent to approved users. An empty text clears it.
func (s *adminService) SetWelcomeMessage(ctx context.Context, channelID int64, text string) error {
	if _, err := s.GetChannel(ctx, channelID); err != nil {
		return err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return s.dm.Channel().SetWelcomeMessage(ctx, channelID, nil)
	}
	return s.dm.Channel().SetWelcomeMessage(ctx, channelID, &text)
}

func (s *adminService) ToggleAutoApprove(ctx context.Context, channelID int64, enabled bool) error {
	if _, err := s.GetChannel(ctx, channelID); err != nil {
		return err
	}
	return s.dm.Channel().SetAutoApprove(ctx, channelID, enabled)
}

// SetSchedulePolicy replaces the recurring policy. It takes effect on the next tick.
func (s *adminService) SetSchedulePolicy(ctx context.Context, channelID int64, policy entity.SchedulePolicy) error {
	policy, err := entity.NewSchedulePolicy(policy.Enabled, policy.Days, policy.Time, policy.Count)
	if err != nil {
		return err
	}
	if _, err := s.GetChannel(ctx, channelID); err != nil {
		return err
	}

	return s.dm.Channel().SetSchedule(ctx, channelID, &policy)
}

func (s *adminService) ListPending(ctx context.Context, channelID int64) ([]*entity.JoinRequest, error) {
	return s.queue.ListPending(ctx, channelID)
}

func (s *adminService) PendingCount(ctx context.Context, channelID int64) (int, error) {
	return s.queue.PendingCount(ctx, channelID)
}

func (s *adminService) AcceptBatch(ctx context.Context, channelID int64, size entity.BatchSize, operator int64) (entity.BatchResult, error) {
	return s.executor.ApproveQueued(ctx, channelID, size, operator, SourceManual)
}

// ApproveRequest approves one pending request regardless of its queue position.
func (s *adminService) ApproveRequest(ctx context.Context, requestID, operator int64) (entity.Outcome, error) {
	request, channel, unlock, err := s.lockPending(ctx, requestID)
	if err != nil {
		return entity.Outcome{}, err
	}
	defer unlock()

	return s.executor.processOne(context.WithoutCancel(ctx), channel, request, operator)
}

// RejectRequest declines a pending request. A request the platform no longer
// knows about is rejected locally as well.
func (s *adminService) RejectRequest(ctx context.Context, requestID, operator int64) (entity.Outcome, error) {
	request, _, unlock, err := s.lockPending(ctx, requestID)
	if err != nil {
		return entity.Outcome{}, err
	}
	defer unlock()

	ctx = context.WithoutCancel(ctx)
	outcome := s.executor.gateway.Decline(ctx, request.ChannelID, request.UserID)
	if outcome.Kind == entity.OutcomeUnavailable {
		return outcome, nil
	}

	if err := s.executor.record(ctx, request, entity.StatusRejected, operator); err != nil {
		return outcome, err
	}
	return outcome, nil
}

// ReprocessRequest puts the user of a rejected request back in the queue.
// The rejected row is kept as history; the returned request is the pending one,
// which may already exist if the user asked again in the meantime.
func (s *adminService) ReprocessRequest(ctx context.Context, requestID int64) (*entity.JoinRequest, error) {
	request, err := s.dm.Request().GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get join request: %w", err)
	}
	if request == nil {
		return nil, domain.ErrRequestNotFound
	}

	unlock := s.executor.locks.Lock(request.ChannelID)
	defer unlock()

	request, err = s.dm.Request().GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get join request: %w", err)
	}
	if request == nil {
		return nil, domain.ErrRequestNotFound
	}
	if request.Status != entity.StatusRejected {
		return nil, domain.ErrRequestNotRejected
	}
	if _, err := s.GetChannel(ctx, request.ChannelID); err != nil {
		return nil, err
	}

	result, err := s.queue.Enqueue(ctx, request.ChannelID, request.UserID, request.Username, request.FullName)
	if err != nil {
		return nil, err
	}

	s.logger.Info("join request requeued",
		zap.Int64("request_id", requestID),
		zap.Int64("pending_id", result.Request.ID),
		zap.Bool("already_pending", result.Duplicate),
	)
	return result.Request, nil
}

// lockPending takes the channel lock of a request and checks it is still pending.
func (s *adminService) lockPending(ctx context.Context, requestID int64) (*entity.JoinRequest, *entity.Channel, func(), error) {
	request, err := s.dm.Request().GetByID(ctx, requestID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to get join request: %w", err)
	}
	if request == nil {
		return nil, nil, nil, domain.ErrRequestNotFound
	}

	unlock := s.executor.locks.Lock(request.ChannelID)

	request, err = s.dm.Request().GetByID(ctx, requestID)
	if err != nil {
		unlock()
		return nil, nil, nil, fmt.Errorf("failed to get join request: %w", err)
	}
	if request == nil {
		unlock()
		return nil, nil, nil, domain.ErrRequestNotFound
	}
	if !request.IsPending() {
		unlock()
		return nil, nil, nil, domain.ErrRequestNotPending
	}

	channel, err := s.GetChannel(ctx, request.ChannelID)
	if err != nil {
		unlock()
		return nil, nil, nil, err
	}

	return request, channel, unlock, nil
}

// BookOneOffTask persists a task and arms it. count is required for approve_n.
func (s *adminService) BookOneOffTask(ctx context.Context, channelID int64, action entity.TaskAction, at time.Time, count *int) (*entity.ScheduledTask, error) {
	if !at.After(s.now()) {
		return nil, domain.ErrTaskInPast
	}

	task, err := entity.NewScheduledTask(channelID, action, at, count)
	if err != nil {
		return nil, err
	}
	if _, err := s.GetChannel(ctx, channelID); err != nil {
		return nil, err
	}

	if err := s.dm.Task().Create(ctx, task); err != nil {
		return nil, err
	}

	s.scheduler.Register(task)
	s.logger.Info("task booked",
		zap.Int64("task_id", task.ID),
		zap.Int64("channel_id", channelID),
		zap.String("action", string(action)),
		zap.Time("run_at", task.RunAt),
	)
	return task, nil
}

func (s *adminService) CancelTask(ctx context.Context, taskID int64) error {
	task, err := s.dm.Task().GetByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}
	if task == nil {
		return domain.ErrTaskNotFound
	}
	if task.IsExecuted {
		return domain.ErrTaskExecuted
	}

	if err := s.dm.Task().Delete(ctx, taskID); err != nil {
		return err
	}

	armed := s.scheduler.Cancel(taskID)
	s.logger.Info("task cancelled", zap.Int64("task_id", taskID), zap.Bool("was_armed", armed))
	return nil
}

func (s *adminService) ExportAllRequests(ctx context.Context, channelID int64) ([]*entity.JoinRequest, error) {
	if _, err := s.GetChannel(ctx, channelID); err != nil {
		return nil, err
	}
	return s.dm.Request().ListAll(ctx, channelID)
}

func (s *adminService) GetStatistics(ctx context.Context, channelID int64, period entity.Period) (entity.Statistics, error) {
	from, to := period.Range(s.now().In(s.loc))
	return s.dm.Statistics().Sum(ctx, channelID, from, to)
}

func (s *adminService) PeakHours(ctx context.Context, channelID int64) (entity.PeakHours, error) {
	return s.dm.Request().HourlyCounts(ctx, channelID, s.loc)
}

func (s *adminService) invalidateInfo(channelID int64) {
	if cached, ok := s.info.(contract.ChannelInfoInvalidator); ok {
		cached.Invalidate(channelID)
	}
}

func (s *adminService) ChannelInfo(ctx context.Context, channelID int64) (*entity.ChannelInfo, error) {
	if s.info == nil {
		return nil, errors.New("channel info lookup is not configured")
	}
	return s.info.FetchChannelInfo(ctx, channelID)
}
