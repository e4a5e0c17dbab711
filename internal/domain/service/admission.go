package service

import (
	"context"
	"fmt"

	"github.com/diegoclair/channel-gatekeeper/internal/domain"
	"github.com/diegoclair/channel-gatekeeper/internal/domain/contract"
	"github.com/diegoclair/channel-gatekeeper/internal/domain/entity"
	"go.uber.org/zap"
)

// Decide is the admission policy for a join request to the given channel.
func Decide(channel *entity.Channel) entity.Admission {
	switch {
	case channel == nil || !channel.IsActive:
		return entity.AdmissionReject
	case channel.AutoApprove:
		return entity.AdmissionApprove
	default:
		return entity.AdmissionEnqueue
	}
}

type admissionService struct {
	dm       contract.DataManager
	queue    *queueManager
	executor *batchExecutor
	logger   *zap.Logger
}

func newAdmission(dm contract.DataManager, queue *queueManager, executor *batchExecutor, logger *zap.Logger) *admissionService {
	return &admissionService{
		dm:       dm,
		queue:    queue,
		executor: executor,
		logger:   logger,
	}
}

func (s *admissionService) HandleJoinRequest(ctx context.Context, event entity.JoinRequestEvent) (entity.Admission, error) {
	log := s.logger.With(
		zap.Int64("channel_id", event.ChannelID),
		zap.Int64("user_id", event.UserID),
	)

	channel, err := s.dm.Channel().GetByID(ctx, event.ChannelID)
	if err != nil {
		return entity.AdmissionReject, fmt.Errorf("failed to get channel: %w", err)
	}

	if channel == nil {
		// unknown channels are stored so the request is not lost and an operator can configure them
		channel, err = s.dm.Channel().CreateIfMissing(ctx, event.ChannelID, event.ChannelTitle, true)
		if err != nil {
			return entity.AdmissionReject, fmt.Errorf("failed to create channel: %w", err)
		}
		log.Info("channel created from join request", zap.String("title", event.ChannelTitle))
	}

	decision := Decide(channel)
	if decision == entity.AdmissionReject {
		log.Debug("join request ignored for inactive channel")
		return decision, nil
	}

	enqueued, err := s.queue.Enqueue(ctx, channel.ID, event.UserID, event.Username, event.FullName)
	if err != nil {
		return decision, err
	}
	if enqueued.Duplicate {
		log.Debug("user already has a pending request", zap.Int64("request_id", enqueued.Request.ID))
	}

	if decision == entity.AdmissionEnqueue {
		return decision, nil
	}

	unlock := s.executor.locks.Lock(channel.ID)
	defer unlock()

	request, err := s.dm.Request().GetByID(ctx, enqueued.Request.ID)
	if err != nil {
		return decision, fmt.Errorf("failed to reload join request: %w", err)
	}
	if request == nil || !request.IsPending() {
		return decision, nil
	}

	result, err := s.executor.RunBatch(ctx, channel, []*entity.JoinRequest{request}, domain.SystemOperator)
	if err != nil {
		return decision, fmt.Errorf("failed to auto-approve request: %w", err)
	}
	if result.Unavailable > 0 {
		log.Info("auto-approve unavailable, request kept pending", zap.Int64("request_id", enqueued.Request.ID))
	}

	return decision, nil
}

// DiscoverChannel records a channel the bot was added to. It stays inactive
// until an operator adds it.
func (s *admissionService) DiscoverChannel(ctx context.Context, channelID int64, title string) error {
	channel, err := s.dm.Channel().CreateIfMissing(ctx, channelID, title, false)
	if err != nil {
		return fmt.Errorf("failed to save discovered channel: %w", err)
	}

	s.logger.Info("channel discovered",
		zap.Int64("channel_id", channel.ID),
		zap.String("title", channel.Title),
		zap.Bool("active", channel.IsActive),
	)
	return nil
}
