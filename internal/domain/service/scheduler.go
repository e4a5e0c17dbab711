package service

import (
	"container/heap"
	"context"
	"sync"
	"time"

	"github.com/diegoclair/channel-gatekeeper/internal/domain"
	"github.com/diegoclair/channel-gatekeeper/internal/domain/contract"
	"github.com/diegoclair/channel-gatekeeper/internal/domain/entity"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// oneOffJob is an in-memory registration of a booked task.
type oneOffJob struct {
	taskID    int64
	channelID int64
	runAt     time.Time
	index     int
}

// jobQueue orders jobs by run time, then task id.
type jobQueue []*oneOffJob

func (q jobQueue) Len() int { return len(q) }

func (q jobQueue) Less(i, j int) bool {
	if q[i].runAt.Equal(q[j].runAt) {
		return q[i].taskID < q[j].taskID
	}
	return q[i].runAt.Before(q[j].runAt)
}

func (q jobQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *jobQueue) Push(x any) {
	job := x.(*oneOffJob)
	job.index = len(*q)
	*q = append(*q, job)
}

func (q *jobQueue) Pop() any {
	old := *q
	n := len(old)
	job := old[n-1]
	old[n-1] = nil
	job.index = -1
	*q = old[:n-1]
	return job
}

type scheduler struct {
	dm           contract.DataManager
	executor     *batchExecutor
	logger       *zap.Logger
	now          func() time.Time
	loc          *time.Location
	overdueDelay time.Duration
	sem          *semaphore.Weighted

	mu        sync.Mutex
	jobs      map[int64]*oneOffJob
	queue     jobQueue
	lastFired map[int64]time.Time

	wake     chan struct{}
	stopChan chan struct{}
	cancel   context.CancelFunc
	running  bool
	loop     sync.WaitGroup
	batches  sync.WaitGroup
}

func newScheduler(dm contract.DataManager, executor *batchExecutor, opts Options, logger *zap.Logger) *scheduler {
	return &scheduler{
		dm:           dm,
		executor:     executor,
		logger:       logger,
		now:          opts.Now,
		loc:          opts.Location,
		overdueDelay: opts.OverdueDelay,
		sem:          semaphore.NewWeighted(opts.MaxConcurrentChannels),
		jobs:         make(map[int64]*oneOffJob),
		lastFired:    make(map[int64]time.Time),
		wake:         make(chan struct{}, 1),
	}
}

// Start reloads booked tasks and begins the timer loop.
func (s *scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.stopChan = make(chan struct{})
	ctx, s.cancel = context.WithCancel(ctx)
	s.mu.Unlock()

	loaded, err := s.LoadPendingTasks(ctx)
	if err != nil {
		s.logger.Error("failed to reload booked tasks", zap.Error(err))
	}

	s.logger.Info("scheduler starting",
		zap.Int("tasks", loaded),
		zap.String("timezone", s.loc.String()),
	)

	s.loop.Add(1)
	go func() {
		defer s.loop.Done()
		s.mainLoop(ctx)
	}()
	return nil
}

// Stop ends the timer loop and waits for batches already running.
// Batches waiting for a concurrency slot are dropped.
func (s *scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopChan)
	s.cancel()
	s.mu.Unlock()

	s.logger.Info("scheduler stopping")
	s.loop.Wait()
	s.batches.Wait()
}

// LoadPendingTasks registers every unexecuted task. Tasks whose time has
// passed are moved to now plus the overdue delay.
func (s *scheduler) LoadPendingTasks(ctx context.Context) (int, error) {
	tasks, err := s.dm.Task().ListUnexecuted(ctx)
	if err != nil {
		return 0, err
	}

	now := s.now()
	for _, task := range tasks {
		if task.RunAt.Before(now) {
			s.logger.Info("overdue task rescheduled",
				zap.Int64("task_id", task.ID),
				zap.Time("run_at", task.RunAt),
			)
			task.RunAt = now.Add(s.overdueDelay)
		}
		s.Register(task)
	}

	return len(tasks), nil
}

// Register arms a job for the task. Registering the same task id again
// replaces the previous registration.
func (s *scheduler) Register(task *entity.ScheduledTask) {
	s.mu.Lock()
	if job, ok := s.jobs[task.ID]; ok {
		job.channelID = task.ChannelID
		job.runAt = task.RunAt
		heap.Fix(&s.queue, job.index)
	} else {
		job := &oneOffJob{
			taskID:    task.ID,
			channelID: task.ChannelID,
			runAt:     task.RunAt,
		}
		s.jobs[task.ID] = job
		heap.Push(&s.queue, job)
	}
	s.mu.Unlock()

	s.notify()
}

// Cancel removes a registered job. It reports whether one was armed.
func (s *scheduler) Cancel(taskID int64) bool {
	s.mu.Lock()
	job, ok := s.jobs[taskID]
	if ok {
		heap.Remove(&s.queue, job.index)
		delete(s.jobs, taskID)
	}
	s.mu.Unlock()

	if ok {
		s.notify()
	}
	return ok
}

// CancelChannel removes every job of a channel.
func (s *scheduler) CancelChannel(channelID int64) int {
	s.mu.Lock()
	var removed int
	for id, job := range s.jobs {
		if job.channelID != channelID {
			continue
		}
		heap.Remove(&s.queue, job.index)
		delete(s.jobs, id)
		removed++
	}
	delete(s.lastFired, channelID)
	s.mu.Unlock()

	if removed > 0 {
		s.notify()
	}
	return removed
}

// Armed returns the run time of a registered task.
func (s *scheduler) Armed(taskID int64) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[taskID]
	if !ok {
		return time.Time{}, false
	}
	return job.runAt, true
}

func (s *scheduler) PendingJobs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

func (s *scheduler) notify() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *scheduler) mainLoop(ctx context.Context) {
	for {
		now := s.now()
		next := now.Truncate(time.Minute).Add(time.Minute)
		if due, ok := s.nextJobTime(); ok && due.Before(next) {
			next = due
		}

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-timer.C:
			now = s.now()
			s.runDueJobs(ctx, now)
			s.tick(ctx, now)

		case <-s.wake:
			timer.Stop()
			continue

		case <-s.stopChan:
			timer.Stop()
			return
		}
	}
}

func (s *scheduler) nextJobTime() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 {
		return time.Time{}, false
	}
	return s.queue[0].runAt, true
}

// tick fires every channel whose recurring policy matches the current minute.
// A channel fires at most once per minute.
func (s *scheduler) tick(ctx context.Context, now time.Time) []int64 {
	channels, err := s.dm.Channel().ListScheduled(ctx)
	if err != nil {
		s.logger.Error("failed to load scheduled channels", zap.Error(err))
		return nil
	}

	local := now.In(s.loc)
	minute := now.Truncate(time.Minute)

	var fired []int64
	for _, channel := range channels {
		if channel.ScheduleInvalid {
			s.logger.Warn("stored schedule is invalid, channel skipped", zap.Int64("channel_id", channel.ID))
			continue
		}

		policy := channel.EffectiveSchedule()
		if !policy.Matches(local) {
			continue
		}

		s.mu.Lock()
		last, ok := s.lastFired[channel.ID]
		if ok && last.Equal(minute) {
			s.mu.Unlock()
			continue
		}
		s.lastFired[channel.ID] = minute
		s.mu.Unlock()

		fired = append(fired, channel.ID)
		channelID, size := channel.ID, policy.Count
		s.dispatch(ctx, func(ctx context.Context) {
			s.fireRecurring(ctx, channelID, size)
		})
	}

	return fired
}

// runDueJobs pops and dispatches every job due at now.
func (s *scheduler) runDueJobs(ctx context.Context, now time.Time) []int64 {
	var due []*oneOffJob

	s.mu.Lock()
	for len(s.queue) > 0 && !s.queue[0].runAt.After(now) {
		job := heap.Pop(&s.queue).(*oneOffJob)
		delete(s.jobs, job.taskID)
		due = append(due, job)
	}
	s.mu.Unlock()

	ids := make([]int64, 0, len(due))
	for _, job := range due {
		ids = append(ids, job.taskID)
		job := job
		s.dispatch(ctx, func(ctx context.Context) {
			s.fireTask(ctx, job)
		})
	}
	return ids
}

// dispatch runs fn in its own goroutine once a concurrency slot is free.
func (s *scheduler) dispatch(ctx context.Context, fn func(ctx context.Context)) {
	s.batches.Add(1)
	go func() {
		defer s.batches.Done()

		if err := s.sem.Acquire(ctx, 1); err != nil {
			return
		}
		defer s.sem.Release(1)

		fn(ctx)
	}()
}

func (s *scheduler) fireRecurring(ctx context.Context, channelID int64, size entity.BatchSize) {
	log := s.logger.With(zap.Int64("channel_id", channelID))
	defer func() {
		if r := recover(); r != nil {
			log.Error("scheduled batch panicked", zap.Any("panic", r))
		}
	}()

	result, err := s.executor.ApproveQueued(ctx, channelID, size, domain.SystemOperator, SourceSchedule)
	if err != nil {
		log.Error("scheduled batch failed", zap.String("run_id", result.RunID), zap.Error(err))
	}
}

// fireTask runs a booked task. The task is marked executed once the batch
// was started, whatever its outcome; otherwise it stays booked.
func (s *scheduler) fireTask(ctx context.Context, job *oneOffJob) {
	log := s.logger.With(
		zap.Int64("task_id", job.taskID),
		zap.Int64("channel_id", job.channelID),
	)

	var started bool
	defer func() {
		if r := recover(); r != nil {
			log.Error("booked task panicked", zap.Any("panic", r))
		}
		if !started {
			return
		}
		if err := s.dm.Task().MarkExecuted(context.WithoutCancel(ctx), job.taskID); err != nil {
			log.Error("failed to mark task executed", zap.Error(err))
		}
	}()

	task, err := s.dm.Task().GetByID(ctx, job.taskID)
	if err != nil {
		log.Error("failed to load booked task", zap.Error(err))
		return
	}
	if task == nil || task.IsExecuted {
		log.Debug("booked task gone or already executed")
		return
	}

	size, err := task.BatchSize()
	if err != nil {
		log.Error("booked task has an invalid batch size, refusing to run it", zap.Error(err))
		return
	}

	result, err := s.executor.ApproveQueued(ctx, task.ChannelID, size, domain.SystemOperator, SourceOneOff)
	started = result.RunID != ""
	if err != nil {
		log.Error("booked task failed", zap.String("run_id", result.RunID), zap.Error(err))
	}
}

// wait blocks until dispatched batches are done.
func (s *scheduler) wait() {
	s.batches.Wait()
}
