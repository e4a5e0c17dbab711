package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/diegoclair/channel-gatekeeper/internal/database"
	"github.com/diegoclair/channel-gatekeeper/internal/domain/contract"
	"github.com/diegoclair/channel-gatekeeper/internal/domain/entity"
	"github.com/diegoclair/channel-gatekeeper/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type allMocks struct {
	mockGateway  *mocks.MockApprovalGateway
	mockNotifier *mocks.MockNotifier
	mockReporter *mocks.MockReporter
	mockInfo     *mocks.MockChannelInfoFetcher
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type testEngine struct {
	*Instance
	db    *database.DB
	dm    contract.DataManager
	clock *fakeClock
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	m = allMocks{
		mockGateway:  mocks.NewMockApprovalGateway(ctrl),
		mockNotifier: mocks.NewMockNotifier(ctrl),
		mockReporter: mocks.NewMockReporter(ctrl),
		mockInfo:     mocks.NewMockChannelInfoFetcher(ctrl),
	}

	return
}

// newTestEngine wires the services over an in-memory store and the given mocks.
func newTestEngine(t *testing.T, m allMocks, now time.Time) *testEngine {
	t.Helper()

	db := database.SetupTestDB(t)
	t.Cleanup(func() { database.CleanupTestDB(t, db) })

	dm := database.NewInstance(db)
	clock := newFakeClock(now)

	instance := NewInstance(Dependencies{
		DataManager: dm,
		Gateway:     m.mockGateway,
		Notifier:    m.mockNotifier,
		Reporter:    m.mockReporter,
		ChannelInfo: m.mockInfo,
		Logger:      zap.NewNop(),
	}, Options{
		Location: time.UTC,
		Now:      clock.Now,
	})
	require.NotNil(t, instance)

	return &testEngine{Instance: instance, db: db, dm: dm, clock: clock}
}

func (e *testEngine) addChannel(t *testing.T, channelID int64, title string) *entity.Channel {
	t.Helper()

	channel, err := e.Admin.AddChannel(context.Background(), channelID, title)
	require.NoError(t, err)
	return channel
}

// enqueue adds pending requests for the given users, one second apart.
func (e *testEngine) enqueue(t *testing.T, channelID int64, userIDs ...int64) []*entity.JoinRequest {
	t.Helper()

	queue := newQueueManager(e.dm, e.clock.Now)
	requests := make([]*entity.JoinRequest, 0, len(userIDs))
	for _, userID := range userIDs {
		result, err := queue.Enqueue(context.Background(), channelID, userID, "", "")
		require.NoError(t, err)
		require.False(t, result.Duplicate)
		requests = append(requests, result.Request)
		e.clock.Advance(time.Second)
	}
	return requests
}

func (e *testEngine) pendingUsers(t *testing.T, channelID int64) []int64 {
	t.Helper()

	pending, err := e.Admin.ListPending(context.Background(), channelID)
	require.NoError(t, err)

	users := make([]int64, 0, len(pending))
	for _, request := range pending {
		users = append(users, request.UserID)
	}
	return users
}

// outcomes makes the gateway answer by user id, defaulting to Ok.
func outcomes(byUser map[int64]entity.Outcome) func(ctx context.Context, channelID, userID int64) entity.Outcome {
	return func(ctx context.Context, channelID, userID int64) entity.Outcome {
		if outcome, ok := byUser[userID]; ok {
			return outcome
		}
		return entity.Ok()
	}
}
