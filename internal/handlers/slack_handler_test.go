package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/diegoclair/channel-gatekeeper/internal/domain"
	"github.com/diegoclair/channel-gatekeeper/internal/domain/entity"
	"github.com/diegoclair/channel-gatekeeper/internal/handlers/test"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const channelID int64 = -1001234567890

type args struct {
	text   string
	userID string
}

type slashTestCase struct {
	name          string
	args          args
	buildMocks    func(ctx context.Context, m test.ServiceMocks, args args)
	checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
}

func runSlashTests(t *testing.T, tests []slashTestCase) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, router, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			if tt.args.userID == "" {
				tt.args.userID = "U987654321"
			}
			if tt.buildMocks != nil {
				tt.buildMocks(context.Background(), m, tt.args)
			}

			req := test.CreateSlackRequest(t, tt.args.text, tt.args.userID)
			recorder := test.CreateTestRecorder()

			router.ServeHTTP(recorder, req)

			tt.checkResponse(t, recorder)
		})
	}
}

func decodeMsg(t *testing.T, resp *httptest.ResponseRecorder) slack.Msg {
	t.Helper()
	require.Equal(t, http.StatusOK, resp.Code)

	var response slack.Msg
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	return response
}

func take(t *testing.T, n int) entity.BatchSize {
	t.Helper()
	size, err := entity.Take(n)
	require.NoError(t, err)
	return size
}

func TestSlackHandler_HandleSlashCommand_Verification(t *testing.T) {
	t.Run("Should reject an invalid signature", func(t *testing.T) {
		_, router, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		req := test.CreateSlackRequest(t, "channels", "U987654321")
		req.Header.Set("X-Slack-Signature", "v0=deadbeef")
		recorder := test.CreateTestRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Should reject a request without signature headers", func(t *testing.T) {
		_, router, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		req := test.CreateSlackRequest(t, "channels", "U987654321")
		req.Header.Del("X-Slack-Request-Timestamp")
		req.Header.Del("X-Slack-Signature")
		recorder := test.CreateTestRecorder()

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestSlackHandler_HandleSlashCommand_Parsing(t *testing.T) {
	runSlashTests(t, []slashTestCase{
		{
			name: "Should show help for an empty command",
			args: args{text: ""},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "Available commands")
			},
		},
		{
			name: "Should return error for unknown command",
			args: args{text: "dance"},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, "❌ unknown command: dance", response.Text)
			},
		},
		{
			name: "Should return error when arguments are missing",
			args: args{text: "accept -100"},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "missing arguments for accept")
			},
		},
		{
			name: "Should return error for invalid channel id",
			args: args{text: "pending mychannel"},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, `invalid channel id "mychannel"`)
			},
		},
	})
}

func TestSlackHandler_HandleSlashCommand_Channels(t *testing.T) {
	runSlashTests(t, []slashTestCase{
		{
			name: "Should list channels",
			args: args{text: "channels"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.AdminServiceMock.EXPECT().ListChannels(gomock.Any(), false).Return([]*entity.Channel{
					{ID: channelID, Title: "News", IsActive: true, AutoApprove: true, AcceptedCount: 12},
					{ID: -200, IsActive: false},
				}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "News (`-1001234567890`) - active, auto-approve on, 12 accepted")
				assert.Contains(t, response.Text, "ID: -200 (`-200`) - inactive, auto-approve off, 0 accepted")
			},
		},
		{
			name: "Should explain how to add a channel when none exist",
			args: args{text: "ls"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.AdminServiceMock.EXPECT().ListChannels(gomock.Any(), false).Return(nil, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "No channels yet")
			},
		},
		{
			name: "Should add channel with a multi-word title",
			args: args{text: "add -1001234567890 Daily News"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.AdminServiceMock.EXPECT().AddChannel(gomock.Any(), channelID, "Daily News").
					Return(&entity.Channel{ID: channelID, Title: "Daily News", IsActive: true}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, "✅ Daily News (`-1001234567890`) is active", response.Text)
			},
		},
		{
			name: "Should ask for confirmation before deleting",
			args: args{text: "delete -1001234567890"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.AdminServiceMock.EXPECT().DeleteChannel(gomock.Any(), channelID, false).
					Return(domain.ErrDeleteNotConfirmed).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "/gatekeeper delete -1001234567890 confirm")
			},
		},
		{
			name: "Should delete a confirmed channel",
			args: args{text: "delete -1001234567890 CONFIRM"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.AdminServiceMock.EXPECT().DeleteChannel(gomock.Any(), channelID, true).Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "Channel `-1001234567890` deleted")
			},
		},
		{
			name: "Should keep spacing of the welcome message",
			args: args{text: "welcome -1001234567890 Hi there!  Read the rules."},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.AdminServiceMock.EXPECT().SetWelcomeMessage(gomock.Any(), channelID, "Hi there!  Read the rules.").
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "saved")
			},
		},
		{
			name: "Should clear the welcome message",
			args: args{text: "welcome -1001234567890"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.AdminServiceMock.EXPECT().SetWelcomeMessage(gomock.Any(), channelID, "").Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "cleared")
			},
		},
		{
			name: "Should toggle auto-approve",
			args: args{text: "auto -1001234567890 on"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.AdminServiceMock.EXPECT().ToggleAutoApprove(gomock.Any(), channelID, true).Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "Auto-approve for `-1001234567890` is on")
			},
		},
		{
			name: "Should show domain errors",
			args: args{text: "auto -42 off"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.AdminServiceMock.EXPECT().ToggleAutoApprove(gomock.Any(), int64(-42), false).
					Return(domain.ErrChannelNotFound).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, "❌ Error updating auto-approve: channel not found", response.Text)
			},
		},
		{
			name: "Should hide internal errors",
			args: args{text: "remove -42"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.AdminServiceMock.EXPECT().DeactivateChannel(gomock.Any(), int64(-42)).
					Return(errors.New("database is locked")).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, "❌ Error deactivating channel", response.Text)
			},
		},
	})
}

func TestSlackHandler_HandleSlashCommand_Requests(t *testing.T) {
	runSlashTests(t, []slashTestCase{
		{
			name: "Should list pending requests oldest first",
			args: args{text: "pending -1001234567890"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.AdminServiceMock.EXPECT().ListPending(gomock.Any(), channelID).Return([]*entity.JoinRequest{
					{ID: 7, UserID: 1, FullName: "Ann Lee", Username: "ann", CreatedAt: time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)},
					{ID: 9, UserID: 2, CreatedAt: time.Date(2024, 6, 3, 9, 5, 0, 0, time.UTC)},
				}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "2 pending request(s)")
				assert.Contains(t, response.Text, "1. #7 Ann Lee (@ann) - 2024-06-03 09:00")
				assert.Contains(t, response.Text, "2. #9 user 2 - 2024-06-03 09:05")
			},
		},
		{
			name: "Should acknowledge a batch and run it in the background",
			args: args{text: "accept -1001234567890 50"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				gomock.InOrder(
					m.AdminServiceMock.EXPECT().GetChannel(gomock.Any(), channelID).
						Return(&entity.Channel{ID: channelID, IsActive: true}, nil),
					m.AdminServiceMock.EXPECT().AcceptBatch(gomock.Any(), channelID, take(t, 50), domain.SystemOperator).
						Return(entity.BatchResult{RunID: "run", ChannelID: channelID, Attempted: 50, Approved: 47, Rejected: 2, Unavailable: 1}, nil),
				)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Equal(t, "⏳ Approving 50 pending requests of `-1001234567890`. The result is posted to the report channel when the batch finishes.", response.Text)
			},
		},
		{
			name: "Should acknowledge an approve all batch",
			args: args{text: "accept -1001234567890 all"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.AdminServiceMock.EXPECT().GetChannel(gomock.Any(), channelID).
					Return(&entity.Channel{ID: channelID, IsActive: true}, nil).Times(1)
				m.AdminServiceMock.EXPECT().AcceptBatch(gomock.Any(), channelID, entity.AllRequests(), domain.SystemOperator).
					Return(entity.BatchResult{RunID: "run", ChannelID: channelID}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "Approving all pending requests")
			},
		},
		{
			name: "Should reject an invalid batch size",
			args: args{text: "accept -1001234567890 0"},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, "❌ "+domain.ErrInvalidBatchSize.Error(), response.Text)
			},
		},
		{
			name: "Should answer an unknown channel before starting a batch",
			args: args{text: "accept -1001234567890 all"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.AdminServiceMock.EXPECT().GetChannel(gomock.Any(), channelID).
					Return(nil, domain.ErrChannelNotFound).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, "❌ Error approving requests: channel not found", response.Text)
			},
		},
		{
			name: "Should keep the acknowledgement when the background batch fails",
			args: args{text: "accept -1001234567890 all"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.AdminServiceMock.EXPECT().GetChannel(gomock.Any(), channelID).
					Return(&entity.Channel{ID: channelID, IsActive: true}, nil).Times(1)
				m.AdminServiceMock.EXPECT().AcceptBatch(gomock.Any(), channelID, entity.AllRequests(), domain.SystemOperator).
					Return(entity.BatchResult{RunID: "run", Attempted: 3, Approved: 2}, errors.New("disk full")).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Contains(t, response.Text, "⏳")
			},
		},
		{
			name: "Should survive a panicking background batch",
			args: args{text: "accept -1001234567890 all"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.AdminServiceMock.EXPECT().GetChannel(gomock.Any(), channelID).
					Return(&entity.Channel{ID: channelID, IsActive: true}, nil).Times(1)
				m.AdminServiceMock.EXPECT().AcceptBatch(gomock.Any(), channelID, entity.AllRequests(), domain.SystemOperator).
					DoAndReturn(func(ctx context.Context, channelID int64, size entity.BatchSize, operator int64) (entity.BatchResult, error) {
						panic("gateway exploded")
					}).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "⏳")
			},
		},
		{
			name: "Should requeue a rejected request",
			args: args{text: "requeue #16"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.AdminServiceMock.EXPECT().ReprocessRequest(gomock.Any(), int64(16)).
					Return(&entity.JoinRequest{ID: 31, UserID: 5, Username: "ann", Status: entity.StatusPending}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, "🔁 Request #16 of @ann is pending again as #31", response.Text)
			},
		},
		{
			name: "Should refuse to requeue a request that was not rejected",
			args: args{text: "requeue 16"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.AdminServiceMock.EXPECT().ReprocessRequest(gomock.Any(), int64(16)).
					Return(nil, domain.ErrRequestNotRejected).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, "❌ Error requeueing request: only rejected join requests can be requeued", response.Text)
			},
		},
		{
			name: "Should approve a single request",
			args: args{text: "approve #15"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.AdminServiceMock.EXPECT().ApproveRequest(gomock.Any(), int64(15), domain.SystemOperator).
					Return(entity.Ok(), nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, "✅ Request #15 approved", response.Text)
			},
		},
		{
			name: "Should keep a request pending when Telegram is unavailable",
			args: args{text: "approve 15"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.AdminServiceMock.EXPECT().ApproveRequest(gomock.Any(), int64(15), domain.SystemOperator).
					Return(entity.Unavailable("Too Many Requests"), nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "request #15 is still pending: Too Many Requests")
			},
		},
		{
			name: "Should report a request that is no longer pending",
			args: args{text: "approve 15"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.AdminServiceMock.EXPECT().ApproveRequest(gomock.Any(), int64(15), domain.SystemOperator).
					Return(entity.Outcome{}, domain.ErrRequestNotPending).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, "❌ Error approving request: join request is not pending", response.Text)
			},
		},
		{
			name: "Should reject a request the platform already dropped",
			args: args{text: "reject 16"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.AdminServiceMock.EXPECT().RejectRequest(gomock.Any(), int64(16), domain.SystemOperator).
					Return(entity.Denied("HIDE_REQUESTER_MISSING"), nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, "🚫 Request #16 rejected", response.Text)
			},
		},
	})
}

func TestSlackHandler_HandleSlashCommand_Scheduling(t *testing.T) {
	mondayNoon, err := entity.NewSchedulePolicy(true, []entity.Weekday{2, 0}, entity.TimeOfDay{Hour: 12}, take(t, 50))
	require.NoError(t, err)

	runSlashTests(t, []slashTestCase{
		{
			name: "Should set a recurring schedule",
			args: args{text: "schedule -1001234567890 wed,mon 12:00 50"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.AdminServiceMock.EXPECT().SetSchedulePolicy(gomock.Any(), channelID, mondayNoon).Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, "⏰ `-1001234567890` will approve 50 request(s) on Monday, Wednesday at 12:00 (UTC)", response.Text)
			},
		},
		{
			name: "Should disable the schedule and keep its settings",
			args: args{text: "schedule -1001234567890 off"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				stored := mondayNoon
				m.AdminServiceMock.EXPECT().GetChannel(gomock.Any(), channelID).
					Return(&entity.Channel{ID: channelID, Schedule: &stored}, nil).Times(1)

				disabled := mondayNoon
				disabled.Enabled = false
				m.AdminServiceMock.EXPECT().SetSchedulePolicy(gomock.Any(), channelID, disabled).Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "Schedule for `-1001234567890` disabled")
			},
		},
		{
			name: "Should reject an invalid time of day",
			args: args{text: "schedule -1001234567890 mon 25:00 all"},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, "❌ "+domain.ErrInvalidTimeOfDay.Error(), response.Text)
			},
		},
		{
			name: "Should book a one-off approval of n requests",
			args: args{text: "book -1001234567890 2030-01-02 15:04 10"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				at := time.Date(2030, 1, 2, 15, 4, 0, 0, time.UTC)
				count := 10
				m.AdminServiceMock.EXPECT().BookOneOffTask(gomock.Any(), channelID, entity.ActionApproveN, at, &count).
					Return(&entity.ScheduledTask{ID: 3, ChannelID: channelID, Action: entity.ActionApproveN, RunAt: at, UserCount: &count}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, "📅 Task #3: approve 10 request(s) of `-1001234567890` at 2030-01-02 15:04", response.Text)
			},
		},
		{
			name: "Should book a one-off approval of all requests by default",
			args: args{text: "book -1001234567890 2030-01-02 15:04"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				at := time.Date(2030, 1, 2, 15, 4, 0, 0, time.UTC)
				m.AdminServiceMock.EXPECT().BookOneOffTask(gomock.Any(), channelID, entity.ActionApproveAll, at, nil).
					Return(&entity.ScheduledTask{ID: 4, ChannelID: channelID, Action: entity.ActionApproveAll, RunAt: at}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "Task #4: approve all request(s)")
			},
		},
		{
			name: "Should refuse to book in the past",
			args: args{text: "book -1001234567890 2020-01-02 15:04 all"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.AdminServiceMock.EXPECT().BookOneOffTask(gomock.Any(), channelID, entity.ActionApproveAll, gomock.Any(), nil).
					Return(nil, domain.ErrTaskInPast).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, "❌ Error booking approval: scheduled time must be in the future", response.Text)
			},
		},
		{
			name: "Should cancel a task",
			args: args{text: "cancel 3"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.AdminServiceMock.EXPECT().CancelTask(gomock.Any(), int64(3)).Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, "Task #3 cancelled", response.Text)
			},
		},
		{
			name: "Should refuse to cancel a task that already ran",
			args: args{text: "cancel 4"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.AdminServiceMock.EXPECT().CancelTask(gomock.Any(), int64(4)).Return(domain.ErrTaskExecuted).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, "❌ Error cancelling task: scheduled task already ran and cannot be cancelled", response.Text)
			},
		},
	})
}

func TestSlackHandler_HandleSlashCommand_Reports(t *testing.T) {
	runSlashTests(t, []slashTestCase{
		{
			name: "Should show statistics for a period",
			args: args{text: "stats -1001234567890 Week"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.AdminServiceMock.EXPECT().GetStatistics(gomock.Any(), channelID, entity.PeriodWeek).
					Return(entity.Statistics{Approved: 30, Rejected: 4}, nil).Times(1)
				m.AdminServiceMock.EXPECT().PendingCount(gomock.Any(), channelID).Return(6, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "(week)")
				assert.Contains(t, response.Text, "Approved: 30")
				assert.Contains(t, response.Text, "Rejected: 4")
				assert.Contains(t, response.Text, "Pending now: 6")
			},
		},
		{
			name: "Should reject an unknown period",
			args: args{text: "stats -1001234567890 decade"},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, "❌ "+domain.ErrInvalidPeriod.Error(), response.Text)
			},
		},
		{
			name: "Should list peak hours in order",
			args: args{text: "peak -1001234567890"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.AdminServiceMock.EXPECT().PeakHours(gomock.Any(), channelID).
					Return(entity.PeakHours{21: 4, 9: 2}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "`09:00` 2\n`21:00` 4")
			},
		},
		{
			name: "Should show channel info even when metadata lookup fails",
			args: args{text: "info -1001234567890"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				welcome := "Hello!"
				m.AdminServiceMock.EXPECT().GetChannel(gomock.Any(), channelID).
					Return(&entity.Channel{ID: channelID, Title: "News", IsActive: true, AcceptedCount: 3, WelcomeMessage: &welcome}, nil).Times(1)
				m.AdminServiceMock.EXPECT().ChannelInfo(gomock.Any(), channelID).
					Return(nil, errors.New("timeout")).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "*News*")
				assert.Contains(t, response.Text, "Schedule: off")
				assert.Contains(t, response.Text, "Welcome: Hello!")
				assert.NotContains(t, response.Text, "Link:")
			},
		},
		{
			name: "Should flag a stored schedule that no longer decodes",
			args: args{text: "info -1001234567890"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.AdminServiceMock.EXPECT().GetChannel(gomock.Any(), channelID).
					Return(&entity.Channel{ID: channelID, Title: "News", ScheduleInvalid: true}, nil).Times(1)
				m.AdminServiceMock.EXPECT().ChannelInfo(gomock.Any(), channelID).
					Return(nil, errors.New("timeout")).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "Schedule: stored policy is invalid")
				assert.NotContains(t, response.Text, "Schedule: off")
			},
		},
		{
			name: "Should include the public link from metadata",
			args: args{text: "info -1001234567890"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.AdminServiceMock.EXPECT().GetChannel(gomock.Any(), channelID).
					Return(&entity.Channel{ID: channelID, Title: "News"}, nil).Times(1)
				m.AdminServiceMock.EXPECT().ChannelInfo(gomock.Any(), channelID).
					Return(&entity.ChannelInfo{ID: channelID, Title: "News", Username: "dailynews"}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "https://t.me/dailynews")
			},
		},
	})
}
