package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/channel-gatekeeper/internal/handlers"
	"github.com/diegoclair/channel-gatekeeper/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const (
	SigningSecret = "test-signing-secret"
	ExportToken   = "test-export-token"
)

type ServiceMocks struct {
	AdminServiceMock *mocks.MockAdminService
}

// Router serves a request and then waits for the batches it started in the background,
// so mock expectations can be checked right after ServeHTTP returns.
type Router struct {
	*gin.Engine
	slack *handlers.SlackHandler
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.Engine.ServeHTTP(w, req)
	r.slack.Wait()
}

// GetHandlerTest builds the full router around a mocked admin service. Times are shown in UTC.
func GetHandlerTest(t *testing.T) (m ServiceMocks, router *Router, ctrl *gomock.Controller) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		AdminServiceMock: mocks.NewMockAdminService(ctrl),
	}

	logger := zap.NewNop()
	slackHandler := handlers.NewSlackHandler(m.AdminServiceMock, SigningSecret, time.UTC, logger)
	exportHandler := handlers.NewExportHandler(m.AdminServiceMock, ExportToken, time.UTC, logger)
	router = &Router{
		Engine: handlers.NewRouter(slackHandler, exportHandler, logger),
		slack:  slackHandler,
	}

	return
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, text, userID string) *http.Request {
	t.Helper()

	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {"T123456789"},
		"team_domain":  {"test-team"},
		"channel_id":   {"C123456789"},
		"channel_name": {"gatekeeper-admin"},
		"user_id":      {userID},
		"user_name":    {"test-user"},
		"command":      {"/gatekeeper"},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	body := form.Encode()

	req, err := http.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)
	req.Header.Set("X-Slack-Signature", generateSlackSignature(SigningSecret, timestamp, body))

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
