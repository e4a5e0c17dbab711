package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/diegoclair/channel-gatekeeper/internal/domain"
	"github.com/diegoclair/channel-gatekeeper/internal/domain/contract"
	"github.com/diegoclair/channel-gatekeeper/internal/domain/entity"
	slackcmd "github.com/diegoclair/channel-gatekeeper/internal/slack"
	"github.com/gin-gonic/gin"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// pendingPreview caps how many requests the pending command lists.
const pendingPreview = 20

type SlackHandler struct {
	admin         contract.AdminService
	signingSecret string
	loc           *time.Location
	logger        *zap.Logger

	// batches started by accept run past the slash command response
	background sync.WaitGroup
}

func NewSlackHandler(admin contract.AdminService, signingSecret string, loc *time.Location, logger *zap.Logger) *SlackHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &SlackHandler{
		admin:         admin,
		signingSecret: signingSecret,
		loc:           loc,
		logger:        logger,
	}
}

func (h *SlackHandler) HandleSlashCommand(c *gin.Context) {
	r := c.Request

	body, err := io.ReadAll(r.Body)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		c.JSON(http.StatusOK, h.createErrorResponse(err.Error()))
		return
	}

	h.logger.Info("slash command received",
		zap.String("command", string(cmd.Type)),
		zap.String("slack_user", s.UserID),
		zap.String("slack_channel", s.ChannelID),
	)

	c.JSON(http.StatusOK, h.handleCommand(r.Context(), cmd))
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdChannels:
		return h.handleChannels(ctx)
	case slackcmd.CmdAdd:
		return h.handleAdd(ctx, cmd)
	case slackcmd.CmdRemove:
		return h.handleRemove(ctx, cmd)
	case slackcmd.CmdDelete:
		return h.handleDelete(ctx, cmd)
	case slackcmd.CmdPending:
		return h.handlePending(ctx, cmd)
	case slackcmd.CmdAccept:
		return h.handleAccept(ctx, cmd)
	case slackcmd.CmdApprove:
		return h.handleApprove(ctx, cmd)
	case slackcmd.CmdReject:
		return h.handleReject(ctx, cmd)
	case slackcmd.CmdRequeue:
		return h.handleRequeue(ctx, cmd)
	case slackcmd.CmdAuto:
		return h.handleAuto(ctx, cmd)
	case slackcmd.CmdWelcome:
		return h.handleWelcome(ctx, cmd)
	case slackcmd.CmdSchedule:
		return h.handleSchedule(ctx, cmd)
	case slackcmd.CmdBook:
		return h.handleBook(ctx, cmd)
	case slackcmd.CmdCancel:
		return h.handleCancel(ctx, cmd)
	case slackcmd.CmdStats:
		return h.handleStats(ctx, cmd)
	case slackcmd.CmdPeak:
		return h.handlePeak(ctx, cmd)
	case slackcmd.CmdInfo:
		return h.handleInfo(ctx, cmd)
	case slackcmd.CmdExport:
		return h.handleExport(cmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleChannels(ctx context.Context) *slack.Msg {
	channels, err := h.admin.ListChannels(ctx, false)
	if err != nil {
		return h.serviceError("Error listing channels", err)
	}
	if len(channels) == 0 {
		return h.createResponse("No channels yet. Add the bot as an admin to a channel, then use `/gatekeeper add <channel>`.")
	}

	var b strings.Builder
	b.WriteString("*Channels:*\n")
	for _, ch := range channels {
		state := "active"
		if !ch.IsActive {
			state = "inactive"
		}
		fmt.Fprintf(&b, "• %s (`%d`) - %s, auto-approve %s, %d accepted\n",
			displayTitle(ch), ch.ID, state, onOff(ch.AutoApprove), ch.AcceptedCount)
	}
	return h.createResponse(b.String())
}

func (h *SlackHandler) handleAdd(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	channelID, err := slackcmd.ParseChannelID(cmd.Args[0])
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	title := strings.Join(cmd.Args[1:], " ")
	channel, err := h.admin.AddChannel(ctx, channelID, title)
	if err != nil {
		return h.serviceError("Error adding channel", err)
	}

	return h.createResponse(fmt.Sprintf("✅ %s (`%d`) is active", displayTitle(channel), channel.ID))
}

func (h *SlackHandler) handleRemove(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	channelID, err := slackcmd.ParseChannelID(cmd.Args[0])
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	if err := h.admin.DeactivateChannel(ctx, channelID); err != nil {
		return h.serviceError("Error deactivating channel", err)
	}

	return h.createResponse(fmt.Sprintf("⏸️ Channel `%d` no longer accepts new requests", channelID))
}

func (h *SlackHandler) handleDelete(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	channelID, err := slackcmd.ParseChannelID(cmd.Args[0])
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	confirmed := len(cmd.Args) > 1 && strings.EqualFold(cmd.Args[1], "confirm")
	if err := h.admin.DeleteChannel(ctx, channelID, confirmed); err != nil {
		if errors.Is(err, domain.ErrDeleteNotConfirmed) {
			return h.createErrorResponse(fmt.Sprintf("This deletes every request and statistic of the channel. Run `/gatekeeper delete %d confirm` to proceed", channelID))
		}
		return h.serviceError("Error deleting channel", err)
	}

	return h.createResponse(fmt.Sprintf("🗑️ Channel `%d` deleted", channelID))
}

func (h *SlackHandler) handlePending(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	channelID, err := slackcmd.ParseChannelID(cmd.Args[0])
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	requests, err := h.admin.ListPending(ctx, channelID)
	if err != nil {
		return h.serviceError("Error listing pending requests", err)
	}
	if len(requests) == 0 {
		return h.createResponse(fmt.Sprintf("No pending requests for `%d`", channelID))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*%d pending request(s) for `%d`:*\n", len(requests), channelID)
	for i, req := range requests {
		if i == pendingPreview {
			fmt.Fprintf(&b, "_...and %d more_\n", len(requests)-pendingPreview)
			break
		}
		fmt.Fprintf(&b, "%d. #%d %s - %s\n", i+1, req.ID, req.DisplayName(), req.CreatedAt.In(h.loc).Format("2006-01-02 15:04"))
	}
	return h.createResponse(b.String())
}

func (h *SlackHandler) handleAccept(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	channelID, err := slackcmd.ParseChannelID(cmd.Args[0])
	if err != nil {
		return h.createErrorResponse(err.Error())
	}
	size, err := entity.ParseBatchSize(cmd.Args[1])
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	if _, err := h.admin.GetChannel(ctx, channelID); err != nil {
		return h.serviceError("Error approving requests", err)
	}

	// Slack drops responses after three seconds; a large batch takes longer
	h.background.Add(1)
	go func() {
		defer h.background.Done()
		h.acceptBatch(context.WithoutCancel(ctx), channelID, size)
	}()

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text: fmt.Sprintf("⏳ Approving %s pending requests of `%d`. The result is posted to the report channel when the batch finishes.",
			size, channelID),
	}
}

// acceptBatch runs an accept command after its response was sent. The batch
// reporter posts the counts, so only the outcome is logged here.
func (h *SlackHandler) acceptBatch(ctx context.Context, channelID int64, size entity.BatchSize) {
	log := h.logger.With(zap.Int64("channel_id", channelID), zap.String("size", size.String()))
	defer func() {
		if r := recover(); r != nil {
			log.Error("accept batch panicked", zap.Any("panic", r))
		}
	}()

	result, err := h.admin.AcceptBatch(ctx, channelID, size, domain.SystemOperator)
	if err != nil {
		log.Error("accept batch failed",
			zap.String("run_id", result.RunID),
			zap.Int("approved", result.Approved),
			zap.Error(err),
		)
		return
	}

	log.Info("accept batch finished",
		zap.String("run_id", result.RunID),
		zap.Int("attempted", result.Attempted),
		zap.Int("approved", result.Approved),
		zap.Int("rejected", result.Rejected),
		zap.Int("remaining", result.Remaining()),
	)
}

// Wait blocks until every batch started by accept has finished.
func (h *SlackHandler) Wait() {
	h.background.Wait()
}

func (h *SlackHandler) handleApprove(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	requestID, err := slackcmd.ParseID(cmd.Args[0])
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	outcome, err := h.admin.ApproveRequest(ctx, requestID, domain.SystemOperator)
	if err != nil {
		return h.serviceError("Error approving request", err)
	}
	return h.outcomeResponse(requestID, "approved", outcome)
}

func (h *SlackHandler) handleRequeue(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	requestID, err := slackcmd.ParseID(cmd.Args[0])
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	request, err := h.admin.ReprocessRequest(ctx, requestID)
	if err != nil {
		return h.serviceError("Error requeueing request", err)
	}
	return h.createResponse(fmt.Sprintf("🔁 Request #%d of %s is pending again as #%d",
		requestID, request.DisplayName(), request.ID))
}

func (h *SlackHandler) handleReject(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	requestID, err := slackcmd.ParseID(cmd.Args[0])
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	outcome, err := h.admin.RejectRequest(ctx, requestID, domain.SystemOperator)
	if err != nil {
		return h.serviceError("Error rejecting request", err)
	}
	if outcome.Kind == entity.OutcomeDenied {
		// declined remotely already; the request is rejected locally anyway
		return h.createResponse(fmt.Sprintf("🚫 Request #%d rejected", requestID))
	}
	return h.outcomeResponse(requestID, "rejected", outcome)
}

func (h *SlackHandler) outcomeResponse(requestID int64, verb string, outcome entity.Outcome) *slack.Msg {
	switch outcome.Kind {
	case entity.OutcomeOK:
		return h.createResponse(fmt.Sprintf("✅ Request #%d %s", requestID, verb))
	case entity.OutcomeUnavailable:
		return h.createErrorResponse(fmt.Sprintf("Telegram is unavailable, request #%d is still pending: %s", requestID, outcome.Reason))
	default:
		return h.createErrorResponse(fmt.Sprintf("Telegram refused request #%d, it was marked rejected: %s", requestID, outcome.Reason))
	}
}

func (h *SlackHandler) handleAuto(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	channelID, err := slackcmd.ParseChannelID(cmd.Args[0])
	if err != nil {
		return h.createErrorResponse(err.Error())
	}
	enabled, err := slackcmd.ParseToggle(cmd.Args[1])
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	if err := h.admin.ToggleAutoApprove(ctx, channelID, enabled); err != nil {
		return h.serviceError("Error updating auto-approve", err)
	}

	return h.createResponse(fmt.Sprintf("⚙️ Auto-approve for `%d` is %s", channelID, onOff(enabled)))
}

func (h *SlackHandler) handleWelcome(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	channelID, err := slackcmd.ParseChannelID(cmd.Args[0])
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	text := welcomeText(cmd.Raw)
	if err := h.admin.SetWelcomeMessage(ctx, channelID, text); err != nil {
		return h.serviceError("Error saving welcome message", err)
	}

	if text == "" {
		return h.createResponse(fmt.Sprintf("Welcome message for `%d` cleared", channelID))
	}
	return h.createResponse(fmt.Sprintf("✉️ Welcome message for `%d` saved", channelID))
}

// welcomeText keeps the original spacing and line breaks of the message,
// which is everything after "welcome <channel>".
func welcomeText(raw string) string {
	rest := strings.TrimSpace(raw)
	for i := 0; i < 2; i++ {
		idx := strings.IndexFunc(rest, isSpace)
		if idx < 0 {
			return ""
		}
		rest = strings.TrimLeftFunc(rest[idx:], isSpace)
	}
	return strings.TrimSpace(rest)
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func (h *SlackHandler) handleSchedule(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	channelID, err := slackcmd.ParseChannelID(cmd.Args[0])
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	if strings.EqualFold(cmd.Args[1], "off") {
		channel, err := h.admin.GetChannel(ctx, channelID)
		if err != nil {
			return h.serviceError("Error loading channel", err)
		}
		policy := channel.EffectiveSchedule()
		policy.Enabled = false
		if err := h.admin.SetSchedulePolicy(ctx, channelID, policy); err != nil {
			return h.serviceError("Error updating schedule", err)
		}
		return h.createResponse(fmt.Sprintf("⏹️ Schedule for `%d` disabled", channelID))
	}

	policy, err := slackcmd.ParseSchedule(cmd.Args[1:])
	if err != nil {
		return h.createErrorResponse(err.Error())
	}
	if err := h.admin.SetSchedulePolicy(ctx, channelID, policy); err != nil {
		return h.serviceError("Error updating schedule", err)
	}

	return h.createResponse(fmt.Sprintf("⏰ `%d` will approve %s request(s) on %s at %s (%s)",
		channelID, policy.Count, formatDays(policy.Days), policy.Time, h.loc))
}

func (h *SlackHandler) handleBook(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	channelID, err := slackcmd.ParseChannelID(cmd.Args[0])
	if err != nil {
		return h.createErrorResponse(err.Error())
	}
	at, err := slackcmd.ParseDateTime(cmd.Args[1], cmd.Args[2], h.loc)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	size := entity.AllRequests()
	if len(cmd.Args) > 3 {
		if size, err = entity.ParseBatchSize(cmd.Args[3]); err != nil {
			return h.createErrorResponse(err.Error())
		}
	}

	action, count := entity.ActionApproveAll, (*int)(nil)
	if !size.IsAll() {
		n := size.Limit()
		action, count = entity.ActionApproveN, &n
	}

	task, err := h.admin.BookOneOffTask(ctx, channelID, action, at, count)
	if err != nil {
		return h.serviceError("Error booking approval", err)
	}

	return h.createResponse(fmt.Sprintf("📅 Task #%d: approve %s request(s) of `%d` at %s",
		task.ID, size, channelID, task.RunAt.In(h.loc).Format("2006-01-02 15:04")))
}

func (h *SlackHandler) handleCancel(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	taskID, err := slackcmd.ParseID(cmd.Args[0])
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	if err := h.admin.CancelTask(ctx, taskID); err != nil {
		return h.serviceError("Error cancelling task", err)
	}

	return h.createResponse(fmt.Sprintf("Task #%d cancelled", taskID))
}

func (h *SlackHandler) handleStats(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	channelID, err := slackcmd.ParseChannelID(cmd.Args[0])
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	period := entity.PeriodAll
	if len(cmd.Args) > 1 {
		if period, err = entity.ParsePeriod(strings.ToLower(cmd.Args[1])); err != nil {
			return h.createErrorResponse(err.Error())
		}
	}

	stats, err := h.admin.GetStatistics(ctx, channelID, period)
	if err != nil {
		return h.serviceError("Error loading statistics", err)
	}
	pending, err := h.admin.PendingCount(ctx, channelID)
	if err != nil {
		return h.serviceError("Error loading statistics", err)
	}

	return h.createResponse(fmt.Sprintf("📊 *`%d` (%s)*\n• Approved: %d\n• Rejected: %d\n• Pending now: %d",
		channelID, period, stats.Approved, stats.Rejected, pending))
}

func (h *SlackHandler) handlePeak(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	channelID, err := slackcmd.ParseChannelID(cmd.Args[0])
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	hours, err := h.admin.PeakHours(ctx, channelID)
	if err != nil {
		return h.serviceError("Error loading peak hours", err)
	}
	if hours.Total() == 0 {
		return h.createResponse(fmt.Sprintf("No requests recorded for `%d`", channelID))
	}

	keys := make([]int, 0, len(hours))
	for hour := range hours {
		keys = append(keys, hour)
	}
	sort.Ints(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "*Requests by hour for `%d` (%s):*\n", channelID, h.loc)
	for _, hour := range keys {
		fmt.Fprintf(&b, "`%02d:00` %d\n", hour, hours[hour])
	}
	return h.createResponse(b.String())
}

func (h *SlackHandler) handleInfo(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	channelID, err := slackcmd.ParseChannelID(cmd.Args[0])
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	channel, err := h.admin.GetChannel(ctx, channelID)
	if err != nil {
		return h.serviceError("Error loading channel", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*%s* (`%d`)\n", displayTitle(channel), channel.ID)

	// platform metadata is optional, the stored settings are always shown
	if info, err := h.admin.ChannelInfo(ctx, channelID); err != nil {
		h.logger.Warn("failed to fetch channel info", zap.Int64("channel_id", channelID), zap.Error(err))
	} else if info != nil {
		if info.Username != "" {
			fmt.Fprintf(&b, "• Link: https://t.me/%s\n", info.Username)
		}
		if info.Description != "" {
			fmt.Fprintf(&b, "• Description: %s\n", info.Description)
		}
	}

	fmt.Fprintf(&b, "• Active: %s\n• Auto-approve: %s\n• Accepted: %d\n", yesNo(channel.IsActive), onOff(channel.AutoApprove), channel.AcceptedCount)

	policy := channel.EffectiveSchedule()
	if channel.ScheduleInvalid {
		b.WriteString("• Schedule: stored policy is invalid, set a new one with `/gatekeeper schedule`\n")
	} else if policy.Enabled {
		fmt.Fprintf(&b, "• Schedule: %s request(s) on %s at %s\n", policy.Count, formatDays(policy.Days), policy.Time)
	} else {
		b.WriteString("• Schedule: off\n")
	}
	if channel.HasWelcome() {
		fmt.Fprintf(&b, "• Welcome: %s\n", *channel.WelcomeMessage)
	}

	return h.createResponse(b.String())
}

func (h *SlackHandler) handleExport(cmd *slackcmd.Command) *slack.Msg {
	channelID, err := slackcmd.ParseChannelID(cmd.Args[0])
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	return h.createResponse(fmt.Sprintf("📥 Download `/channels/%d/export.xlsx` with the export token, or run `gatekeeper export --channel %d`", channelID, channelID))
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return h.createResponse(slackcmd.GetHelpText())
}

func (h *SlackHandler) createResponse(text string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

// serviceError shows domain errors as they are and hides everything else behind prefix.
func (h *SlackHandler) serviceError(prefix string, err error) *slack.Msg {
	for _, known := range []error{
		domain.ErrChannelNotFound,
		domain.ErrRequestNotFound,
		domain.ErrRequestNotPending,
		domain.ErrRequestNotRejected,
		domain.ErrTaskNotFound,
		domain.ErrTaskInPast,
		domain.ErrTaskExecuted,
		domain.ErrInvalidBatchSize,
		domain.ErrInvalidTimeOfDay,
		domain.ErrInvalidWeekday,
		domain.ErrEmptyWeekdays,
		domain.ErrInvalidAction,
	} {
		if errors.Is(err, known) {
			return h.createErrorResponse(fmt.Sprintf("%s: %v", prefix, known))
		}
	}

	h.logger.Error(prefix, zap.Error(err))
	return h.createErrorResponse(prefix)
}

func displayTitle(ch *entity.Channel) string {
	if ch.Title == "" {
		return fmt.Sprintf("ID: %d", ch.ID)
	}
	return ch.Title
}

func formatDays(days []entity.Weekday) string {
	if len(days) == 7 {
		return "every day"
	}
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.String()
	}
	return strings.Join(names, ", ")
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
