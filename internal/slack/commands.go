package slack

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/channel-gatekeeper/internal/domain"
	"github.com/diegoclair/channel-gatekeeper/internal/domain/entity"
)

type CommandType string

const (
	CmdChannels CommandType = "channels"
	CmdAdd      CommandType = "add"
	CmdRemove   CommandType = "remove"
	CmdDelete   CommandType = "delete"
	CmdPending  CommandType = "pending"
	CmdAccept   CommandType = "accept"
	CmdApprove  CommandType = "approve"
	CmdReject   CommandType = "reject"
	CmdRequeue  CommandType = "requeue"
	CmdAuto     CommandType = "auto"
	CmdWelcome  CommandType = "welcome"
	CmdSchedule CommandType = "schedule"
	CmdBook     CommandType = "book"
	CmdCancel   CommandType = "cancel"
	CmdStats    CommandType = "stats"
	CmdPeak     CommandType = "peak"
	CmdInfo     CommandType = "info"
	CmdExport   CommandType = "export"
	CmdHelp     CommandType = "help"
)

// minArgs is how many arguments each command needs after its name.
var minArgs = map[CommandType]int{
	CmdAdd:      1,
	CmdRemove:   1,
	CmdDelete:   1,
	CmdPending:  1,
	CmdAccept:   2,
	CmdApprove:  1,
	CmdReject:   1,
	CmdRequeue:  1,
	CmdAuto:     2,
	CmdWelcome:  1,
	CmdSchedule: 2,
	CmdBook:     3,
	CmdCancel:   1,
	CmdStats:    1,
	CmdPeak:     1,
	CmdInfo:     1,
	CmdExport:   1,
}

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw:  text,
		Args: parts[1:],
	}

	switch strings.ToLower(parts[0]) {
	case "channels", "list", "ls":
		cmd.Type = CmdChannels
	case "add":
		cmd.Type = CmdAdd
	case "remove", "rm":
		cmd.Type = CmdRemove
	case "delete":
		cmd.Type = CmdDelete
	case "pending", "queue":
		cmd.Type = CmdPending
	case "accept":
		cmd.Type = CmdAccept
	case "approve":
		cmd.Type = CmdApprove
	case "reject", "decline":
		cmd.Type = CmdReject
	case "requeue", "reprocess":
		cmd.Type = CmdRequeue
	case "auto":
		cmd.Type = CmdAuto
	case "welcome":
		cmd.Type = CmdWelcome
	case "schedule":
		cmd.Type = CmdSchedule
	case "book":
		cmd.Type = CmdBook
	case "cancel":
		cmd.Type = CmdCancel
	case "stats":
		cmd.Type = CmdStats
	case "peak":
		cmd.Type = CmdPeak
	case "info":
		cmd.Type = CmdInfo
	case "export":
		cmd.Type = CmdExport
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	if len(cmd.Args) < minArgs[cmd.Type] {
		return nil, fmt.Errorf("missing arguments for %s, see `/gatekeeper help`", cmd.Type)
	}

	return cmd, nil
}

// ParseChannelID parses a Telegram chat id such as -1001234567890.
func ParseChannelID(value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid channel id %q", value)
	}
	return id, nil
}

// ParseID parses a positive request or task id.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimSpace(value), "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", value)
	}
	return id, nil
}

// ParseToggle accepts on/off style values.
func ParseToggle(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("expected on or off, got %q", value)
	}
}

// ParseWeekdays accepts "all", "weekdays", or a comma list of short names
// (mon,wed) or numbers (0=Monday).
func ParseWeekdays(value string) ([]entity.Weekday, error) {
	switch strings.ToLower(value) {
	case "all", "daily":
		return []entity.Weekday{0, 1, 2, 3, 4, 5, 6}, nil
	case "weekdays":
		return []entity.Weekday{0, 1, 2, 3, 4}, nil
	}

	var days []entity.Weekday
	for _, part := range strings.Split(value, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if n, ok := domain.WeekdayAliases[part]; ok {
			days = append(days, entity.Weekday(n))
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || !entity.Weekday(n).Valid() {
			return nil, domain.ErrInvalidWeekday
		}
		days = append(days, entity.Weekday(n))
	}

	if len(days) == 0 {
		return nil, domain.ErrEmptyWeekdays
	}
	return days, nil
}

// ParseSchedule parses "<days> <HH:MM> <n|all>" into an enabled policy.
func ParseSchedule(args []string) (entity.SchedulePolicy, error) {
	if len(args) != 3 {
		return entity.SchedulePolicy{}, fmt.Errorf("expected <days> <HH:MM> <n|all>")
	}

	days, err := ParseWeekdays(args[0])
	if err != nil {
		return entity.SchedulePolicy{}, err
	}
	at, err := entity.ParseTimeOfDay(args[1])
	if err != nil {
		return entity.SchedulePolicy{}, err
	}
	count, err := entity.ParseBatchSize(args[2])
	if err != nil {
		return entity.SchedulePolicy{}, err
	}

	return entity.NewSchedulePolicy(true, days, at, count)
}

// ParseDateTime parses "YYYY-MM-DD HH:MM" in loc.
func ParseDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time %q, expected YYYY-MM-DD HH:MM", date+" "+clock)
	}
	return t, nil
}

func GetHelpText() string {
	return `*Available commands:*

*Channels:*
• ` + "`/gatekeeper channels`" + ` - List channels
• ` + "`/gatekeeper add <channel> [title]`" + ` - Add or re-activate a channel
• ` + "`/gatekeeper remove <channel>`" + ` - Stop accepting requests for a channel
• ` + "`/gatekeeper delete <channel> confirm`" + ` - Delete a channel and all its data
• ` + "`/gatekeeper info <channel>`" + ` - Show channel details

*Requests:*
• ` + "`/gatekeeper pending <channel>`" + ` - Show pending requests
• ` + "`/gatekeeper accept <channel> <n|all>`" + ` - Approve the oldest pending requests (result posted to the report channel)
• ` + "`/gatekeeper approve <request>`" + ` - Approve one request
• ` + "`/gatekeeper reject <request>`" + ` - Decline one request
• ` + "`/gatekeeper requeue <request>`" + ` - Put a rejected request back in the queue

*Automation:*
• ` + "`/gatekeeper auto <channel> on|off`" + ` - Approve new requests immediately
• ` + "`/gatekeeper welcome <channel> [text]`" + ` - Set the welcome message (empty clears it)
• ` + "`/gatekeeper schedule <channel> off`" + ` - Disable the recurring schedule
• ` + "`/gatekeeper schedule <channel> <days> <HH:MM> <n|all>`" + ` - e.g. ` + "`mon,wed 12:00 50`" + `
• ` + "`/gatekeeper book <channel> <YYYY-MM-DD> <HH:MM> [n|all]`" + ` - Book a one-off approval
• ` + "`/gatekeeper cancel <task>`" + ` - Cancel a booked approval

*Reports:*
• ` + "`/gatekeeper stats <channel> [day|week|month|year|all]`" + ` - Approval statistics
• ` + "`/gatekeeper peak <channel>`" + ` - Requests by hour of day
• ` + "`/gatekeeper export <channel>`" + ` - Download the request history`
}
