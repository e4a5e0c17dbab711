package entity

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/channel-gatekeeper/internal/domain"
)

// Weekday numbers days from 0 (Monday) to 6 (Sunday).
type Weekday int

// WeekdayOf returns the weekday of t in its own location.
func WeekdayOf(t time.Time) Weekday {
	// time.Weekday starts at Sunday=0
	return Weekday((int(t.Weekday()) + 6) % 7)
}

func (d Weekday) Valid() bool {
	return d >= 0 && d <= 6
}

func (d Weekday) String() string {
	if name, ok := domain.WeekdayNames[int(d)]; ok {
		return name
	}
	return fmt.Sprintf("Weekday(%d)", int(d))
}

// TimeOfDay is a wall-clock time with minute resolution.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM" (24-hour clock).
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return TimeOfDay{}, domain.ErrInvalidTimeOfDay
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, domain.ErrInvalidTimeOfDay
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, domain.ErrInvalidTimeOfDay
	}

	t := TimeOfDay{Hour: hour, Minute: minute}
	if !t.Valid() {
		return TimeOfDay{}, domain.ErrInvalidTimeOfDay
	}
	return t, nil
}

func (t TimeOfDay) Valid() bool {
	return t.Hour >= 0 && t.Hour <= 23 && t.Minute >= 0 && t.Minute <= 59
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// BatchSize is either "all pending requests" or a positive count.
// The zero value selects all.
type BatchSize struct {
	n int
}

// AllRequests selects the whole pending queue.
func AllRequests() BatchSize {
	return BatchSize{}
}

// Take selects at most n of the oldest pending requests.
func Take(n int) (BatchSize, error) {
	if n <= 0 {
		return BatchSize{}, domain.ErrInvalidBatchSize
	}
	return BatchSize{n: n}, nil
}

// ParseBatchSize accepts "all" or a positive integer.
func ParseBatchSize(value string) (BatchSize, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "all" {
		return AllRequests(), nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return BatchSize{}, domain.ErrInvalidBatchSize
	}
	return Take(n)
}

func (b BatchSize) IsAll() bool {
	return b.n == 0
}

// Limit returns the count, or 0 when every pending request is selected.
func (b BatchSize) Limit() int {
	return b.n
}

func (b BatchSize) String() string {
	if b.IsAll() {
		return "all"
	}
	return strconv.Itoa(b.n)
}

func (b BatchSize) MarshalJSON() ([]byte, error) {
	if b.IsAll() {
		return json.Marshal("all")
	}
	return json.Marshal(b.n)
}

func (b *BatchSize) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		parsed, err := Take(n)
		if err != nil {
			return err
		}
		*b = parsed
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return domain.ErrInvalidBatchSize
	}
	parsed, err := ParseBatchSize(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// SchedulePolicy is the recurring auto-approval rule of a channel.
type SchedulePolicy struct {
	Enabled bool      `json:"enabled"`
	Days    []Weekday `json:"days"`
	Time    TimeOfDay `json:"time"`
	Count   BatchSize `json:"count"`
}

// DefaultSchedulePolicy is every day at 12:00, approving all pending requests.
func DefaultSchedulePolicy() SchedulePolicy {
	t, _ := ParseTimeOfDay(domain.DefaultScheduleTime)
	return SchedulePolicy{
		Enabled: false,
		Days:    []Weekday{0, 1, 2, 3, 4, 5, 6},
		Time:    t,
		Count:   AllRequests(),
	}
}

// NewSchedulePolicy builds a validated policy. Days are deduplicated and sorted.
func NewSchedulePolicy(enabled bool, days []Weekday, at TimeOfDay, count BatchSize) (SchedulePolicy, error) {
	p := SchedulePolicy{
		Enabled: enabled,
		Days:    normalizeDays(days),
		Time:    at,
		Count:   count,
	}
	if err := p.Validate(); err != nil {
		return SchedulePolicy{}, err
	}
	return p, nil
}

func (p SchedulePolicy) Validate() error {
	for _, d := range p.Days {
		if !d.Valid() {
			return domain.ErrInvalidWeekday
		}
	}
	if !p.Time.Valid() {
		return domain.ErrInvalidTimeOfDay
	}
	if p.Enabled && len(p.Days) == 0 {
		return domain.ErrEmptyWeekdays
	}
	return nil
}

// Matches reports whether the policy fires at the minute containing now.
func (p SchedulePolicy) Matches(now time.Time) bool {
	if !p.Enabled {
		return false
	}
	if now.Hour() != p.Time.Hour || now.Minute() != p.Time.Minute {
		return false
	}
	today := WeekdayOf(now)
	for _, d := range p.Days {
		if d == today {
			return true
		}
	}
	return false
}

// UnmarshalJSON fills absent fields with the defaults and validates the result.
func (p *SchedulePolicy) UnmarshalJSON(data []byte) error {
	type rawPolicy struct {
		Enabled *bool      `json:"enabled"`
		Days    *[]Weekday `json:"days"`
		Time    *TimeOfDay `json:"time"`
		Count   *BatchSize `json:"count"`
	}
	var raw rawPolicy
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	policy := DefaultSchedulePolicy()
	if raw.Enabled != nil {
		policy.Enabled = *raw.Enabled
	}
	if raw.Days != nil {
		policy.Days = normalizeDays(*raw.Days)
	}
	if raw.Time != nil {
		policy.Time = *raw.Time
	}
	if raw.Count != nil {
		policy.Count = *raw.Count
	}
	if err := policy.Validate(); err != nil {
		return err
	}

	*p = policy
	return nil
}

func normalizeDays(days []Weekday) []Weekday {
	seen := make(map[Weekday]bool, len(days))
	out := make([]Weekday, 0, len(days))
	for _, d := range days {
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
