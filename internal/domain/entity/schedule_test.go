package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/diegoclair/channel-gatekeeper/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulePolicy_UnmarshalJSON(t *testing.T) {
	three, err := Take(3)
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    string
		want    SchedulePolicy
		wantErr error
	}{
		{
			name: "Should fill every absent field with the defaults",
			data: `{}`,
			want: SchedulePolicy{
				Enabled: false,
				Days:    []Weekday{0, 1, 2, 3, 4, 5, 6},
				Time:    TimeOfDay{Hour: 12},
				Count:   AllRequests(),
			},
		},
		{
			name: "Should keep given fields and normalize days",
			data: `{"enabled":true,"days":[6,0,6],"time":"08:05","count":3}`,
			want: SchedulePolicy{
				Enabled: true,
				Days:    []Weekday{0, 6},
				Time:    TimeOfDay{Hour: 8, Minute: 5},
				Count:   three,
			},
		},
		{
			name: "Should accept all as a string count",
			data: `{"count":"all"}`,
			want: DefaultSchedulePolicy(),
		},
		{
			name: "Should allow no days on a disabled policy",
			data: `{"enabled":false,"days":[]}`,
			want: SchedulePolicy{
				Days:  []Weekday{},
				Time:  TimeOfDay{Hour: 12},
				Count: AllRequests(),
			},
		},
		{
			name:    "Should refuse an enabled policy without days",
			data:    `{"enabled":true,"days":[]}`,
			wantErr: domain.ErrEmptyWeekdays,
		},
		{
			name:    "Should refuse a weekday out of range",
			data:    `{"days":[7]}`,
			wantErr: domain.ErrInvalidWeekday,
		},
		{
			name:    "Should refuse hour 24",
			data:    `{"time":"24:00"}`,
			wantErr: domain.ErrInvalidTimeOfDay,
		},
		{
			name:    "Should refuse minute 60",
			data:    `{"time":"12:60"}`,
			wantErr: domain.ErrInvalidTimeOfDay,
		},
		{
			name:    "Should refuse a time without minutes",
			data:    `{"time":"12"}`,
			wantErr: domain.ErrInvalidTimeOfDay,
		},
		{
			name:    "Should refuse a zero count",
			data:    `{"count":0}`,
			wantErr: domain.ErrInvalidBatchSize,
		},
		{
			name:    "Should refuse a negative count",
			data:    `{"count":-1}`,
			wantErr: domain.ErrInvalidBatchSize,
		},
		{
			name:    "Should refuse a count that is neither a number nor all",
			data:    `{"count":"some"}`,
			wantErr: domain.ErrInvalidBatchSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got SchedulePolicy
			err := json.Unmarshal([]byte(tt.data), &got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSchedulePolicy_JSONRoundTrip(t *testing.T) {
	five, err := Take(5)
	require.NoError(t, err)
	policy, err := NewSchedulePolicy(true, []Weekday{4, 1}, TimeOfDay{Hour: 9, Minute: 30}, five)
	require.NoError(t, err)

	data, err := json.Marshal(policy)
	require.NoError(t, err)
	assert.JSONEq(t, `{"enabled":true,"days":[1,4],"time":"09:30","count":5}`, string(data))

	var decoded SchedulePolicy
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, policy, decoded)
}

func TestSchedulePolicy_Matches(t *testing.T) {
	// 2024-06-03 is a Monday, 2024-06-09 a Sunday
	monday := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 6, 9, 12, 0, 0, 0, time.UTC)

	weekend, err := NewSchedulePolicy(true, []Weekday{5, 6}, TimeOfDay{Hour: 12}, AllRequests())
	require.NoError(t, err)
	disabled, err := NewSchedulePolicy(false, []Weekday{0, 6}, TimeOfDay{Hour: 12}, AllRequests())
	require.NoError(t, err)

	tests := []struct {
		name   string
		policy SchedulePolicy
		now    time.Time
		want   bool
	}{
		{name: "Should fire on sunday as weekday 6", policy: weekend, now: sunday, want: true},
		{name: "Should fire at any second of the minute", policy: weekend, now: sunday.Add(59 * time.Second), want: true},
		{name: "Should not fire on a day outside the policy", policy: weekend, now: monday},
		{name: "Should not fire on another hour", policy: weekend, now: sunday.Add(time.Hour)},
		{name: "Should not fire on another minute", policy: weekend, now: sunday.Add(time.Minute)},
		{name: "Should not fire when disabled", policy: disabled, now: sunday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.policy.Matches(tt.now))
		})
	}
}

func TestWeekdayOf(t *testing.T) {
	monday := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		assert.Equal(t, Weekday(i), WeekdayOf(monday.AddDate(0, 0, i)))
	}
}

func TestParseBatchSize(t *testing.T) {
	tests := []struct {
		value   string
		want    string
		wantErr bool
	}{
		{value: "all", want: "all"},
		{value: " ALL ", want: "all"},
		{value: "10", want: "10"},
		{value: "0", wantErr: true},
		{value: "-3", wantErr: true},
		{value: "ten", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseBatchSize(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidBatchSize)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestScheduledTask_BatchSize(t *testing.T) {
	zero, two := 0, 2

	tests := []struct {
		name    string
		task    ScheduledTask
		want    string
		wantErr error
	}{
		{name: "Should select all for approve_all", task: ScheduledTask{Action: ActionApproveAll}, want: "all"},
		{name: "Should take the count for approve_n", task: ScheduledTask{Action: ActionApproveN, UserCount: &two}, want: "2"},
		{name: "Should refuse approve_n without a count", task: ScheduledTask{Action: ActionApproveN}, wantErr: domain.ErrInvalidBatchSize},
		{name: "Should refuse approve_n with a zero count", task: ScheduledTask{Action: ActionApproveN, UserCount: &zero}, wantErr: domain.ErrInvalidBatchSize},
		{name: "Should refuse an unknown action", task: ScheduledTask{Action: "approve_some"}, wantErr: domain.ErrInvalidAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.task.BatchSize()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}
