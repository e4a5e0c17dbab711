package slack

import (
	"testing"
	"time"

	"github.com/diegoclair/channel-gatekeeper/internal/domain"
	"github.com/diegoclair/channel-gatekeeper/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType CommandType
		wantArgs []string
		wantErr  string
	}{
		{name: "Should default to help", text: "   ", wantType: CmdHelp},
		{name: "Should accept aliases", text: "LS", wantType: CmdChannels, wantArgs: []string{}},
		{name: "Should split arguments", text: "accept -100  all", wantType: CmdAccept, wantArgs: []string{"-100", "all"}},
		{name: "Should allow book without size", text: "book -100 2030-01-02 10:00", wantType: CmdBook, wantArgs: []string{"-100", "2030-01-02", "10:00"}},
		{name: "Should parse requeue", text: "requeue #42", wantType: CmdRequeue, wantArgs: []string{"#42"}},
		{name: "Should accept reprocess as requeue", text: "reprocess 42", wantType: CmdRequeue, wantArgs: []string{"42"}},
		{name: "Should reject requeue without request", text: "requeue", wantErr: "missing arguments for requeue"},
		{name: "Should reject unknown command", text: "dance", wantErr: "unknown command: dance"},
		{name: "Should reject missing arguments", text: "schedule -100", wantErr: "missing arguments for schedule"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.text)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantType, cmd.Type)
			if tt.wantArgs != nil {
				assert.Equal(t, tt.wantArgs, cmd.Args)
			}
		})
	}
}

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		value   string
		want    []entity.Weekday
		wantErr error
	}{
		{value: "all", want: []entity.Weekday{0, 1, 2, 3, 4, 5, 6}},
		{value: "weekdays", want: []entity.Weekday{0, 1, 2, 3, 4}},
		{value: "mon,WED", want: []entity.Weekday{0, 2}},
		{value: "0,6", want: []entity.Weekday{0, 6}},
		{value: "fri,", want: []entity.Weekday{4}},
		{value: "7", wantErr: domain.ErrInvalidWeekday},
		{value: "funday", wantErr: domain.ErrInvalidWeekday},
		{value: ",", wantErr: domain.ErrEmptyWeekdays},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseWeekdays(tt.value)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSchedule(t *testing.T) {
	policy, err := ParseSchedule([]string{"sun,mon", "08:30", "all"})
	require.NoError(t, err)

	assert.True(t, policy.Enabled)
	assert.Equal(t, []entity.Weekday{0, 6}, policy.Days)
	assert.Equal(t, entity.TimeOfDay{Hour: 8, Minute: 30}, policy.Time)
	assert.True(t, policy.Count.IsAll())

	_, err = ParseSchedule([]string{"mon", "08:30"})
	assert.Error(t, err)

	_, err = ParseSchedule([]string{"mon", "08:30", "-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidBatchSize)
}

func TestParseDateTime(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)

	got, err := ParseDateTime("2030-01-02", "15:04", loc)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2030, 1, 2, 12, 4, 0, 0, time.UTC)))

	_, err = ParseDateTime("02/01/2030", "15:04", loc)
	assert.Error(t, err)
}

func TestParseIDs(t *testing.T) {
	id, err := ParseChannelID("-1001234567890")
	require.NoError(t, err)
	assert.Equal(t, int64(-1001234567890), id)

	_, err = ParseChannelID("@news")
	assert.Error(t, err)

	id, err = ParseID("#42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = ParseID("0")
	assert.Error(t, err)
}

func TestParseToggle(t *testing.T) {
	on, err := ParseToggle("ON")
	require.NoError(t, err)
	assert.True(t, on)

	off, err := ParseToggle("off")
	require.NoError(t, err)
	assert.False(t, off)

	_, err = ParseToggle("maybe")
	assert.Error(t, err)
}
