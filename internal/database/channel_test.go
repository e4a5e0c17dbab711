package database

import (
	"context"
	"testing"

	"github.com/diegoclair/channel-gatekeeper/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestChannel(t *testing.T, db *DB, id int64, title string) *entity.Channel {
	t.Helper()

	channel := &entity.Channel{ID: id, Title: title}
	err := newChannelRepo(db.conn).Upsert(context.Background(), channel)
	require.NoError(t, err)

	return channel
}

func TestChannelRepository_Upsert(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newChannelRepo(db.conn)

	channel := &entity.Channel{ID: -1001, Title: "news"}
	require.NoError(t, repo.Upsert(ctx, channel))

	require.NoError(t, repo.SetActive(ctx, channel.ID, false))

	// Upsert again re-activates and renames
	channel.Title = "news-renamed"
	require.NoError(t, repo.Upsert(ctx, channel))

	found, err := repo.GetByID(ctx, channel.ID)
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, "news-renamed", found.Title)
	assert.True(t, found.IsActive)
	assert.False(t, found.AutoApprove)
	assert.Nil(t, found.WelcomeMessage)
	assert.Nil(t, found.Schedule)
	assert.Zero(t, found.AcceptedCount)
}

func TestChannelRepository_CreateIfMissing(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newChannelRepo(db.conn)

	created, err := repo.CreateIfMissing(ctx, -2002, "", true)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, created.IsActive)

	require.NoError(t, repo.SetAutoApprove(ctx, -2002, true))

	// A second call must not overwrite existing settings
	again, err := repo.CreateIfMissing(ctx, -2002, "other", false)
	require.NoError(t, err)
	assert.True(t, again.IsActive)
	assert.True(t, again.AutoApprove)
	assert.Equal(t, "", again.Title)
}

func TestChannelRepository_GetByID_NotFound(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	found, err := newChannelRepo(db.conn).GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestChannelRepository_Settings(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newChannelRepo(db.conn)
	channel := createTestChannel(t, db, -3003, "settings")

	welcome := "Welcome aboard"
	require.NoError(t, repo.SetWelcomeMessage(ctx, channel.ID, &welcome))
	require.NoError(t, repo.IncrementAccepted(ctx, channel.ID))
	require.NoError(t, repo.IncrementAccepted(ctx, channel.ID))

	at, err := entity.ParseTimeOfDay("09:30")
	require.NoError(t, err)
	policy, err := entity.NewSchedulePolicy(true, []entity.Weekday{2, 0}, at, entity.AllRequests())
	require.NoError(t, err)
	require.NoError(t, repo.SetSchedule(ctx, channel.ID, &policy))

	found, err := repo.GetByID(ctx, channel.ID)
	require.NoError(t, err)
	require.NotNil(t, found.WelcomeMessage)
	assert.Equal(t, welcome, *found.WelcomeMessage)
	assert.True(t, found.HasWelcome())
	assert.Equal(t, int64(2), found.AcceptedCount)
	require.NotNil(t, found.Schedule)
	assert.Equal(t, []entity.Weekday{0, 2}, found.Schedule.Days)
	assert.Equal(t, "09:30", found.Schedule.Time.String())
	assert.True(t, found.Schedule.Count.IsAll())

	require.NoError(t, repo.SetWelcomeMessage(ctx, channel.ID, nil))
	require.NoError(t, repo.SetSchedule(ctx, channel.ID, nil))

	found, err = repo.GetByID(ctx, channel.ID)
	require.NoError(t, err)
	assert.Nil(t, found.WelcomeMessage)
	assert.Nil(t, found.Schedule)
}

func TestChannelRepository_ListScheduled(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newChannelRepo(db.conn)

	at, err := entity.ParseTimeOfDay("12:00")
	require.NoError(t, err)
	enabled, err := entity.NewSchedulePolicy(true, []entity.Weekday{0}, at, entity.AllRequests())
	require.NoError(t, err)
	disabled, err := entity.NewSchedulePolicy(false, nil, at, entity.AllRequests())
	require.NoError(t, err)

	scheduled := createTestChannel(t, db, -1, "scheduled")
	require.NoError(t, repo.SetSchedule(ctx, scheduled.ID, &enabled))

	paused := createTestChannel(t, db, -2, "paused")
	require.NoError(t, repo.SetSchedule(ctx, paused.ID, &disabled))

	inactive := createTestChannel(t, db, -3, "inactive")
	require.NoError(t, repo.SetSchedule(ctx, inactive.ID, &enabled))
	require.NoError(t, repo.SetActive(ctx, inactive.ID, false))

	createTestChannel(t, db, -4, "no-schedule")

	channels, err := repo.ListScheduled(ctx)
	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, scheduled.ID, channels[0].ID)

	all, err := repo.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	active, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, active, 3)
}

func TestChannelRepository_InvalidStoredSchedule(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newChannelRepo(db.conn)

	at, err := entity.ParseTimeOfDay("12:00")
	require.NoError(t, err)
	good, err := entity.NewSchedulePolicy(true, []entity.Weekday{0}, at, entity.AllRequests())
	require.NoError(t, err)

	createTestChannel(t, db, -1, "good")
	require.NoError(t, repo.SetSchedule(ctx, -1, &good))

	// rows written before validation existed may hold policies that no longer validate
	createTestChannel(t, db, -2, "legacy")
	_, err = db.conn.ExecContext(ctx, `UPDATE channels SET schedule = ? WHERE id = ?`, `{"enabled":true,"days":[]}`, -2)
	require.NoError(t, err)
	createTestChannel(t, db, -3, "garbage")
	_, err = db.conn.ExecContext(ctx, `UPDATE channels SET schedule = ? WHERE id = ?`, `not json`, -3)
	require.NoError(t, err)

	channels, err := repo.ListScheduled(ctx)
	require.NoError(t, err)
	require.Len(t, channels, 3)
	assert.False(t, channels[2].ScheduleInvalid) // ordered by id: -3, -2, -1
	assert.Equal(t, int64(-1), channels[2].ID)
	assert.True(t, channels[0].ScheduleInvalid)
	assert.True(t, channels[1].ScheduleInvalid)

	legacy, err := repo.GetByID(ctx, -2)
	require.NoError(t, err)
	require.NotNil(t, legacy)
	assert.True(t, legacy.ScheduleInvalid)
	assert.Nil(t, legacy.Schedule)
	assert.False(t, legacy.EffectiveSchedule().Enabled)

	// a new policy repairs the row
	require.NoError(t, repo.SetSchedule(ctx, -2, &good))
	repaired, err := repo.GetByID(ctx, -2)
	require.NoError(t, err)
	assert.False(t, repaired.ScheduleInvalid)
	require.NotNil(t, repaired.Schedule)
	assert.Equal(t, good, *repaired.Schedule)
}

func TestChannelRepository_DeleteCascades(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newChannelRepo(db.conn)
	requests := newRequestRepo(db.conn)
	channel := createTestChannel(t, db, -5005, "to-delete")

	req, created, err := requests.CreatePending(ctx, &entity.JoinRequest{ChannelID: channel.ID, UserID: 7})
	require.NoError(t, err)
	require.True(t, created)

	require.NoError(t, repo.Delete(ctx, channel.ID))

	found, err := repo.GetByID(ctx, channel.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	gone, err := requests.GetByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
