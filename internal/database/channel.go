package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/diegoclair/channel-gatekeeper/internal/domain/contract"
	"github.com/diegoclair/channel-gatekeeper/internal/domain/entity"
)

const channelColumns = `id, title, is_active, auto_approve, welcome_message, schedule,
	accepted_count, created_at, updated_at`

type channelRepo struct {
	db dbConn
}

func newChannelRepo(db dbConn) contract.ChannelRepo {
	return &channelRepo{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanChannel(row rowScanner) (*entity.Channel, error) {
	channel := &entity.Channel{}
	var welcome, schedule sql.NullString

	err := row.Scan(
		&channel.ID,
		&channel.Title,
		&channel.IsActive,
		&channel.AutoApprove,
		&welcome,
		&schedule,
		&channel.AcceptedCount,
		&channel.CreatedAt,
		&channel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if welcome.Valid {
		text := welcome.String
		channel.WelcomeMessage = &text
	}

	// a stored policy that no longer decodes or validates is reported, not
	// fatal, so the channel stays readable and can be given a new policy
	if schedule.Valid && schedule.String != "" {
		policy := &entity.SchedulePolicy{}
		if err := json.Unmarshal([]byte(schedule.String), policy); err != nil {
			channel.ScheduleInvalid = true
		} else {
			channel.Schedule = policy
		}
	}

	return channel, nil
}

func (r *channelRepo) Upsert(ctx context.Context, channel *entity.Channel) error {
	query := `
		INSERT INTO channels (id, title, is_active, created_at, updated_at)
		VALUES (?, ?, 1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			is_active = 1,
			updated_at = excluded.updated_at
	`

	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, channel.ID, channel.Title, now, now)
	if err != nil {
		return fmt.Errorf("failed to upsert channel: %w", err)
	}

	channel.IsActive = true
	return nil
}

func (r *channelRepo) CreateIfMissing(ctx context.Context, channelID int64, title string, active bool) (*entity.Channel, error) {
	query := `
		INSERT OR IGNORE INTO channels (id, title, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	now := time.Now().UTC()
	if _, err := r.db.ExecContext(ctx, query, channelID, title, active, now, now); err != nil {
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	return r.GetByID(ctx, channelID)
}

func (r *channelRepo) GetByID(ctx context.Context, channelID int64) (*entity.Channel, error) {
	query := `SELECT ` + channelColumns + ` FROM channels WHERE id = ?`

	channel, err := scanChannel(r.db.QueryRowContext(ctx, query, channelID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}

	return channel, nil
}

func (r *channelRepo) List(ctx context.Context, activeOnly bool) ([]*entity.Channel, error) {
	query := `SELECT ` + channelColumns + ` FROM channels`
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY title, id`

	return r.query(ctx, query)
}

func (r *channelRepo) ListScheduled(ctx context.Context) ([]*entity.Channel, error) {
	query := `SELECT ` + channelColumns + ` FROM channels
		WHERE is_active = 1 AND schedule IS NOT NULL AND schedule != ''
		ORDER BY id`

	channels, err := r.query(ctx, query)
	if err != nil {
		return nil, err
	}

	enabled := channels[:0]
	for _, channel := range channels {
		if channel.ScheduleInvalid || (channel.Schedule != nil && channel.Schedule.Enabled) {
			enabled = append(enabled, channel)
		}
	}
	return enabled, nil
}

func (r *channelRepo) query(ctx context.Context, query string, args ...interface{}) ([]*entity.Channel, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}
	defer rows.Close()

	var channels []*entity.Channel
	for rows.Next() {
		channel, err := scanChannel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan channel: %w", err)
		}
		channels = append(channels, channel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate channels: %w", err)
	}

	return channels, nil
}

func (r *channelRepo) SetAutoApprove(ctx context.Context, channelID int64, enabled bool) error {
	return r.update(ctx, "auto_approve", enabled, channelID)
}

func (r *channelRepo) SetActive(ctx context.Context, channelID int64, active bool) error {
	return r.update(ctx, "is_active", active, channelID)
}

func (r *channelRepo) SetWelcomeMessage(ctx context.Context, channelID int64, text *string) error {
	return r.update(ctx, "welcome_message", nullableString(text), channelID)
}

func (r *channelRepo) SetSchedule(ctx context.Context, channelID int64, policy *entity.SchedulePolicy) error {
	if policy == nil {
		return r.update(ctx, "schedule", nil, channelID)
	}

	if err := policy.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(policy)
	if err != nil {
		return fmt.Errorf("failed to marshal schedule: %w", err)
	}

	return r.update(ctx, "schedule", string(data), channelID)
}

// update sets one column; column is always a constant from this file.
func (r *channelRepo) update(ctx context.Context, column string, value interface{}, channelID int64) error {
	query := `UPDATE channels SET ` + column + ` = ?, updated_at = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, value, time.Now().UTC(), channelID)
	if err != nil {
		return fmt.Errorf("failed to update channel %s: %w", column, err)
	}

	return nil
}

func (r *channelRepo) IncrementAccepted(ctx context.Context, channelID int64) error {
	query := `UPDATE channels SET accepted_count = accepted_count + 1 WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, channelID); err != nil {
		return fmt.Errorf("failed to increment accepted count: %w", err)
	}

	return nil
}

func (r *channelRepo) Delete(ctx context.Context, channelID int64) error {
	query := `DELETE FROM channels WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, channelID); err != nil {
		return fmt.Errorf("failed to delete channel: %w", err)
	}

	return nil
}
