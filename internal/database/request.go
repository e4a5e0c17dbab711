package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/channel-gatekeeper/internal/domain"
	"github.com/diegoclair/channel-gatekeeper/internal/domain/contract"
	"github.com/diegoclair/channel-gatekeeper/internal/domain/entity"
)

const requestColumns = `id, channel_id, user_id, username, full_name, status,
	created_at, processed_by, processed_at`

type requestRepo struct {
	db dbConn
}

func newRequestRepo(db dbConn) contract.RequestRepo {
	return &requestRepo{db: db}
}

func scanRequest(row rowScanner) (*entity.JoinRequest, error) {
	request := &entity.JoinRequest{}
	var status string
	var processedBy sql.NullInt64
	var processedAt sql.NullTime

	err := row.Scan(
		&request.ID,
		&request.ChannelID,
		&request.UserID,
		&request.Username,
		&request.FullName,
		&status,
		&request.CreatedAt,
		&processedBy,
		&processedAt,
	)
	if err != nil {
		return nil, err
	}

	request.Status = entity.RequestStatus(status)
	request.ProcessedBy = int64Ptr(processedBy)
	request.ProcessedAt = timePtr(processedAt)
	return request, nil
}

func (r *requestRepo) CreatePending(ctx context.Context, request *entity.JoinRequest) (*entity.JoinRequest, bool, error) {
	// the partial unique index on (channel_id, user_id) WHERE status = 'pending'
	// turns a second pending insert into a no-op
	query := `
		INSERT OR IGNORE INTO join_requests (channel_id, user_id, username, full_name, status, created_at)
		VALUES (?, ?, ?, ?, 'pending', ?)
	`

	createdAt := request.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	result, err := r.db.ExecContext(ctx, query,
		request.ChannelID,
		request.UserID,
		request.Username,
		request.FullName,
		createdAt.UTC(),
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create join request: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if affected == 0 {
		existing, err := r.getPending(ctx, request.ChannelID, request.UserID)
		if err != nil {
			return nil, false, err
		}
		if existing == nil {
			return nil, false, fmt.Errorf("join request for user %d was ignored but no pending request exists", request.UserID)
		}
		return existing, false, nil
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, false, fmt.Errorf("failed to get last insert id: %w", err)
	}

	request.ID = id
	request.Status = entity.StatusPending
	request.CreatedAt = createdAt.UTC()
	return request, true, nil
}

func (r *requestRepo) getPending(ctx context.Context, channelID, userID int64) (*entity.JoinRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM join_requests
		WHERE channel_id = ? AND user_id = ? AND status = 'pending'`

	request, err := scanRequest(r.db.QueryRowContext(ctx, query, channelID, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pending request: %w", err)
	}

	return request, nil
}

func (r *requestRepo) GetByID(ctx context.Context, requestID int64) (*entity.JoinRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM join_requests WHERE id = ?`

	request, err := scanRequest(r.db.QueryRowContext(ctx, query, requestID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get join request: %w", err)
	}

	return request, nil
}

func (r *requestRepo) ListPending(ctx context.Context, channelID int64, limit int) ([]*entity.JoinRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM join_requests
		WHERE channel_id = ? AND status = 'pending'
		ORDER BY created_at, id`
	args := []interface{}{channelID}

	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	return r.query(ctx, query, args...)
}

func (r *requestRepo) CountPending(ctx context.Context, channelID int64) (int, error) {
	query := `SELECT COUNT(*) FROM join_requests WHERE channel_id = ? AND status = 'pending'`

	var count int
	if err := r.db.QueryRowContext(ctx, query, channelID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending requests: %w", err)
	}

	return count, nil
}

func (r *requestRepo) ListAll(ctx context.Context, channelID int64) ([]*entity.JoinRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM join_requests
		WHERE channel_id = ?
		ORDER BY created_at DESC, id DESC`

	return r.query(ctx, query, channelID)
}

func (r *requestRepo) query(ctx context.Context, query string, args ...interface{}) ([]*entity.JoinRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list join requests: %w", err)
	}
	defer rows.Close()

	var requests []*entity.JoinRequest
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan join request: %w", err)
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate join requests: %w", err)
	}

	return requests, nil
}

func (r *requestRepo) MarkProcessed(ctx context.Context, requestID int64, status entity.RequestStatus, processedBy int64, at time.Time) error {
	if status != entity.StatusApproved && status != entity.StatusRejected {
		return fmt.Errorf("invalid terminal status %q", status)
	}

	query := `
		UPDATE join_requests SET
			status = ?,
			processed_by = ?,
			processed_at = ?
		WHERE id = ? AND status = 'pending'
	`

	result, err := r.db.ExecContext(ctx, query, string(status), processedBy, at.UTC(), requestID)
	if err != nil {
		return fmt.Errorf("failed to update join request: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrRequestNotPending
	}

	return nil
}

func (r *requestRepo) HourlyCounts(ctx context.Context, channelID int64, loc *time.Location) (entity.PeakHours, error) {
	query := `SELECT created_at FROM join_requests WHERE channel_id = ?`

	rows, err := r.db.QueryContext(ctx, query, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to load request times: %w", err)
	}
	defer rows.Close()

	if loc == nil {
		loc = time.UTC
	}

	hours := entity.PeakHours{}
	for rows.Next() {
		var createdAt time.Time
		if err := rows.Scan(&createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan request time: %w", err)
		}
		hours[createdAt.In(loc).Hour()]++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate request times: %w", err)
	}

	return hours, nil
}
