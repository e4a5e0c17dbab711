package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/channel-gatekeeper/internal/domain/contract"
	"github.com/diegoclair/channel-gatekeeper/internal/domain/entity"
)

const taskColumns = `id, channel_id, action_type, scheduled_time, user_count, is_executed, created_at`

type taskRepo struct {
	db dbConn
}

func newTaskRepo(db dbConn) contract.TaskRepo {
	return &taskRepo{db: db}
}

func scanTask(row rowScanner) (*entity.ScheduledTask, error) {
	task := &entity.ScheduledTask{}
	var action string
	var userCount sql.NullInt64

	err := row.Scan(
		&task.ID,
		&task.ChannelID,
		&action,
		&task.RunAt,
		&userCount,
		&task.IsExecuted,
		&task.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	task.Action = entity.TaskAction(action)
	if userCount.Valid {
		n := int(userCount.Int64)
		task.UserCount = &n
	}
	return task, nil
}

func (r *taskRepo) Create(ctx context.Context, task *entity.ScheduledTask) error {
	query := `
		INSERT INTO scheduled_tasks (channel_id, action_type, scheduled_time, user_count, is_executed, created_at)
		VALUES (?, ?, ?, ?, 0, ?)
	`

	var userCount interface{}
	if task.UserCount != nil {
		userCount = *task.UserCount
	}

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query,
		task.ChannelID,
		string(task.Action),
		task.RunAt.UTC(),
		userCount,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to create scheduled task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	task.ID = id
	task.IsExecuted = false
	task.CreatedAt = now
	return nil
}

func (r *taskRepo) GetByID(ctx context.Context, taskID int64) (*entity.ScheduledTask, error) {
	query := `SELECT ` + taskColumns + ` FROM scheduled_tasks WHERE id = ?`

	task, err := scanTask(r.db.QueryRowContext(ctx, query, taskID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scheduled task: %w", err)
	}

	return task, nil
}

func (r *taskRepo) ListUnexecuted(ctx context.Context) ([]*entity.ScheduledTask, error) {
	query := `SELECT ` + taskColumns + ` FROM scheduled_tasks
		WHERE is_executed = 0
		ORDER BY scheduled_time, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending scheduled tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*entity.ScheduledTask
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scheduled task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scheduled tasks: %w", err)
	}

	return tasks, nil
}

// MarkExecuted is idempotent: marking an executed task again changes nothing.
func (r *taskRepo) MarkExecuted(ctx context.Context, taskID int64) error {
	query := `UPDATE scheduled_tasks SET is_executed = 1 WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, taskID); err != nil {
		return fmt.Errorf("failed to mark task executed: %w", err)
	}

	return nil
}

func (r *taskRepo) Delete(ctx context.Context, taskID int64) error {
	query := `DELETE FROM scheduled_tasks WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, taskID); err != nil {
		return fmt.Errorf("failed to delete scheduled task: %w", err)
	}

	return nil
}
