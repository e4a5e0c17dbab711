package database

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/channel-gatekeeper/internal/domain/contract"
	"github.com/diegoclair/channel-gatekeeper/internal/domain/entity"
)

type statisticsRepo struct {
	db dbConn
}

func newStatisticsRepo(db dbConn) contract.StatisticsRepo {
	return &statisticsRepo{db: db}
}

// Increment adds to the counters of the given day. Counters never go down.
func (r *statisticsRepo) Increment(ctx context.Context, channelID int64, day time.Time, approved, rejected int) error {
	if approved < 0 || rejected < 0 {
		return fmt.Errorf("statistics can only be incremented")
	}
	if approved == 0 && rejected == 0 {
		return nil
	}

	query := `
		INSERT INTO statistics (channel_id, period_date, approved_count, rejected_count)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(channel_id, period_date) DO UPDATE SET
			approved_count = approved_count + excluded.approved_count,
			rejected_count = rejected_count + excluded.rejected_count
	`

	_, err := r.db.ExecContext(ctx, query, channelID, day.Format(entity.StatsDayFormat), approved, rejected)
	if err != nil {
		return fmt.Errorf("failed to update statistics: %w", err)
	}

	return nil
}

// Sum aggregates counters over the inclusive day range; nil bounds are open.
func (r *statisticsRepo) Sum(ctx context.Context, channelID int64, from, to *time.Time) (entity.Statistics, error) {
	query := `
		SELECT COALESCE(SUM(approved_count), 0), COALESCE(SUM(rejected_count), 0)
		FROM statistics
		WHERE channel_id = ?
	`
	args := []interface{}{channelID}

	if from != nil {
		query += ` AND period_date >= ?`
		args = append(args, from.Format(entity.StatsDayFormat))
	}
	if to != nil {
		query += ` AND period_date <= ?`
		args = append(args, to.Format(entity.StatsDayFormat))
	}

	var stats entity.Statistics
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&stats.Approved, &stats.Rejected); err != nil {
		return entity.Statistics{}, fmt.Errorf("failed to get statistics: %w", err)
	}

	return stats, nil
}
