package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/channel-gatekeeper/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db             *DB
	channelRepo    contract.ChannelRepo
	requestRepo    contract.RequestRepo
	taskRepo       contract.TaskRepo
	statisticsRepo contract.StatisticsRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := repoInstancesWithConn(db.conn)
	instance.db = db
	return instance
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		channelRepo:    newChannelRepo(db),
		requestRepo:    newRequestRepo(db),
		taskRepo:       newTaskRepo(db),
		statisticsRepo: newStatisticsRepo(db),
	}
}

func (i *instance) Channel() contract.ChannelRepo {
	return i.channelRepo
}

func (i *instance) Request() contract.RequestRepo {
	return i.requestRepo
}

func (i *instance) Task() contract.TaskRepo {
	return i.taskRepo
}

func (i *instance) Statistics() contract.StatisticsRepo {
	return i.statisticsRepo
}

// WithTransaction executes a function within a database transaction.
// Nested calls on a transaction-bound instance reuse the outer transaction.
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		return fn(i)
	}

	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
