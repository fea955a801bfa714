package database

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

// RunInTx runs fn inside a transaction on db. It rolls back when fn returns an error or panics
// and commits otherwise.
func RunInTx(ctx context.Context, db *sql.DB, logger *zap.Logger, fn func(*sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			logger.Error("Transaction panic, rolling back", zap.Any("panic", p))
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Error("Failed to roll back transaction", zap.Error(rbErr))
			}
			return
		}
		if err = tx.Commit(); err != nil {
			err = fmt.Errorf("failed to commit transaction: %w", err)
		}
	}()

	return fn(tx)
}
