package repository

import (
	"context"
	"database/sql"

	"shopifyte/internal/database"

	"go.uber.org/zap"
)

// withinTx runs fn in a new transaction when db is a pool, or directly when the
// caller already holds a transaction
func withinTx(ctx context.Context, db DBTX, fn func(DBTX) error) error {
	pool, ok := db.(*sql.DB)
	if !ok {
		return fn(db)
	}

	return database.RunInTx(ctx, pool, zap.L(), func(tx *sql.Tx) error {
		return fn(tx)
	})
}
