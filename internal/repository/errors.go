package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrReferencedRowNotFound = errors.New("referenced row does not exist")
	ErrConstraintViolation   = errors.New("value violates a check constraint")
)

// PostgreSQL SQLSTATE codes surfaced by the schema constraints
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// translateError maps constraint violations reported by the database to sentinel errors.
// alreadyExists is returned for unique violations when it is non-nil.
func translateError(err error, op string, alreadyExists error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if alreadyExists != nil {
				return alreadyExists
			}
		case pgForeignKeyViolation:
			return fmt.Errorf("failed to %s: %w (%s)", op, ErrReferencedRowNotFound, pgErr.ConstraintName)
		case pgCheckViolation:
			return fmt.Errorf("failed to %s: %w (%s)", op, ErrConstraintViolation, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

// expectOneRow returns notFound when a write touched no rows
func expectOneRow(result sql.Result, notFound error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return notFound
	}

	return nil
}
