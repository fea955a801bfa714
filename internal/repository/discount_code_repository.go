package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shopifyte/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrDiscountCodeNotFound      = errors.New("discount code not found")
	ErrDiscountCodeAlreadyExists = errors.New("discount code already exists")
)

// DiscountCodeRepository defines the interface for discount code data access
type DiscountCodeRepository interface {
	Create(ctx context.Context, code *domain.DiscountCode) error
	FindByCode(ctx context.Context, code string) (*domain.DiscountCode, error)
	List(ctx context.Context) ([]*domain.DiscountCode, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type discountCodeRepository struct {
	db DBTX
}

func NewDiscountCodeRepository(db DBTX) DiscountCodeRepository {
	return &discountCodeRepository{db: db}
}

// Create inserts a code; codes are unique
func (r *discountCodeRepository) Create(ctx context.Context, code *domain.DiscountCode) error {
	if code.ID == uuid.Nil {
		code.ID = uuid.New()
	}

	query := `
		INSERT INTO discount_codes (id, code, discount_percent, valid_from, valid_to)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		code.ID,
		code.Code,
		code.DiscountPercent,
		code.ValidFrom,
		code.ValidTo,
	)
	if err != nil {
		return translateError(err, "create discount code", ErrDiscountCodeAlreadyExists)
	}

	return nil
}

func (r *discountCodeRepository) FindByCode(ctx context.Context, code string) (*domain.DiscountCode, error) {
	query := `
		SELECT id, code, discount_percent, valid_from, valid_to
		FROM discount_codes
		WHERE code = $1
	`

	dc := &domain.DiscountCode{}
	err := r.db.QueryRowContext(ctx, query, code).Scan(
		&dc.ID,
		&dc.Code,
		&dc.DiscountPercent,
		&dc.ValidFrom,
		&dc.ValidTo,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDiscountCodeNotFound
		}
		return nil, fmt.Errorf("failed to find discount code: %w", err)
	}

	return dc, nil
}

func (r *discountCodeRepository) List(ctx context.Context) ([]*domain.DiscountCode, error) {
	query := `
		SELECT id, code, discount_percent, valid_from, valid_to
		FROM discount_codes
		ORDER BY valid_from DESC, code
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list discount codes: %w", err)
	}
	defer rows.Close()

	codes := []*domain.DiscountCode{}
	for rows.Next() {
		dc := &domain.DiscountCode{}
		if err := rows.Scan(&dc.ID, &dc.Code, &dc.DiscountPercent, &dc.ValidFrom, &dc.ValidTo); err != nil {
			return nil, fmt.Errorf("failed to scan discount code: %w", err)
		}
		codes = append(codes, dc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating discount codes: %w", err)
	}

	return codes, nil
}

func (r *discountCodeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM discount_codes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete discount code: %w", err)
	}

	return expectOneRow(result, ErrDiscountCodeNotFound)
}
