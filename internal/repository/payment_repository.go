package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shopifyte/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
)

// PaymentRepository defines the interface for payment data access
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*domain.Payment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus) error
}

type paymentRepository struct {
	db DBTX
}

func NewPaymentRepository(db DBTX) PaymentRepository {
	return &paymentRepository{db: db}
}

// Create inserts a payment; an empty status becomes Pending
func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	payment.ApplyDefaults()
	if !payment.Status.Valid() {
		return fmt.Errorf("failed to create payment: %w", domain.ErrInvalidPaymentStatus)
	}
	payment.Timestamp = time.Now()

	query := `
		INSERT INTO payments (id, order_id, payment_method, amount, status, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		payment.ID,
		payment.OrderID,
		payment.PaymentMethod,
		payment.Amount,
		payment.Status,
		payment.Timestamp,
	)
	if err != nil {
		return translateError(err, "create payment", nil)
	}

	return nil
}

func (r *paymentRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*domain.Payment, error) {
	query := `
		SELECT id, order_id, payment_method, amount, status, timestamp
		FROM payments
		WHERE order_id = $1
		ORDER BY timestamp, id
	`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	payments := []*domain.Payment{}
	for rows.Next() {
		payment := &domain.Payment{}
		err := rows.Scan(
			&payment.ID,
			&payment.OrderID,
			&payment.PaymentMethod,
			&payment.Amount,
			&payment.Status,
			&payment.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, payment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payments: %w", err)
	}

	return payments, nil
}

// UpdateStatus moves the payment to any valid status
func (r *paymentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus) error {
	if !status.Valid() {
		return fmt.Errorf("failed to update payment status: %w", domain.ErrInvalidPaymentStatus)
	}

	result, err := r.db.ExecContext(ctx, `UPDATE payments SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return translateError(err, "update payment status", nil)
	}

	return expectOneRow(result, ErrPaymentNotFound)
}
