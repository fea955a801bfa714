package repository

import (
	"context"
	"errors"
	"fmt"

	"shopifyte/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrShippingAddressNotFound = errors.New("shipping address not found")
)

// ShippingAddressRepository defines the interface for shipping address data access
type ShippingAddressRepository interface {
	Create(ctx context.Context, address *domain.ShippingAddress) error
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*domain.ShippingAddress, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type shippingAddressRepository struct {
	db DBTX
}

func NewShippingAddressRepository(db DBTX) ShippingAddressRepository {
	return &shippingAddressRepository{db: db}
}

func (r *shippingAddressRepository) Create(ctx context.Context, address *domain.ShippingAddress) error {
	if address.ID == uuid.Nil {
		address.ID = uuid.New()
	}

	query := `
		INSERT INTO shipping_addresses
			(id, user_id, order_id, address_line1, address_line2, city, state, postal_code, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		address.ID,
		address.UserID,
		address.OrderID,
		address.AddressLine1,
		address.AddressLine2,
		address.City,
		address.State,
		address.PostalCode,
		address.Country,
	)
	if err != nil {
		return translateError(err, "create shipping address", nil)
	}

	return nil
}

func (r *shippingAddressRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*domain.ShippingAddress, error) {
	query := `
		SELECT id, user_id, order_id, address_line1, address_line2, city, state, postal_code, country
		FROM shipping_addresses
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shipping addresses: %w", err)
	}
	defer rows.Close()

	addresses := []*domain.ShippingAddress{}
	for rows.Next() {
		address := &domain.ShippingAddress{}
		err := rows.Scan(
			&address.ID,
			&address.UserID,
			&address.OrderID,
			&address.AddressLine1,
			&address.AddressLine2,
			&address.City,
			&address.State,
			&address.PostalCode,
			&address.Country,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shipping address: %w", err)
		}
		addresses = append(addresses, address)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shipping addresses: %w", err)
	}

	return addresses, nil
}

func (r *shippingAddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM shipping_addresses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shipping address: %w", err)
	}

	return expectOneRow(result, ErrShippingAddressNotFound)
}
