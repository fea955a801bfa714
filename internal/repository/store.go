package repository

import (
	"context"
	"database/sql"

	"shopifyte/internal/database"

	"go.uber.org/zap"
)

// Store groups the repositories the services need and runs them inside transactions
type Store interface {
	Users() UserRepository
	Products() ProductRepository
	Carts() CartRepository
	Orders() OrderRepository
	Payments() PaymentRepository
	ShippingAddresses() ShippingAddressRepository
	WithTx(ctx context.Context, fn func(Store) error) error
}

type store struct {
	db     DBTX
	pool   *sql.DB
	logger *zap.Logger
}

// NewStore creates a Store backed by the connection pool
func NewStore(db *sql.DB, logger *zap.Logger) Store {
	return &store{db: db, pool: db, logger: logger}
}

func (s *store) Users() UserRepository {
	return NewUserRepository(s.db)
}

func (s *store) Products() ProductRepository {
	return NewProductRepository(s.db)
}

func (s *store) Carts() CartRepository {
	return NewCartRepository(s.db)
}

func (s *store) Orders() OrderRepository {
	return NewOrderRepository(s.db)
}

func (s *store) Payments() PaymentRepository {
	return NewPaymentRepository(s.db)
}

func (s *store) ShippingAddresses() ShippingAddressRepository {
	return NewShippingAddressRepository(s.db)
}

// WithTx runs fn against a Store bound to one transaction. Nested calls reuse the outer transaction.
func (s *store) WithTx(ctx context.Context, fn func(Store) error) error {
	if s.pool == nil {
		return fn(s)
	}

	return database.RunInTx(ctx, s.pool, s.logger, func(tx *sql.Tx) error {
		return fn(&store{db: tx, logger: s.logger})
	})
}
