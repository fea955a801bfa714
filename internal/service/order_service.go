package service

import (
	"context"
	"errors"
	"fmt"

	"shopifyte/internal/domain"
	"shopifyte/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
)

// OrderService defines the order lifecycle operations
type OrderService interface {
	Checkout(ctx context.Context, userID uuid.UUID, address domain.ShippingAddress) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) error
	RecordPayment(ctx context.Context, orderID uuid.UUID, method string, amount decimal.Decimal) (*domain.Payment, error)
}

type orderService struct {
	store  repository.Store
	logger *zap.Logger
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(store repository.Store, logger *zap.Logger) OrderService {
	return &orderService{store: store, logger: logger}
}

// Checkout turns the user's cart into a Pending order. Each line is priced at the
// product's current price and keeps that price afterwards. The order, its shipping
// address and the emptied cart are committed together.
func (s *orderService) Checkout(ctx context.Context, userID uuid.UUID, address domain.ShippingAddress) (*domain.Order, error) {
	var order *domain.Order

	err := s.store.WithTx(ctx, func(tx repository.Store) error {
		// Concurrent checkouts for the same user serialize on the cart row
		cart, err := tx.Carts().LockByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				return ErrEmptyCart
			}
			return fmt.Errorf("failed to load cart: %w", err)
		}
		if len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		items := make([]*domain.OrderItem, 0, len(cart.Items))
		for _, line := range cart.Items {
			product, err := tx.Products().FindByID(ctx, line.ProductID)
			if err != nil {
				return fmt.Errorf("failed to load product %s: %w", line.ProductID, err)
			}
			items = append(items, domain.Snapshot(product, line.Quantity))
		}

		order = &domain.Order{
			ID:     uuid.New(),
			UserID: userID,
			Status: domain.OrderStatusPending,
			Items:  items,
		}
		order.TotalPrice = order.ItemsTotal()

		if err := order.Validate(); err != nil {
			return err
		}
		if err := tx.Orders().Create(ctx, order); err != nil {
			return err
		}

		address.UserID = userID
		address.OrderID = order.ID
		if err := address.Validate(); err != nil {
			return err
		}
		if err := tx.ShippingAddresses().Create(ctx, &address); err != nil {
			return err
		}

		return tx.Carts().Clear(ctx, cart.ID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int("items", len(order.Items)),
		zap.String("total_price", order.TotalPrice.StringFixed(2)),
	)

	return order, nil
}

// UpdateStatus sets any valid status; there is no transition ordering
func (s *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) error {
	parsed, err := domain.ParseOrderStatus(status)
	if err != nil {
		return err
	}

	if err := s.store.Orders().UpdateStatus(ctx, orderID, parsed); err != nil {
		return err
	}

	s.logger.Info("Order status updated",
		zap.String("order_id", orderID.String()),
		zap.String("status", string(parsed)),
	)
	return nil
}

// RecordPayment stores a Pending payment against the order
func (s *orderService) RecordPayment(ctx context.Context, orderID uuid.UUID, method string, amount decimal.Decimal) (*domain.Payment, error) {
	payment := &domain.Payment{
		ID:            uuid.New(),
		OrderID:       orderID,
		PaymentMethod: method,
		Amount:        amount,
	}
	payment.ApplyDefaults()

	if err := payment.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.Payments().Create(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}
