package repository

import (
	"context"
	"errors"
	"testing"

	"shopifyte/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOrderStatusDefaultsToPending(t *testing.T) {
	repo := NewOrderRepository(testDB)
	ctx := context.Background()
	user := createTestUser(t)

	order := &domain.Order{UserID: user.ID, TotalPrice: decimal.Zero}
	require.NoError(t, repo.Create(ctx, order))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, found.Status)
}

func TestOrderItemKeepsPriceAfterProductChanges(t *testing.T) {
	repo := NewOrderRepository(testDB)
	productRepo := NewProductRepository(testDB)
	ctx := context.Background()
	user := createTestUser(t)
	product := createTestProduct(t, createTestCategory(t).ID, "12.50")

	order := &domain.Order{UserID: user.ID, Items: []*domain.OrderItem{domain.Snapshot(product, 2)}}
	order.TotalPrice = order.ItemsTotal()
	require.NoError(t, repo.Create(ctx, order))

	product.Price = decimal.RequireFromString("99.00")
	require.NoError(t, productRepo.Update(ctx, product))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 1)
	assert.True(t, found.Items[0].Price.Equal(decimal.RequireFromString("12.50")))
	assert.True(t, found.TotalPrice.Equal(decimal.RequireFromString("25.00")))
}

func TestOrderStatusAcceptsAnyValidValue(t *testing.T) {
	repo := NewOrderRepository(testDB)
	ctx := context.Background()
	user := createTestUser(t)

	order := &domain.Order{UserID: user.ID}
	require.NoError(t, repo.Create(ctx, order))

	require.NoError(t, repo.UpdateStatus(ctx, order.ID, domain.OrderStatusDelivered))
	require.NoError(t, repo.UpdateStatus(ctx, order.ID, domain.OrderStatusShipped))

	assert.ErrorIs(t, repo.UpdateStatus(ctx, order.ID, "Returned"), domain.ErrInvalidOrderStatus)
	assert.ErrorIs(t, repo.UpdateStatus(ctx, uuid.New(), domain.OrderStatusShipped), ErrOrderNotFound)

	_, err := testDB.Exec(`UPDATE orders SET status = 'Returned' WHERE id = $1`, order.ID)
	assert.Error(t, err, "the status check constraint rejects unknown values")

	orders, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, domain.OrderStatusShipped, orders[0].Status)
}

func TestOrderCreateRollsBackOnBadItem(t *testing.T) {
	repo := NewOrderRepository(testDB)
	ctx := context.Background()
	user := createTestUser(t)

	order := &domain.Order{UserID: user.ID, Items: []*domain.OrderItem{
		{ProductID: uuid.New(), Quantity: 1, Price: decimal.NewFromInt(1)},
	}}

	err := repo.Create(ctx, order)
	assert.ErrorIs(t, err, ErrReferencedRowNotFound)

	_, err = repo.FindByID(ctx, order.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestPaymentDefaultsAndDeletionCascade(t *testing.T) {
	orders := NewOrderRepository(testDB)
	payments := NewPaymentRepository(testDB)
	addresses := NewShippingAddressRepository(testDB)
	ctx := context.Background()
	user := createTestUser(t)

	order := &domain.Order{UserID: user.ID}
	require.NoError(t, orders.Create(ctx, order))

	payment := &domain.Payment{OrderID: order.ID, PaymentMethod: "card", Amount: decimal.RequireFromString("10.00")}
	require.NoError(t, payments.Create(ctx, payment))
	require.NoError(t, payments.UpdateStatus(ctx, payment.ID, domain.PaymentStatusCompleted))
	require.NoError(t, addresses.Create(ctx, &domain.ShippingAddress{
		UserID: user.ID, OrderID: order.ID, AddressLine1: "1 Main St", City: "Springfield", State: "IL", PostalCode: "62701", Country: "US",
	}))

	stored, err := payments.ListByOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, domain.PaymentStatusCompleted, stored[0].Status)

	require.NoError(t, orders.Delete(ctx, order.ID))

	stored, err = payments.ListByOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Empty(t, stored)

	shipping, err := addresses.ListByOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Empty(t, shipping)
}

func TestStoreWithTxRollsBackEveryWrite(t *testing.T) {
	store := NewStore(testDB, zap.NewNop())
	ctx := context.Background()
	user := createTestUser(t)
	product := createTestProduct(t, createTestCategory(t).ID, "3.00")

	cart := &domain.Cart{UserID: user.ID}
	require.NoError(t, store.Carts().Create(ctx, cart))
	require.NoError(t, store.Carts().AddItem(ctx, &domain.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 2}))

	var orderID uuid.UUID
	errAbort := errors.New("abort")
	err := store.WithTx(ctx, func(tx Store) error {
		order := &domain.Order{UserID: user.ID, Items: []*domain.OrderItem{domain.Snapshot(product, 2)}}
		order.TotalPrice = order.ItemsTotal()
		if err := tx.Orders().Create(ctx, order); err != nil {
			return err
		}
		orderID = order.ID

		if err := tx.Carts().Clear(ctx, cart.ID); err != nil {
			return err
		}

		return tx.WithTx(ctx, func(nested Store) error {
			return errAbort
		})
	})
	require.ErrorIs(t, err, errAbort)

	_, err = store.Orders().FindByID(ctx, orderID)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	items, err := store.Carts().ListItems(ctx, cart.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestStoreWithTxCommits(t *testing.T) {
	store := NewStore(testDB, zap.NewNop())
	ctx := context.Background()
	user := createTestUser(t)

	order := &domain.Order{UserID: user.ID}
	err := store.WithTx(ctx, func(tx Store) error {
		return tx.Orders().Create(ctx, order)
	})
	require.NoError(t, err)

	found, err := store.Orders().FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.UserID)
}
