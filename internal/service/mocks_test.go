package service

import (
	"context"
	"errors"

	"shopifyte/internal/domain"
	"shopifyte/internal/repository"

	"github.com/google/uuid"
)

var errNotImplemented = errors.New("not implemented by mock")

// Mock repositories for testing
type mockUserRepository struct {
	users map[string]*domain.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		users: make(map[string]*domain.User),
	}
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if _, exists := m.users[user.Username]; exists {
		return repository.ErrUserAlreadyExists
	}
	m.users[user.Username] = user
	return nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, exists := m.users[username]
	if !exists {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	for name, user := range m.users {
		if user.ID == id {
			delete(m.users, name)
			return nil
		}
	}
	return repository.ErrUserNotFound
}

type mockProductRepository struct {
	products map[uuid.UUID]*domain.Product
}

func (m *mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if _, exists := m.products[product.ID]; !exists {
		return repository.ErrProductNotFound
	}
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.products, id)
	return nil
}

func (m *mockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, exists := m.products[id]
	if !exists {
		return nil, repository.ErrProductNotFound
	}
	copied := *product
	return &copied, nil
}

func (m *mockProductRepository) List(ctx context.Context, categoryID *uuid.UUID, page, pageSize int, sortBy string, sortOrder repository.SortOrder) ([]*domain.Product, int, error) {
	return nil, 0, errNotImplemented
}

func (m *mockProductRepository) Search(ctx context.Context, query string, page, pageSize int) ([]*domain.Product, int, error) {
	return nil, 0, errNotImplemented
}

type mockCartRepository struct {
	carts  map[uuid.UUID]*domain.Cart
	locked []uuid.UUID
}

func (m *mockCartRepository) Create(ctx context.Context, cart *domain.Cart) error {
	if _, exists := m.carts[cart.UserID]; exists {
		return repository.ErrCartAlreadyExists
	}
	m.carts[cart.UserID] = cart
	return nil
}

func (m *mockCartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Cart, error) {
	cart, exists := m.carts[userID]
	if !exists {
		return nil, repository.ErrCartNotFound
	}
	return cart, nil
}

func (m *mockCartRepository) LockByUserID(ctx context.Context, userID uuid.UUID) (*domain.Cart, error) {
	m.locked = append(m.locked, userID)
	return m.FindByUserID(ctx, userID)
}

func (m *mockCartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return errNotImplemented
}

func (m *mockCartRepository) AddItem(ctx context.Context, item *domain.CartItem) error {
	item.ApplyDefaults()
	for _, cart := range m.carts {
		if cart.ID == item.CartID {
			cart.Items = append(cart.Items, item)
			return nil
		}
	}
	return repository.ErrReferencedRowNotFound
}

func (m *mockCartRepository) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error {
	return errNotImplemented
}

func (m *mockCartRepository) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	return errNotImplemented
}

func (m *mockCartRepository) ListItems(ctx context.Context, cartID uuid.UUID) ([]*domain.CartItem, error) {
	for _, cart := range m.carts {
		if cart.ID == cartID {
			return cart.Items, nil
		}
	}
	return nil, nil
}

func (m *mockCartRepository) Clear(ctx context.Context, cartID uuid.UUID) error {
	for _, cart := range m.carts {
		if cart.ID == cartID {
			cart.Items = nil
		}
	}
	return nil
}

type mockOrderRepository struct {
	orders map[uuid.UUID]*domain.Order
}

func (m *mockOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	order.ApplyDefaults()
	for _, item := range order.Items {
		item.OrderID = order.ID
	}
	m.orders[order.ID] = order
	return nil
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, exists := m.orders[id]
	if !exists {
		return nil, repository.ErrOrderNotFound
	}
	return order, nil
}

func (m *mockOrderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Order, error) {
	var orders []*domain.Order
	for _, order := range m.orders {
		if order.UserID == userID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (m *mockOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error {
	order, exists := m.orders[id]
	if !exists {
		return repository.ErrOrderNotFound
	}
	order.Status = status
	return nil
}

func (m *mockOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.orders, id)
	return nil
}

type mockPaymentRepository struct {
	payments []*domain.Payment
}

func (m *mockPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	payment.ApplyDefaults()
	m.payments = append(m.payments, payment)
	return nil
}

func (m *mockPaymentRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*domain.Payment, error) {
	var payments []*domain.Payment
	for _, p := range m.payments {
		if p.OrderID == orderID {
			payments = append(payments, p)
		}
	}
	return payments, nil
}

func (m *mockPaymentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus) error {
	return errNotImplemented
}

type mockShippingAddressRepository struct {
	addresses []*domain.ShippingAddress
	failWith  error
}

func (m *mockShippingAddressRepository) Create(ctx context.Context, address *domain.ShippingAddress) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.addresses = append(m.addresses, address)
	return nil
}

func (m *mockShippingAddressRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*domain.ShippingAddress, error) {
	var addresses []*domain.ShippingAddress
	for _, a := range m.addresses {
		if a.OrderID == orderID {
			addresses = append(addresses, a)
		}
	}
	return addresses, nil
}

func (m *mockShippingAddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return errNotImplemented
}

// mockStore discards the writes of a failed WithTx call
type mockStore struct {
	users     *mockUserRepository
	products  *mockProductRepository
	carts     *mockCartRepository
	orders    *mockOrderRepository
	payments  *mockPaymentRepository
	addresses *mockShippingAddressRepository
}

func newMockStore() *mockStore {
	return &mockStore{
		users:     newMockUserRepository(),
		products:  &mockProductRepository{products: make(map[uuid.UUID]*domain.Product)},
		carts:     &mockCartRepository{carts: make(map[uuid.UUID]*domain.Cart)},
		orders:    &mockOrderRepository{orders: make(map[uuid.UUID]*domain.Order)},
		payments:  &mockPaymentRepository{},
		addresses: &mockShippingAddressRepository{},
	}
}

func (m *mockStore) Users() repository.UserRepository {
	return m.users
}

func (m *mockStore) Products() repository.ProductRepository {
	return m.products
}

func (m *mockStore) Carts() repository.CartRepository {
	return m.carts
}

func (m *mockStore) Orders() repository.OrderRepository {
	return m.orders
}

func (m *mockStore) Payments() repository.PaymentRepository {
	return m.payments
}

func (m *mockStore) ShippingAddresses() repository.ShippingAddressRepository {
	return m.addresses
}

func (m *mockStore) WithTx(ctx context.Context, fn func(repository.Store) error) error {
	orders := make(map[uuid.UUID]*domain.Order, len(m.orders.orders))
	for id, order := range m.orders.orders {
		orders[id] = order
	}
	items := make(map[uuid.UUID][]*domain.CartItem, len(m.carts.carts))
	for userID, cart := range m.carts.carts {
		items[userID] = cart.Items
	}
	addresses := m.addresses.addresses

	if err := fn(m); err != nil {
		m.orders.orders = orders
		for userID, cart := range m.carts.carts {
			cart.Items = items[userID]
		}
		m.addresses.addresses = addresses
		return err
	}
	return nil
}

// seedCart creates a product per price and a cart holding each product with the given quantity
func seedCart(store *mockStore, userID uuid.UUID, prices []int64, quantities []int) *domain.Cart {
	cart := &domain.Cart{ID: uuid.New(), UserID: userID}
	store.carts.carts[userID] = cart

	for i, cents := range prices {
		product := &domain.Product{
			ID:          uuid.New(),
			Name:        "Product",
			Description: "Generated",
			Price:       centsToDecimal(cents),
			Stock:       10,
			CategoryID:  uuid.New(),
		}
		store.products.products[product.ID] = product
		cart.Items = append(cart.Items, &domain.CartItem{
			ID:        uuid.New(),
			CartID:    cart.ID,
			ProductID: product.ID,
			Quantity:  quantities[i],
		})
	}
	return cart
}
