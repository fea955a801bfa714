package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"shopifyte/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrCartNotFound      = errors.New("cart not found")
	ErrCartAlreadyExists = errors.New("user already has a cart")
	ErrCartItemNotFound  = errors.New("cart item not found")
)

// CartRepository defines the interface for cart and cart item data access
type CartRepository interface {
	Create(ctx context.Context, cart *domain.Cart) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Cart, error)
	LockByUserID(ctx context.Context, userID uuid.UUID) (*domain.Cart, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddItem(ctx context.Context, item *domain.CartItem) error
	UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error
	RemoveItem(ctx context.Context, itemID uuid.UUID) error
	ListItems(ctx context.Context, cartID uuid.UUID) ([]*domain.CartItem, error)
	Clear(ctx context.Context, cartID uuid.UUID) error
}

type cartRepository struct {
	db DBTX
}

// NewCartRepository creates a new instance of CartRepository
func NewCartRepository(db DBTX) CartRepository {
	return &cartRepository{db: db}
}

// Create inserts the user's cart; a user holds at most one
func (r *cartRepository) Create(ctx context.Context, cart *domain.Cart) error {
	if cart.ID == uuid.Nil {
		cart.ID = uuid.New()
	}
	cart.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO carts (id, user_id, created_at) VALUES ($1, $2, $3)`,
		cart.ID, cart.UserID, cart.CreatedAt,
	)
	if err != nil {
		return translateError(err, "create cart", ErrCartAlreadyExists)
	}

	return nil
}

// FindByUserID retrieves the user's cart with its items
func (r *cartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Cart, error) {
	return r.findByUserID(ctx, `SELECT id, user_id, created_at FROM carts WHERE user_id = $1`, userID)
}

// LockByUserID retrieves the user's cart and holds its row lock until the
// surrounding transaction ends. Outside a transaction the lock is released at once.
func (r *cartRepository) LockByUserID(ctx context.Context, userID uuid.UUID) (*domain.Cart, error) {
	return r.findByUserID(ctx, `SELECT id, user_id, created_at FROM carts WHERE user_id = $1 FOR UPDATE`, userID)
}

func (r *cartRepository) findByUserID(ctx context.Context, query string, userID uuid.UUID) (*domain.Cart, error) {
	cart := &domain.Cart{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&cart.ID, &cart.UserID, &cart.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to find cart by user ID: %w", err)
	}

	cart.Items, err = r.ListItems(ctx, cart.ID)
	if err != nil {
		return nil, err
	}

	return cart, nil
}

// Delete removes a cart and its items
func (r *cartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM carts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}

	return expectOneRow(result, ErrCartNotFound)
}

// AddItem inserts a line; an unspecified quantity becomes 1
func (r *cartRepository) AddItem(ctx context.Context, item *domain.CartItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	item.ApplyDefaults()
	item.CreatedAt = time.Now()

	query := `
		INSERT INTO cart_items (id, cart_id, product_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.CartID,
		item.ProductID,
		item.Quantity,
		item.CreatedAt,
	)
	if err != nil {
		return translateError(err, "add cart item", nil)
	}

	return nil
}

// UpdateItemQuantity sets a line's quantity; negative values violate the schema
func (r *cartRepository) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE cart_items SET quantity = $2 WHERE id = $1`,
		itemID, quantity,
	)
	if err != nil {
		return translateError(err, "update cart item", nil)
	}

	return expectOneRow(result, ErrCartItemNotFound)
}

func (r *cartRepository) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}

	return expectOneRow(result, ErrCartItemNotFound)
}

// ListItems returns the cart's lines in the order they were added
func (r *cartRepository) ListItems(ctx context.Context, cartID uuid.UUID) ([]*domain.CartItem, error) {
	query := `
		SELECT id, cart_id, product_id, quantity, created_at
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	defer rows.Close()

	items := []*domain.CartItem{}
	for rows.Next() {
		item := &domain.CartItem{}
		err := rows.Scan(
			&item.ID,
			&item.CartID,
			&item.ProductID,
			&item.Quantity,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cart items: %w", err)
	}

	return items, nil
}

// Clear empties the cart but keeps the cart row
func (r *cartRepository) Clear(ctx context.Context, cartID uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
