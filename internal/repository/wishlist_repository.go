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
	ErrWishlistNotFound      = errors.New("wishlist not found")
	ErrWishlistAlreadyExists = errors.New("user already has a wishlist")
)

// WishlistRepository defines the interface for wishlist data access.
// Wishlist products live in the wishlist_products junction table.
type WishlistRepository interface {
	Create(ctx context.Context, wishlist *domain.Wishlist) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wishlist, error)
	AddProduct(ctx context.Context, wishlistID, productID uuid.UUID) error
	RemoveProduct(ctx context.Context, wishlistID, productID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type wishlistRepository struct {
	db DBTX
}

func NewWishlistRepository(db DBTX) WishlistRepository {
	return &wishlistRepository{db: db}
}

// Create inserts the user's wishlist and its products atomically; a user holds at most one
func (r *wishlistRepository) Create(ctx context.Context, wishlist *domain.Wishlist) error {
	if wishlist.ID == uuid.Nil {
		wishlist.ID = uuid.New()
	}

	return withinTx(ctx, r.db, func(db DBTX) error {
		_, err := db.ExecContext(ctx,
			`INSERT INTO wishlists (id, user_id) VALUES ($1, $2)`,
			wishlist.ID, wishlist.UserID,
		)
		if err != nil {
			return translateError(err, "create wishlist", ErrWishlistAlreadyExists)
		}

		products := &wishlistRepository{db: db}
		for _, productID := range wishlist.ProductIDs {
			if err := products.AddProduct(ctx, wishlist.ID, productID); err != nil {
				return err
			}
		}

		return nil
	})
}

// FindByUserID retrieves the user's wishlist with its product ids
func (r *wishlistRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wishlist, error) {
	wishlist := &domain.Wishlist{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id FROM wishlists WHERE user_id = $1`,
		userID,
	).Scan(&wishlist.ID, &wishlist.UserID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWishlistNotFound
		}
		return nil, fmt.Errorf("failed to find wishlist by user ID: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT product_id FROM wishlist_products WHERE wishlist_id = $1 ORDER BY product_id`,
		wishlist.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist products: %w", err)
	}
	defer rows.Close()

	wishlist.ProductIDs = []uuid.UUID{}
	for rows.Next() {
		var productID uuid.UUID
		if err := rows.Scan(&productID); err != nil {
			return nil, fmt.Errorf("failed to scan wishlist product: %w", err)
		}
		wishlist.ProductIDs = append(wishlist.ProductIDs, productID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wishlist products: %w", err)
	}

	return wishlist, nil
}

// AddProduct links a product; adding a product already on the wishlist is a no-op
func (r *wishlistRepository) AddProduct(ctx context.Context, wishlistID, productID uuid.UUID) error {
	query := `
		INSERT INTO wishlist_products (wishlist_id, product_id)
		VALUES ($1, $2)
		ON CONFLICT (wishlist_id, product_id) DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query, wishlistID, productID); err != nil {
		return translateError(err, "add wishlist product", nil)
	}

	return nil
}

// RemoveProduct unlinks a product; removing an absent product is a no-op
func (r *wishlistRepository) RemoveProduct(ctx context.Context, wishlistID, productID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM wishlist_products WHERE wishlist_id = $1 AND product_id = $2`,
		wishlistID, productID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove wishlist product: %w", err)
	}

	return nil
}

func (r *wishlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM wishlists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete wishlist: %w", err)
	}

	return expectOneRow(result, ErrWishlistNotFound)
}
