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
	ErrProductReviewNotFound = errors.New("product review not found")
)

// ProductReviewRepository defines the interface for product review data access
type ProductReviewRepository interface {
	Create(ctx context.Context, review *domain.ProductReview) error
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*domain.ProductReview, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productReviewRepository struct {
	db DBTX
}

func NewProductReviewRepository(db DBTX) ProductReviewRepository {
	return &productReviewRepository{db: db}
}

// Create inserts a review. Several reviews by the same user for the same product are allowed.
func (r *productReviewRepository) Create(ctx context.Context, review *domain.ProductReview) error {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	review.CreatedAt = time.Now()

	query := `
		INSERT INTO product_reviews (id, product_id, user_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		review.ID,
		review.ProductID,
		review.UserID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	)
	if err != nil {
		return translateError(err, "create product review", nil)
	}

	return nil
}

// ListByProduct returns the newest reviews first
func (r *productReviewRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*domain.ProductReview, error) {
	query := `
		SELECT id, product_id, user_id, rating, comment, created_at
		FROM product_reviews
		WHERE product_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list product reviews: %w", err)
	}
	defer rows.Close()

	reviews := []*domain.ProductReview{}
	for rows.Next() {
		review := &domain.ProductReview{}
		err := rows.Scan(
			&review.ID,
			&review.ProductID,
			&review.UserID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product review: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product reviews: %w", err)
	}

	return reviews, nil
}

func (r *productReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM product_reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product review: %w", err)
	}

	return expectOneRow(result, ErrProductReviewNotFound)
}
