package repository

import (
	"context"
	"errors"
	"fmt"

	"shopifyte/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrProductImageNotFound = errors.New("product image not found")
)

// ProductImageRepository defines the interface for product image data access
type ProductImageRepository interface {
	Create(ctx context.Context, image *domain.ProductImage) error
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*domain.ProductImage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productImageRepository struct {
	db DBTX
}

func NewProductImageRepository(db DBTX) ProductImageRepository {
	return &productImageRepository{db: db}
}

// Create stores the image asset reference; the asset itself lives in external storage
func (r *productImageRepository) Create(ctx context.Context, image *domain.ProductImage) error {
	if image.ID == uuid.Nil {
		image.ID = uuid.New()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO product_images (id, product_id, image) VALUES ($1, $2, $3)`,
		image.ID, image.ProductID, image.Image,
	)
	if err != nil {
		return translateError(err, "create product image", nil)
	}

	return nil
}

func (r *productImageRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*domain.ProductImage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, product_id, image FROM product_images WHERE product_id = $1 ORDER BY image`,
		productID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list product images: %w", err)
	}
	defer rows.Close()

	images := []*domain.ProductImage{}
	for rows.Next() {
		image := &domain.ProductImage{}
		if err := rows.Scan(&image.ID, &image.ProductID, &image.Image); err != nil {
			return nil, fmt.Errorf("failed to scan product image: %w", err)
		}
		images = append(images, image)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product images: %w", err)
	}

	return images, nil
}

func (r *productImageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM product_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product image: %w", err)
	}

	return expectOneRow(result, ErrProductImageNotFound)
}
