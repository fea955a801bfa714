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
	ErrBannerNotFound = errors.New("banner not found")
)

// BannerRepository defines the interface for banner data access
type BannerRepository interface {
	Create(ctx context.Context, banner *domain.Banner) error
	Update(ctx context.Context, banner *domain.Banner) error
	ListActive(ctx context.Context) ([]*domain.Banner, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bannerRepository struct {
	db DBTX
}

func NewBannerRepository(db DBTX) BannerRepository {
	return &bannerRepository{db: db}
}

// Create stores the banner as given; use domain.NewBanner for the active default
func (r *bannerRepository) Create(ctx context.Context, banner *domain.Banner) error {
	if banner.ID == uuid.Nil {
		banner.ID = uuid.New()
	}
	now := time.Now()
	banner.CreatedAt, banner.UpdatedAt = now, now

	query := `
		INSERT INTO banners (id, image, link, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		banner.ID,
		banner.Image,
		banner.Link,
		banner.Active,
		banner.CreatedAt,
		banner.UpdatedAt,
	)
	if err != nil {
		return translateError(err, "create banner", nil)
	}

	return nil
}

func (r *bannerRepository) Update(ctx context.Context, banner *domain.Banner) error {
	banner.UpdatedAt = time.Now()

	query := `
		UPDATE banners
		SET image = $2, link = $3, active = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		banner.ID,
		banner.Image,
		banner.Link,
		banner.Active,
		banner.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update banner: %w", err)
	}

	return expectOneRow(result, ErrBannerNotFound)
}

// ListActive returns active banners, most recently created first
func (r *bannerRepository) ListActive(ctx context.Context) ([]*domain.Banner, error) {
	query := `
		SELECT id, image, link, active, created_at, updated_at
		FROM banners
		WHERE active = TRUE
		ORDER BY created_at DESC, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}
	defer rows.Close()

	banners := []*domain.Banner{}
	for rows.Next() {
		b := &domain.Banner{}
		if err := rows.Scan(&b.ID, &b.Image, &b.Link, &b.Active, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan banner: %w", err)
		}
		banners = append(banners, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating banners: %w", err)
	}

	return banners, nil
}

func (r *bannerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete banner: %w", err)
	}

	return expectOneRow(result, ErrBannerNotFound)
}
