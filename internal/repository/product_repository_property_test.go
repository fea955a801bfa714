package repository

import (
	"context"
	"errors"
	"testing"

	"shopifyte/internal/domain"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Feature: storefront-schema, Property 7: Product creation preserves attributes
func TestProperty_ProductCreationPreservesAttributes(t *testing.T) {
	productRepo := NewProductRepository(testDB)
	categoryRepo := NewCategoryRepository(testDB)

	properties := gopter.NewProperties(nil)

	properties.Property("creating and retrieving a product preserves all attributes", prop.ForAll(
		func(name string, description string, cents int64, stock int) bool {
			ctx := context.Background()

			category := &domain.Category{Name: "Test Category", Description: "Test category description"}
			if err := categoryRepo.Create(ctx, category); err != nil {
				t.Logf("FAIL: Failed to create category: %v", err)
				return false
			}

			product := &domain.Product{
				Name:        name,
				Description: description,
				Price:       decimal.New(cents, -2),
				CategoryID:  category.ID,
				Stock:       stock,
			}
			if err := product.Validate(); err != nil {
				t.Logf("FAIL: Generated product is invalid: %v", err)
				return false
			}

			if err := productRepo.Create(ctx, product); err != nil {
				t.Logf("FAIL: Failed to create product: %v", err)
				return false
			}

			retrieved, err := productRepo.FindByID(ctx, product.ID)
			if err != nil {
				t.Logf("FAIL: Failed to retrieve product: %v", err)
				return false
			}

			if retrieved.Name != name || retrieved.Description != description {
				t.Logf("FAIL: Text attributes changed: %+v", retrieved)
				return false
			}

			if !retrieved.Price.Equal(product.Price) {
				t.Logf("FAIL: Price mismatch. Expected %s, got %s", product.Price, retrieved.Price)
				return false
			}

			if retrieved.Stock != stock || retrieved.CategoryID != category.ID {
				t.Logf("FAIL: Stock or category mismatch: %+v", retrieved)
				return false
			}

			_ = categoryRepo.Delete(ctx, category.ID)

			return true
		},
		gen.RegexMatch(`[A-Za-z0-9 ]{3,50}`),
		gen.RegexMatch(`[A-Za-z0-9 .,!?]{10,200}`),
		gen.Int64Range(0, 9999999999),
		gen.IntRange(0, 1000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Feature: storefront-schema, Property 8: Product updates are reflected
func TestProperty_ProductUpdatesAreReflected(t *testing.T) {
	productRepo := NewProductRepository(testDB)
	categoryRepo := NewCategoryRepository(testDB)

	properties := gopter.NewProperties(nil)

	properties.Property("updating a product and retrieving it shows the updated values", prop.ForAll(
		func(name1 string, name2 string, cents1 int64, cents2 int64, stock1 int, stock2 int) bool {
			ctx := context.Background()

			category := &domain.Category{Name: "Test Category"}
			if err := categoryRepo.Create(ctx, category); err != nil {
				t.Logf("FAIL: Failed to create category: %v", err)
				return false
			}

			product := &domain.Product{
				Name:        name1,
				Description: "Initial description",
				Price:       decimal.New(cents1, -2),
				CategoryID:  category.ID,
				Stock:       stock1,
			}
			if err := productRepo.Create(ctx, product); err != nil {
				t.Logf("FAIL: Failed to create product: %v", err)
				return false
			}

			product.Name = name2
			product.Price = decimal.New(cents2, -2)
			product.Stock = stock2

			if err := productRepo.Update(ctx, product); err != nil {
				t.Logf("FAIL: Failed to update product: %v", err)
				return false
			}

			retrieved, err := productRepo.FindByID(ctx, product.ID)
			if err != nil {
				t.Logf("FAIL: Failed to retrieve product: %v", err)
				return false
			}

			if retrieved.Name != name2 {
				t.Logf("FAIL: Name not updated. Expected %s, got %s", name2, retrieved.Name)
				return false
			}

			if !retrieved.Price.Equal(decimal.New(cents2, -2)) {
				t.Logf("FAIL: Price not updated. Expected %s, got %s", decimal.New(cents2, -2), retrieved.Price)
				return false
			}

			if retrieved.Stock != stock2 {
				t.Logf("FAIL: Stock not updated. Expected %d, got %d", stock2, retrieved.Stock)
				return false
			}

			_ = categoryRepo.Delete(ctx, category.ID)

			return true
		},
		gen.RegexMatch(`[A-Za-z0-9 ]{3,50}`),
		gen.RegexMatch(`[A-Za-z0-9 ]{3,50}`),
		gen.Int64Range(1, 999999),
		gen.Int64Range(1, 999999),
		gen.IntRange(0, 1000),
		gen.IntRange(0, 1000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Feature: storefront-schema, Property 9: Deleting a category removes its products, images and reviews
func TestProperty_CategoryDeletionCascades(t *testing.T) {
	productRepo := NewProductRepository(testDB)
	categoryRepo := NewCategoryRepository(testDB)
	imageRepo := NewProductImageRepository(testDB)
	reviewRepo := NewProductReviewRepository(testDB)
	user := createTestUser(t)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20
	properties := gopter.NewProperties(parameters)

	properties.Property("no product, image or review of a deleted category survives", prop.ForAll(
		func(productCount int, imagesPerProduct int) bool {
			ctx := context.Background()

			category := &domain.Category{Name: "Cascade"}
			if err := categoryRepo.Create(ctx, category); err != nil {
				return false
			}

			var productIDs []uuid.UUID
			for i := 0; i < productCount; i++ {
				product := &domain.Product{Name: "P", Description: "D", Price: decimal.NewFromInt(1), CategoryID: category.ID}
				if err := productRepo.Create(ctx, product); err != nil {
					return false
				}
				productIDs = append(productIDs, product.ID)

				for j := 0; j < imagesPerProduct; j++ {
					if err := imageRepo.Create(ctx, &domain.ProductImage{ProductID: product.ID, Image: domain.ProductImageDir + "p.png"}); err != nil {
						return false
					}
				}
				if err := reviewRepo.Create(ctx, &domain.ProductReview{ProductID: product.ID, UserID: user.ID, Rating: 4, Comment: "ok"}); err != nil {
					return false
				}
			}

			if err := categoryRepo.Delete(ctx, category.ID); err != nil {
				t.Logf("FAIL: Failed to delete category: %v", err)
				return false
			}

			for _, id := range productIDs {
				if _, err := productRepo.FindByID(ctx, id); !errors.Is(err, ErrProductNotFound) {
					return false
				}
				images, err := imageRepo.ListByProduct(ctx, id)
				if err != nil || len(images) != 0 {
					return false
				}
				reviews, err := reviewRepo.ListByProduct(ctx, id)
				if err != nil || len(reviews) != 0 {
					return false
				}
			}

			return true
		},
		gen.IntRange(1, 4),
		gen.IntRange(0, 3),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestProductListFiltersAndPaginates(t *testing.T) {
	productRepo := NewProductRepository(testDB)
	ctx := context.Background()

	category := createTestCategory(t)
	other := createTestCategory(t)
	for _, price := range []string{"3.00", "1.00", "2.00"} {
		createTestProduct(t, category.ID, price)
	}
	createTestProduct(t, other.ID, "9.99")

	products, total, err := productRepo.List(ctx, &category.ID, 1, 2, "price", SortOrderAsc)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, products, 2)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("1.00")))
	assert.True(t, products[1].Price.Equal(decimal.RequireFromString("2.00")))

	products, _, err = productRepo.List(ctx, &category.ID, 2, 2, "price", SortOrderAsc)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("3.00")))

	// unknown sort fields fall back to created_at
	_, total, err = productRepo.List(ctx, &other.ID, 1, 10, "price; DROP TABLE products", SortOrderAsc)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestProductSearchMatchesNameAndDescription(t *testing.T) {
	productRepo := NewProductRepository(testDB)
	ctx := context.Background()
	category := createTestCategory(t)

	marker := uuid.NewString()[:8]
	require.NoError(t, productRepo.Create(ctx, &domain.Product{
		Name: "Lamp " + marker, Description: "Desk lamp", Price: decimal.NewFromInt(20), CategoryID: category.ID,
	}))
	require.NoError(t, productRepo.Create(ctx, &domain.Product{
		Name: "Shade", Description: "Fits lamp " + marker, Price: decimal.NewFromInt(5), CategoryID: category.ID,
	}))

	products, total, err := productRepo.Search(ctx, marker, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, products, 2)
}

func TestProductRequiresExistingCategory(t *testing.T) {
	err := NewProductRepository(testDB).Create(context.Background(), &domain.Product{
		Name: "Orphan", Description: "No category", Price: decimal.NewFromInt(1), CategoryID: uuid.New(),
	})
	assert.ErrorIs(t, err, ErrReferencedRowNotFound)
}
