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
	ErrBlogPostNotFound = errors.New("blog post not found")
)

// BlogPostRepository defines the interface for blog post data access
type BlogPostRepository interface {
	Create(ctx context.Context, post *domain.BlogPost) error
	Update(ctx context.Context, post *domain.BlogPost) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.BlogPost, error)
	List(ctx context.Context, page, pageSize int) ([]*domain.BlogPost, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type blogPostRepository struct {
	db DBTX
}

func NewBlogPostRepository(db DBTX) BlogPostRepository {
	return &blogPostRepository{db: db}
}

const blogPostColumns = `id, title, content, author_id, created_at, updated_at`

func scanBlogPost(row rowScanner) (*domain.BlogPost, error) {
	post := &domain.BlogPost{}
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.AuthorID,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	return post, err
}

func (r *blogPostRepository) Create(ctx context.Context, post *domain.BlogPost) error {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	now := time.Now()
	post.CreatedAt, post.UpdatedAt = now, now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO blog_posts (`+blogPostColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		post.ID,
		post.Title,
		post.Content,
		post.AuthorID,
		post.CreatedAt,
		post.UpdatedAt,
	)
	if err != nil {
		return translateError(err, "create blog post", nil)
	}

	return nil
}

func (r *blogPostRepository) Update(ctx context.Context, post *domain.BlogPost) error {
	post.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx,
		`UPDATE blog_posts SET title = $2, content = $3, updated_at = $4 WHERE id = $1`,
		post.ID, post.Title, post.Content, post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update blog post: %w", err)
	}

	return expectOneRow(result, ErrBlogPostNotFound)
}

func (r *blogPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.BlogPost, error) {
	post, err := scanBlogPost(r.db.QueryRowContext(ctx,
		`SELECT `+blogPostColumns+` FROM blog_posts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBlogPostNotFound
		}
		return nil, fmt.Errorf("failed to find blog post by ID: %w", err)
	}

	return post, nil
}

// List returns a page of posts, newest first, and the total count
func (r *blogPostRepository) List(ctx context.Context, page, pageSize int) ([]*domain.BlogPost, int, error) {
	page, pageSize = normalizePage(page, pageSize)

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blog_posts`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count blog posts: %w", err)
	}

	query := `
		SELECT ` + blogPostColumns + `
		FROM blog_posts
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list blog posts: %w", err)
	}
	defer rows.Close()

	posts := []*domain.BlogPost{}
	for rows.Next() {
		post, err := scanBlogPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan blog post: %w", err)
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating blog posts: %w", err)
	}

	return posts, total, nil
}

func (r *blogPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}

	return expectOneRow(result, ErrBlogPostNotFound)
}
