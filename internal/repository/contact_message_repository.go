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
	ErrContactMessageNotFound = errors.New("contact message not found")
)

// ContactMessageRepository defines the interface for contact message data access
type ContactMessageRepository interface {
	Create(ctx context.Context, message *domain.ContactMessage) error
	List(ctx context.Context) ([]*domain.ContactMessage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type contactMessageRepository struct {
	db DBTX
}

func NewContactMessageRepository(db DBTX) ContactMessageRepository {
	return &contactMessageRepository{db: db}
}

func (r *contactMessageRepository) Create(ctx context.Context, message *domain.ContactMessage) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	message.CreatedAt = time.Now()

	query := `
		INSERT INTO contact_messages (id, name, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		message.ID,
		message.Name,
		message.Email,
		message.Subject,
		message.Message,
		message.CreatedAt,
	)
	if err != nil {
		return translateError(err, "create contact message", nil)
	}

	return nil
}

// List returns every message, newest first
func (r *contactMessageRepository) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	query := `
		SELECT id, name, email, subject, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	messages := []*domain.ContactMessage{}
	for rows.Next() {
		m := &domain.ContactMessage{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		messages = append(messages, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact messages: %w", err)
	}

	return messages, nil
}

func (r *contactMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact message: %w", err)
	}

	return expectOneRow(result, ErrContactMessageNotFound)
}
