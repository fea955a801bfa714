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
	ErrUserProfileNotFound      = errors.New("user profile not found")
	ErrUserProfileAlreadyExists = errors.New("user already has a profile")
)

// UserProfileRepository defines the interface for user profile data access
type UserProfileRepository interface {
	Create(ctx context.Context, profile *domain.UserProfile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
	Update(ctx context.Context, profile *domain.UserProfile) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type userProfileRepository struct {
	db DBTX
}

func NewUserProfileRepository(db DBTX) UserProfileRepository {
	return &userProfileRepository{db: db}
}

// Create inserts the user's profile; a user holds at most one
func (r *userProfileRepository) Create(ctx context.Context, profile *domain.UserProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}

	query := `
		INSERT INTO user_profiles (id, user_id, address, phone_number, date_of_birth)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		profile.ID,
		profile.UserID,
		profile.Address,
		profile.PhoneNumber,
		profile.DateOfBirth,
	)
	if err != nil {
		return translateError(err, "create user profile", ErrUserProfileAlreadyExists)
	}

	return nil
}

func (r *userProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	query := `
		SELECT id, user_id, address, phone_number, date_of_birth
		FROM user_profiles
		WHERE user_id = $1
	`

	profile := &domain.UserProfile{}
	var dob sql.NullTime
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Address,
		&profile.PhoneNumber,
		&dob,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserProfileNotFound
		}
		return nil, fmt.Errorf("failed to find user profile: %w", err)
	}

	if dob.Valid {
		profile.DateOfBirth = &dob.Time
	}

	return profile, nil
}

func (r *userProfileRepository) Update(ctx context.Context, profile *domain.UserProfile) error {
	query := `
		UPDATE user_profiles
		SET address = $2, phone_number = $3, date_of_birth = $4
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		profile.ID,
		profile.Address,
		profile.PhoneNumber,
		profile.DateOfBirth,
	)
	if err != nil {
		return fmt.Errorf("failed to update user profile: %w", err)
	}

	return expectOneRow(result, ErrUserProfileNotFound)
}

func (r *userProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM user_profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user profile: %w", err)
	}

	return expectOneRow(result, ErrUserProfileNotFound)
}
