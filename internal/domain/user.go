package domain

import (
	"time"

	"github.com/google/uuid"
)

// Roles a user account can hold
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the account every user-owned row references
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username" validate:"required,max=150"`
	Email        string    `json:"email" db:"email" validate:"omitempty,email,max=254"`
	PasswordHash string    `json:"-" db:"password_hash" validate:"required"`
	FirstName    string    `json:"first_name" db:"first_name" validate:"max=150"`
	LastName     string    `json:"last_name" db:"last_name" validate:"max=150"`
	Role         string    `json:"role" db:"role" validate:"oneof=user admin"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

func (u *User) Validate() error {
	return validateStruct(u)
}

func (u *User) String() string {
	return u.Username
}

// UserProfile extends a User with contact details, at most one per user
type UserProfile struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	UserID      uuid.UUID  `json:"user_id" db:"user_id" validate:"required"`
	Address     string     `json:"address" db:"address" validate:"required"`
	PhoneNumber string     `json:"phone_number" db:"phone_number" validate:"required,max=15"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty" db:"date_of_birth"`
}

func (p *UserProfile) Validate() error {
	return validateStruct(p)
}
