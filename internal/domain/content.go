package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BannerImageDir is the asset prefix banner images are stored under
const BannerImageDir = "banners/"

// Notification is a message for a user, unread until marked
type Notification struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id" validate:"required"`
	Message   string    `json:"message" db:"message" validate:"required"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Read      bool      `json:"read" db:"read"`
}

func (n *Notification) Validate() error {
	return validateStruct(n)
}

func (n *Notification) String() string {
	return fmt.Sprintf("%s - %s", n.UserID, n.Message)
}

// Banner is a promotional image, optionally linking somewhere
type Banner struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Image     string    `json:"image" db:"image" validate:"required,max=255"`
	Link      string    `json:"link" db:"link" validate:"omitempty,url,max=200"`
	Active    bool      `json:"active" db:"active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// NewBanner builds a banner; a nil active flag means active
func NewBanner(image, link string, active *bool) *Banner {
	b := &Banner{
		ID:     uuid.New(),
		Image:  image,
		Link:   link,
		Active: true,
	}
	if active != nil {
		b.Active = *active
	}
	return b
}

func (b *Banner) Validate() error {
	return validateStruct(b)
}

func (b *Banner) String() string {
	return fmt.Sprintf("Banner %s", b.ID)
}

// BlogPost is authored by a user
type BlogPost struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title" validate:"required,max=200"`
	Content   string    `json:"content" db:"content" validate:"required"`
	AuthorID  uuid.UUID `json:"author_id" db:"author_id" validate:"required"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func (p *BlogPost) Validate() error {
	return validateStruct(p)
}

func (p *BlogPost) String() string {
	return p.Title
}

// ContactMessage is submitted by anyone; it is not tied to a user
type ContactMessage struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" validate:"required,max=100"`
	Email     string    `json:"email" db:"email" validate:"required,email,max=254"`
	Subject   string    `json:"subject" db:"subject" validate:"required,max=200"`
	Message   string    `json:"message" db:"message" validate:"required"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (m *ContactMessage) Validate() error {
	return validateStruct(m)
}

func (m *ContactMessage) String() string {
	return m.Subject
}
