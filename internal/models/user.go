package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UserRole represents the role assigned to a user
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// User represents a platform user in the records store
type User struct {
	ID         string    `json:"id" db:"id" validate:"required"`
	Email      string    `json:"email" db:"email" validate:"required,email"`
	FirstName  *string   `json:"first_name,omitempty" db:"first_name"`
	LastName   *string   `json:"last_name,omitempty" db:"last_name"`
	Phone      *string   `json:"phone,omitempty" db:"phone"`
	LocationID *string   `json:"location_id,omitempty" db:"location_id"`
	APIKey     *string   `json:"api_key,omitempty" db:"api_key"`
	AgencyName *string   `json:"agency_name,omitempty" db:"agency_name"`
	Role       UserRole  `json:"role" db:"role" validate:"required,oneof=admin user"`
	IsActive   bool      `json:"is_active" db:"is_active"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// NewUser creates a new user with generated ID and timestamps
func NewUser(email string, role UserRole) *User {
	now := time.Now().UTC()
	return &User{
		ID:        uuid.New().String(),
		Email:     email,
		Role:      role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsAdmin reports whether the user holds the administrative role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Validate validates the user data
func (u *User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("user ID is required")
	}
	if u.Email == "" {
		return fmt.Errorf("user email is required")
	}
	if u.Role != RoleAdmin && u.Role != RoleUser {
		return fmt.Errorf("invalid user role: %s", u.Role)
	}
	return nil
}
