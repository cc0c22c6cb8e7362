package repositories

import (
	"context"

	"leadportal-api/internal/models"
)

// UserRepository defines operations on platform users
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// GetByID retrieves a user by ID; returns ErrNotFound when missing
	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByEmail retrieves a user by email address
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetRole retrieves only the role of the user with the given ID
	GetRole(ctx context.Context, id string) (models.UserRole, error)
}

// AdminSettingRepository defines operations on admin-owned settings
type AdminSettingRepository interface {
	// Get retrieves a setting by its logical key
	Get(ctx context.Context, key string) (*models.AdminSetting, error)

	// Put creates or replaces a setting
	Put(ctx context.Context, setting *models.AdminSetting) error
}

// OrderRepository defines operations on submitted orders
type OrderRepository interface {
	// Create inserts a new order. Orders are never updated or deleted here.
	Create(ctx context.Context, order *models.Order) error

	// GetByID retrieves an order by ID
	GetByID(ctx context.Context, id string) (*models.Order, error)

	// ListByPaymentIntent retrieves all orders recorded against a payment
	// intent. More than one is possible: submissions are not deduplicated.
	ListByPaymentIntent(ctx context.Context, paymentIntentID string) ([]*models.Order, error)

	// ListByUser retrieves all orders of a user, newest first
	ListByUser(ctx context.Context, userID string) ([]*models.Order, error)
}

// RepositoryContainer bundles all repositories for dependency injection
type RepositoryContainer struct {
	UserRepo         UserRepository
	AdminSettingRepo AdminSettingRepository
	OrderRepo        OrderRepository
}
