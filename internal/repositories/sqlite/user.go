package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"

	"leadportal-api/internal/models"
	"leadportal-api/internal/repositories"
)

// UserRepository is the SQLite implementation of repositories.UserRepository
type UserRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

// NewUserRepository creates a new SQLite user repository
func NewUserRepository(db *sql.DB, logger *logrus.Logger) *UserRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

const userColumns = `id, email, first_name, last_name, phone, location_id, api_key, agency_name, role, is_active, created_at, updated_at`

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("user validation failed: %w", err)
	}

	query := `INSERT INTO users (` + userColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.FirstName, user.LastName, user.Phone,
		user.LocationID, user.APIKey, user.AgencyName, user.Role,
		user.IsActive, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return repositories.NewRepositoryError("create", "user", user.ID, err)
	}

	r.logger.WithField("user_id", user.ID).Debug("User created")
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if id == "" {
		return nil, repositories.ErrInvalidID
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id), "get_by_id", id)
}

// GetByEmail retrieves a user by email address
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email), "get_by_email", email)
}

// GetRole retrieves only the role of the user with the given ID
func (r *UserRepository) GetRole(ctx context.Context, id string) (models.UserRole, error) {
	if id == "" {
		return "", repositories.ErrInvalidID
	}

	var role models.UserRole
	err := r.db.QueryRowContext(ctx, `SELECT role FROM users WHERE id = ?`, id).Scan(&role)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", repositories.ErrNotFound
		}
		return "", repositories.NewRepositoryError("get_role", "user", id, err)
	}

	return role, nil
}

func (r *UserRepository) scanUser(row *sql.Row, op, id string) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.Phone,
		&user.LocationID, &user.APIKey, &user.AgencyName, &user.Role,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repositories.ErrNotFound
		}
		return nil, repositories.NewRepositoryError(op, "user", id, err)
	}
	return &user, nil
}
