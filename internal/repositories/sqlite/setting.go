package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"

	"leadportal-api/internal/models"
	"leadportal-api/internal/repositories"
)

// AdminSettingRepository is the SQLite implementation of
// repositories.AdminSettingRepository
type AdminSettingRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

// NewAdminSettingRepository creates a new SQLite admin setting repository
func NewAdminSettingRepository(db *sql.DB, logger *logrus.Logger) *AdminSettingRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &AdminSettingRepository{
		db:     db,
		logger: logger,
	}
}

// Get retrieves a setting by its logical key
func (r *AdminSettingRepository) Get(ctx context.Context, key string) (*models.AdminSetting, error) {
	if key == "" {
		return nil, repositories.ErrInvalidID
	}

	var setting models.AdminSetting
	query := `SELECT key, pit_token, updated_at FROM admin_settings WHERE key = ?`
	err := r.db.QueryRowContext(ctx, query, key).Scan(&setting.Key, &setting.PITToken, &setting.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repositories.ErrNotFound
		}
		return nil, repositories.NewRepositoryError("get", "admin_setting", key, err)
	}

	return &setting, nil
}

// Put creates or replaces a setting
func (r *AdminSettingRepository) Put(ctx context.Context, setting *models.AdminSetting) error {
	if setting.Key == "" {
		return repositories.ErrInvalidID
	}

	setting.UpdatedAt = time.Now().UTC()
	query := `INSERT INTO admin_settings (key, pit_token, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET pit_token = excluded.pit_token, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, setting.Key, setting.PITToken, setting.UpdatedAt); err != nil {
		return repositories.NewRepositoryError("put", "admin_setting", setting.Key, err)
	}

	r.logger.WithField("setting_key", setting.Key).Debug("Admin setting stored")
	return nil
}
