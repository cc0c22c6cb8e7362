package sqlite

import (
	"database/sql"

	"github.com/sirupsen/logrus"

	"leadportal-api/internal/repositories"
)

// NewRepositoryContainer creates all SQLite repositories sharing one
// connection pool and logger.
func NewRepositoryContainer(db *sql.DB, logger *logrus.Logger) *repositories.RepositoryContainer {
	return &repositories.RepositoryContainer{
		UserRepo:         NewUserRepository(db, logger),
		AdminSettingRepo: NewAdminSettingRepository(db, logger),
		OrderRepo:        NewOrderRepository(db, logger),
	}
}
