package server

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"leadportal-api/internal/config"
	"leadportal-api/internal/database"
	"leadportal-api/internal/ghl"
	"leadportal-api/internal/handlers"
	"leadportal-api/internal/payments"
	"leadportal-api/internal/repositories"
	"leadportal-api/internal/repositories/sqlite"
	"leadportal-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config   *config.Config
	Logger   *logrus.Logger
	Repos    *repositories.RepositoryContainer
	Services *services.ServiceContainer

	db *sql.DB
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	logger := newLogger(cfg)

	db, err := database.Connect(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	migrator := database.NewMigrationManager(db, cfg.Database.MigrationsPath, logger)
	if err := migrator.RunMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	repos := sqlite.NewRepositoryContainer(db, logger)
	crmClient := ghl.NewClient(cfg.GHL.BaseURL, http.DefaultClient, logger)
	gateway := payments.NewStripeGateway(cfg.Stripe.SecretKey, logger)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		Repos:    repos,
		Services: services.NewServiceContainer(cfg, repos, crmClient, gateway, logger),
		db:       db,
	}, nil
}

// BuildRouter assembles the gin engine shared by the HTTP server and the
// Lambda adapters
func (c *Container) BuildRouter() *gin.Engine {
	if c.Config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	handlers.SetupMiddleware(router)
	handlers.SetupRoutes(router, &handlers.RouterConfig{
		Services:      c.Services,
		UpstreamDebug: c.Config.UpstreamDebug,
	})
	return router
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	return nil
}

func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Environment == "development" {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}
