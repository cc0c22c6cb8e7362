package main

import (
	"flag"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"leadportal-api/internal/config"
	"leadportal-api/internal/database"
)

func main() {
	var (
		dbPath         = flag.String("db", "./data/leadportal.db", "Database file path")
		migrationsPath = flag.String("migrations", "./migrations", "Migrations directory path")
		action         = flag.String("action", "up", "Migration action: up, down, validate")
		verbose        = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	absDBPath, err := filepath.Abs(*dbPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to get absolute database path")
	}

	absMigrationsPath, err := filepath.Abs(*migrationsPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to get absolute migrations path")
	}

	logger.WithFields(logrus.Fields{
		"db_path":         absDBPath,
		"migrations_path": absMigrationsPath,
		"action":          *action,
	}).Info("Starting migration tool")

	dbCfg := &config.DatabaseConfig{
		Path:           absDBPath,
		MigrationsPath: absMigrationsPath,
		MaxOpenConns:   1,
		MaxIdleConns:   1,
	}

	db, err := database.Connect(dbCfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	migrator := database.NewMigrationManager(db, absMigrationsPath, logger)

	switch *action {
	case "up":
		if err := migrator.RunMigrations(); err != nil {
			logger.WithError(err).Fatal("Migration up failed")
		}
	case "down":
		if err := migrator.RollbackMigration(); err != nil {
			logger.WithError(err).Fatal("Migration down failed")
		}
	case "validate":
		if err := migrator.ValidateSchema(); err != nil {
			logger.WithError(err).Fatal("Schema validation failed")
		}
	default:
		logger.WithField("action", *action).Fatal("Unknown action. Use: up, down, validate")
	}

	logger.Info("Migration tool completed successfully")
}
