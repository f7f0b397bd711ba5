package main

import (
	"flag"
	"fmt"

	"github.com/sirupsen/logrus"

	"quotes-api/internal/config"
	"quotes-api/internal/database"
)

func main() {
	var (
		databaseURL    = flag.String("database", "", "Connection string (defaults to DATABASE_URL)")
		migrationsPath = flag.String("migrations", "", "Migrations directory path (defaults to DB_MIGRATIONS_PATH)")
		action         = flag.String("action", "up", "Migration action: up, down, status, validate")
		verbose        = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	if *databaseURL != "" {
		cfg.Database.ConnectionString = *databaseURL
	}
	if *migrationsPath != "" {
		cfg.Database.MigrationsPath = *migrationsPath
	}

	logger.WithFields(logrus.Fields{
		"driver":          database.DriverFor(cfg.Database.ConnectionString),
		"migrations_path": cfg.Database.MigrationsPath,
		"action":          *action,
	}).Info("Starting migration tool")

	connectionManager := database.NewConnectionManager(&database.ConnectionConfig{
		ConnectionString: cfg.Database.ConnectionString,
		CACertPath:       cfg.Database.CACertPath,
		MigrationsPath:   cfg.Database.MigrationsPath,
		MaxOpenConns:     cfg.Database.MaxOpenConns,
		MaxIdleConns:     cfg.Database.MaxIdleConns,
		ConnMaxLifetime:  cfg.Database.ConnMaxLifetime,
		Logger:           logger,
	})

	switch *action {
	case "up":
		if err := withConnection(connectionManager, func(m *database.MigrationManager) error {
			return m.RunMigrations()
		}); err != nil {
			logger.WithError(err).Fatal("Migration up failed")
		}
	case "down":
		if err := withConnection(connectionManager, func(m *database.MigrationManager) error {
			return m.RollbackMigration()
		}); err != nil {
			logger.WithError(err).Fatal("Migration down failed")
		}
	case "status":
		if err := withConnection(connectionManager, func(m *database.MigrationManager) error {
			info, err := m.GetMigrationStatus()
			if err != nil {
				return err
			}
			logger.WithFields(logrus.Fields{
				"version": info.Version,
				"dirty":   info.Dirty,
				"applied": info.Applied,
			}).Info("Migration status")
			return nil
		}); err != nil {
			logger.WithError(err).Fatal("Failed to get migration status")
		}
	case "validate":
		if err := withConnection(connectionManager, func(m *database.MigrationManager) error {
			return m.ValidateSchema()
		}); err != nil {
			logger.WithError(err).Fatal("Schema validation failed")
		}
	default:
		logger.WithField("action", *action).Fatal("Unknown action. Use: up, down, status, validate")
	}

	logger.Info("Migration tool completed successfully")
}

func withConnection(cm *database.ConnectionManager, fn func(*database.MigrationManager) error) error {
	if err := cm.Connect(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer cm.Close()

	return fn(cm.GetMigrationManager())
}
