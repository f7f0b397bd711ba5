package server

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"quotes-api/internal/config"
	"quotes-api/internal/database"
	"quotes-api/internal/repositories"
	"quotes-api/internal/repositories/postgres"
	"quotes-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	QuoteService services.QuoteService

	connection *database.ConnectionManager
	services   *services.ServiceContainer
}

// NewContainer creates a new dependency injection container: config →
// database connection → repositories → services
func NewContainer(cfg *config.Config) (*Container, error) {
	logger := logrus.StandardLogger()

	connection := database.NewConnectionManager(&database.ConnectionConfig{
		ConnectionString: cfg.Database.ConnectionString,
		CACertPath:       cfg.Database.CACertPath,
		MigrationsPath:   cfg.Database.MigrationsPath,
		MaxOpenConns:     cfg.Database.MaxOpenConns,
		MaxIdleConns:     cfg.Database.MaxIdleConns,
		ConnMaxLifetime:  cfg.Database.ConnMaxLifetime,
		Logger:           logger,
	})

	if err := connection.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := connection.GetMigrationManager().RunMigrations(); err != nil {
			connection.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	repos := &repositories.RepositoryContainer{
		QuoteRepo: postgres.NewQuoteRepository(connection.GetDB(), logger),
	}

	serviceContainer, err := services.NewServiceContainer(repos, &services.ServiceConfig{
		QuoteListLimit: cfg.Quotes.ListLimit,
	})
	if err != nil {
		connection.Close()
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}

	return &Container{
		Config:       cfg,
		QuoteService: serviceContainer.QuoteService,
		connection:   connection,
		services:     serviceContainer,
	}, nil
}

// CheckHealth verifies the container's database connection
func (c *Container) CheckHealth() error {
	if c.connection == nil {
		return fmt.Errorf("container not initialized")
	}
	return c.connection.CheckHealth()
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.services != nil {
		if err := c.services.Close(); err != nil {
			return fmt.Errorf("failed to close services: %w", err)
		}
	}

	if c.connection != nil {
		if err := c.connection.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
