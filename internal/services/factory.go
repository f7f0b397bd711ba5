package services

import (
	"fmt"

	"quotes-api/internal/repositories"
)

// ServiceConfig holds configuration for service construction
type ServiceConfig struct {
	// QuoteListLimit caps the rows returned by the list operation
	QuoteListLimit int
}

// ServiceContainer holds all service instances
type ServiceContainer struct {
	QuoteService QuoteService
}

// NewServiceContainer creates all services from the repository container
func NewServiceContainer(repos *repositories.RepositoryContainer, config *ServiceConfig) (*ServiceContainer, error) {
	if repos == nil || repos.QuoteRepo == nil {
		return nil, fmt.Errorf("repository container is incomplete")
	}

	if config == nil {
		config = &ServiceConfig{QuoteListLimit: MaxListLimit}
	}

	return &ServiceContainer{
		QuoteService: NewQuoteService(repos.QuoteRepo, config.QuoteListLimit),
	}, nil
}

// Close cleans up service resources
func (c *ServiceContainer) Close() error {
	return nil
}
