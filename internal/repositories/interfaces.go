package repositories

import (
	"context"

	"quotes-api/internal/models"
)

// QuoteRepository defines storage operations for quote records
type QuoteRepository interface {
	// Create inserts a new quote. The storage-assigned ID is written
	// back into the entity.
	Create(ctx context.Context, quote *models.Quote) error

	// GetByID retrieves a quote by its ID. Returns ErrNotFound when no
	// row matches.
	GetByID(ctx context.Context, id int64) (*models.Quote, error)

	// List retrieves up to limit quotes ordered by episode ascending
	List(ctx context.Context, limit int) ([]*models.Quote, error)

	// Update applies a sparse patch to the quote with the given ID and
	// returns the updated record. Only non-nil patch fields are
	// written. Returns ErrNotFound when no row matches.
	Update(ctx context.Context, id int64, patch *models.QuotePatch) (*models.Quote, error)

	// Delete removes the quote with the given ID. Returns false when
	// no row matched; a missing row is not an error.
	Delete(ctx context.Context, id int64) (bool, error)

	// Count returns the total number of stored quotes
	Count(ctx context.Context) (int64, error)
}

// RepositoryContainer holds all repository instances
type RepositoryContainer struct {
	QuoteRepo QuoteRepository
}
