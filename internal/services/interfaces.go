package services

import (
	"context"

	"quotes-api/internal/models"

	"github.com/shopspring/decimal"
)

// QuoteService defines business operations over quote records
type QuoteService interface {
	// CreateQuote inserts a new quote and returns it with the
	// storage-assigned ID
	CreateQuote(ctx context.Context, req *CreateQuoteRequest) (*models.Quote, error)

	// GetQuote retrieves a quote by ID. Returns repositories.ErrNotFound
	// (wrapped) when no quote has that ID.
	GetQuote(ctx context.Context, id int64) (*models.Quote, error)

	// ListQuotes retrieves quotes ordered by episode ascending, capped
	// at the configured list limit
	ListQuotes(ctx context.Context) ([]*models.Quote, error)

	// UpdateQuote applies a sparse update: only fields present in the
	// request overwrite stored values
	UpdateQuote(ctx context.Context, id int64, req *UpdateQuoteRequest) (*models.Quote, error)

	// DeleteQuote removes a quote by ID. Returns false when no row
	// matched; deleting an absent quote is not an error.
	DeleteQuote(ctx context.Context, id int64) (bool, error)
}

// CreateQuoteRequest carries the fields of a new quote. Every field is
// optional; a quote may be created sparse.
type CreateQuoteRequest struct {
	Quote      *string          `json:"quote" validate:"omitempty,max=2000"`
	Characters *string          `json:"characters" validate:"omitempty,max=500"`
	Stardate   *decimal.Decimal `json:"stardate"`
	Episode    *int64           `json:"episode" validate:"omitempty,gte=0"`
}

// UpdateQuoteRequest carries a sparse update; nil fields are left
// untouched in storage
type UpdateQuoteRequest struct {
	Quote      *string          `json:"quote" validate:"omitempty,max=2000"`
	Characters *string          `json:"characters" validate:"omitempty,max=500"`
	Stardate   *decimal.Decimal `json:"stardate"`
	Episode    *int64           `json:"episode" validate:"omitempty,gte=0"`
}

// ToPatch converts the request into a repository patch
func (r *UpdateQuoteRequest) ToPatch() *models.QuotePatch {
	return &models.QuotePatch{
		Quote:      r.Quote,
		Characters: r.Characters,
		Stardate:   r.Stardate,
		Episode:    r.Episode,
	}
}
