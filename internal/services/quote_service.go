package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"quotes-api/internal/models"
	"quotes-api/internal/repositories"
)

// MaxListLimit is the hard cap on rows returned by ListQuotes
const MaxListLimit = 20

// quoteService implements the QuoteService interface
type quoteService struct {
	quoteRepo repositories.QuoteRepository
	validator *validator.Validate
	listLimit int
}

// NewQuoteService creates a new quote service instance
func NewQuoteService(quoteRepo repositories.QuoteRepository, listLimit int) QuoteService {
	if listLimit <= 0 || listLimit > MaxListLimit {
		listLimit = MaxListLimit
	}
	return &quoteService{
		quoteRepo: quoteRepo,
		validator: validator.New(),
		listLimit: listLimit,
	}
}

// CreateQuote creates a new quote
func (s *quoteService) CreateQuote(ctx context.Context, req *CreateQuoteRequest) (*models.Quote, error) {
	if req == nil {
		return nil, fmt.Errorf("create quote request cannot be nil")
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	quote := &models.Quote{
		Quote:      req.Quote,
		Characters: req.Characters,
		Stardate:   req.Stardate,
		Episode:    req.Episode,
	}

	if err := s.quoteRepo.Create(ctx, quote); err != nil {
		return nil, fmt.Errorf("failed to create quote: %w", err)
	}

	return quote, nil
}

// GetQuote retrieves a quote by ID
func (s *quoteService) GetQuote(ctx context.Context, id int64) (*models.Quote, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid quote ID %d: %w", id, repositories.ErrInvalidID)
	}

	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}

	return quote, nil
}

// ListQuotes retrieves quotes ordered by episode ascending
func (s *quoteService) ListQuotes(ctx context.Context) ([]*models.Quote, error) {
	quotes, err := s.quoteRepo.List(ctx, s.listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}

	return quotes, nil
}

// UpdateQuote applies a sparse update to an existing quote
func (s *quoteService) UpdateQuote(ctx context.Context, id int64, req *UpdateQuoteRequest) (*models.Quote, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid quote ID %d: %w", id, repositories.ErrInvalidID)
	}

	if req == nil {
		return nil, fmt.Errorf("update quote request cannot be nil")
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	quote, err := s.quoteRepo.Update(ctx, id, req.ToPatch())
	if err != nil {
		return nil, fmt.Errorf("failed to update quote: %w", err)
	}

	return quote, nil
}

// DeleteQuote removes a quote by ID
func (s *quoteService) DeleteQuote(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, fmt.Errorf("invalid quote ID %d: %w", id, repositories.ErrInvalidID)
	}

	matched, err := s.quoteRepo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete quote: %w", err)
	}

	return matched, nil
}
