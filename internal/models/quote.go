package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxQuoteLength bounds the quote text
const MaxQuoteLength = 2000

// Quote represents a single quote record. All fields except ID are
// independently optional, so a stored quote may be sparse.
type Quote struct {
	ID         int64            `json:"id" db:"id"`
	Quote      *string          `json:"quote" db:"quote"`
	Characters *string          `json:"characters" db:"characters"`
	Stardate   *decimal.Decimal `json:"stardate" db:"stardate"`
	Episode    *int64           `json:"episode" db:"episode" validate:"omitempty,gte=0"`
}

// NewQuote creates a quote with the given text. The ID is assigned by
// storage on insert.
func NewQuote(text string) *Quote {
	return &Quote{
		Quote: &text,
	}
}

// Validate validates the quote data
func (q *Quote) Validate() error {
	if q.Quote != nil && len(*q.Quote) > MaxQuoteLength {
		return fmt.Errorf("quote text exceeds %d characters", MaxQuoteLength)
	}

	if q.Episode != nil && *q.Episode < 0 {
		return fmt.Errorf("episode must not be negative")
	}

	return nil
}

// QuotePatch describes a sparse update. Only non-nil fields are
// written to storage; nil fields keep their stored value.
type QuotePatch struct {
	Quote      *string          `json:"quote"`
	Characters *string          `json:"characters"`
	Stardate   *decimal.Decimal `json:"stardate"`
	Episode    *int64           `json:"episode" validate:"omitempty,gte=0"`
}

// IsEmpty reports whether the patch carries no fields
func (p *QuotePatch) IsEmpty() bool {
	return p.Quote == nil && p.Characters == nil && p.Stardate == nil && p.Episode == nil
}

// Validate validates the patch data
func (p *QuotePatch) Validate() error {
	if p.Quote != nil && len(*p.Quote) > MaxQuoteLength {
		return fmt.Errorf("quote text exceeds %d characters", MaxQuoteLength)
	}

	if p.Episode != nil && *p.Episode < 0 {
		return fmt.Errorf("episode must not be negative")
	}

	return nil
}
