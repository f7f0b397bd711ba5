package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"quotes-api/internal/services"
)

// Importer bulk-loads quotes from a JSON file into storage
type Importer struct {
	quoteService services.QuoteService
	logger       *logrus.Logger
}

// NewImporter creates a new importer
func NewImporter(quoteService services.QuoteService, logger *logrus.Logger) *Importer {
	if logger == nil {
		logger = logrus.New()
	}
	return &Importer{
		quoteService: quoteService,
		logger:       logger,
	}
}

// Result summarizes an import run
type Result struct {
	Imported int
	Failed   int
}

// ImportFile reads a JSON array of quote payloads and inserts each one.
// Rows that fail validation are skipped and counted, not fatal.
func (i *Importer) ImportFile(ctx context.Context, path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var payloads []services.CreateQuoteRequest
	if err := json.Unmarshal(data, &payloads); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	result := &Result{}
	for idx := range payloads {
		quote, err := i.quoteService.CreateQuote(ctx, &payloads[idx])
		if err != nil {
			result.Failed++
			i.logger.WithFields(logrus.Fields{
				"index": idx,
				"error": err.Error(),
			}).Warn("Skipping quote")
			continue
		}

		result.Imported++
		i.logger.WithField("id", quote.ID).Debug("Imported quote")
	}

	i.logger.WithFields(logrus.Fields{
		"imported": result.Imported,
		"failed":   result.Failed,
	}).Info("Seed import finished")

	return result, nil
}
