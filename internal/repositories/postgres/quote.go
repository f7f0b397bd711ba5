package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"quotes-api/internal/models"
	"quotes-api/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// DefaultListLimit caps how many quotes a list query returns
const DefaultListLimit = 20

const quoteColumns = "id, quote, characters, stardate, episode"

// QuoteRepository implements the QuoteRepository interface on top of
// database/sql with $n placeholders (Postgres in production, SQLite
// for local development and tests).
type QuoteRepository struct {
	*BaseRepository
}

// NewQuoteRepository creates a new quote repository
func NewQuoteRepository(db *sql.DB, logger *logrus.Logger) repositories.QuoteRepository {
	return &QuoteRepository{
		BaseRepository: NewBaseRepository(db, "quotes", logger),
	}
}

// Create inserts a new quote and writes the generated ID back into it
func (r *QuoteRepository) Create(ctx context.Context, quote *models.Quote) error {
	if err := quote.Validate(); err != nil {
		return repositories.ValidationError("quote", 0, err)
	}

	query := `
		INSERT INTO quotes (quote, characters, stardate, episode)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	row := r.executeQueryRow(ctx, "create", query,
		nullString(quote.Quote),
		nullString(quote.Characters),
		nullDecimal(quote.Stardate),
		nullInt(quote.Episode),
	)

	if err := row.Scan(&quote.ID); err != nil {
		if strings.Contains(err.Error(), "constraint") {
			return repositories.ConstraintError("quote", err)
		}
		return repositories.NewRepositoryError("create", "quotes", 0, err)
	}

	return nil
}

// GetByID retrieves a quote by ID
func (r *QuoteRepository) GetByID(ctx context.Context, id int64) (*models.Quote, error) {
	if id <= 0 {
		return nil, repositories.NewRepositoryError("get_by_id", "quotes", id, repositories.ErrInvalidID)
	}

	query := fmt.Sprintf(`SELECT %s FROM quotes WHERE id = $1`, quoteColumns)

	row := r.executeQueryRow(ctx, "get_by_id", query, id)

	quote, err := scanQuote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.NotFoundError("quote", id)
		}
		return nil, repositories.NewRepositoryError("get_by_id", "quotes", id, err)
	}

	return quote, nil
}

// List retrieves up to limit quotes ordered by episode ascending.
// NULLS LAST is explicit because SQLite's default puts NULLs first
// while Postgres puts them last; both engines honor the keyword.
func (r *QuoteRepository) List(ctx context.Context, limit int) ([]*models.Quote, error) {
	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}

	query := fmt.Sprintf(`SELECT %s FROM quotes ORDER BY episode ASC NULLS LAST LIMIT $1`, quoteColumns)

	rows, err := r.executeQuery(ctx, "list", query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quotes := make([]*models.Quote, 0, limit)
	for rows.Next() {
		quote, err := scanQuote(rows)
		if err != nil {
			return nil, repositories.NewRepositoryError("list", "quotes", 0, err)
		}
		quotes = append(quotes, quote)
	}

	if err := rows.Err(); err != nil {
		return nil, repositories.NewRepositoryError("list", "quotes", 0, err)
	}

	return quotes, nil
}

// Update applies a sparse patch to the quote with the given ID. The
// SET clause is assembled from a fixed column whitelist with one
// positional placeholder per present field; caller data never enters
// the SQL text.
func (r *QuoteRepository) Update(ctx context.Context, id int64, patch *models.QuotePatch) (*models.Quote, error) {
	if id <= 0 {
		return nil, repositories.NewRepositoryError("update", "quotes", id, repositories.ErrInvalidID)
	}

	if err := patch.Validate(); err != nil {
		return nil, repositories.ValidationError("quote", id, err)
	}

	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	var (
		sets []string
		args []interface{}
	)

	appendSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Quote != nil {
		appendSet("quote", *patch.Quote)
	}
	if patch.Characters != nil {
		appendSet("characters", *patch.Characters)
	}
	if patch.Stardate != nil {
		appendSet("stardate", patch.Stardate.String())
	}
	if patch.Episode != nil {
		appendSet("episode", *patch.Episode)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE quotes SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), quoteColumns)

	row := r.executeQueryRow(ctx, "update", query, args...)

	quote, err := scanQuote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.NotFoundError("quote", id)
		}
		return nil, repositories.NewRepositoryError("update", "quotes", id, err)
	}

	return quote, nil
}

// Delete removes the quote with the given ID. A missing row is
// reported as matched=false, not as an error.
func (r *QuoteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, repositories.NewRepositoryError("delete", "quotes", id, repositories.ErrInvalidID)
	}

	result, err := r.executeExec(ctx, "delete", `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, repositories.NewRepositoryError("delete", "quotes", id, err)
	}

	return affected > 0, nil
}

// Count returns the total number of stored quotes
func (r *QuoteRepository) Count(ctx context.Context) (int64, error) {
	row := r.executeQueryRow(ctx, "count", `SELECT COUNT(*) FROM quotes`)

	var count int64
	if err := row.Scan(&count); err != nil {
		return 0, repositories.NewRepositoryError("count", "quotes", 0, err)
	}

	return count, nil
}

// scanner matches both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanQuote scans one quotes row into a model
func scanQuote(s scanner) (*models.Quote, error) {
	var (
		quote      models.Quote
		text       sql.NullString
		characters sql.NullString
		stardate   sql.NullString
		episode    sql.NullInt64
	)

	if err := s.Scan(&quote.ID, &text, &characters, &stardate, &episode); err != nil {
		return nil, err
	}

	if text.Valid {
		quote.Quote = &text.String
	}
	if characters.Valid {
		quote.Characters = &characters.String
	}
	if stardate.Valid {
		d, err := decimal.NewFromString(stardate.String)
		if err != nil {
			return nil, fmt.Errorf("invalid stardate %q: %w", stardate.String, err)
		}
		quote.Stardate = &d
	}
	if episode.Valid {
		quote.Episode = &episode.Int64
	}

	return &quote, nil
}

func nullString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func nullInt(i *int64) interface{} {
	if i == nil {
		return nil
	}
	return *i
}

func nullDecimal(d *decimal.Decimal) interface{} {
	if d == nil {
		return nil
	}
	return d.String()
}
