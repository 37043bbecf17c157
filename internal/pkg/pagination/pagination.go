package pagination

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/nekogravitycat/share-it-backend/internal/pkg/apperror"
)

var ErrInvalidPage = apperror.Validation("from must be >= 0 and size must be > 0")

// Page is a zero-based page selection.
type Page struct {
	Number int
	Size   int
}

// FromOffset converts an offset-style (from, size) request into a page.
// Offsets smaller than size always select page 0; larger offsets select from/size,
// so an offset that is not a multiple of size is rounded down to its page.
func FromOffset(from, size int) (Page, error) {
	if from < 0 || size <= 0 {
		return Page{}, ErrInvalidPage
	}
	if from < size {
		return Page{Number: 0, Size: size}, nil
	}
	return Page{Number: from / size, Size: size}, nil
}

// Offset is the number of rows skipped before this page.
func (p Page) Offset() int {
	return p.Number * p.Size
}

// Apply adds LIMIT/OFFSET for this page to a select.
func (p Page) Apply(b squirrel.SelectBuilder) squirrel.SelectBuilder {
	return b.Limit(uint64(p.Size)).Offset(uint64(p.Offset()))
}

// PastEnd reports whether a page that returned rows rows lies beyond the last match.
// Such a page carries no count(*) OVER() value, so the total must be queried separately.
func (p Page) PastEnd(rows int) bool {
	return rows == 0 && p.Offset() > 0
}

// RowQuerier is satisfied by *pgxpool.Pool and pgx.Tx.
type RowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CountQuery wraps an unpaged select so it yields the number of rows it matches.
func CountQuery(b squirrel.SelectBuilder) squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select("count(*)").FromSelect(b, "matched")
}

// Count runs CountQuery(b).
func Count(ctx context.Context, db RowQuerier, b squirrel.SelectBuilder) (int, error) {
	query, args, err := CountQuery(b).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query failed: %w", err)
	}

	var total int
	if err := db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count rows failed: %w", err)
	}
	return total, nil
}
