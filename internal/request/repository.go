package request

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nekogravitycat/share-it-backend/internal/pkg/pagination"
)

type Repository interface {
	Create(ctx context.Context, r *Request) error
	GetByID(ctx context.Context, id string) (*Request, error)
	Exists(ctx context.Context, id string) (bool, error)
	// ListByRequester returns all of one member's requests, newest first.
	ListByRequester(ctx context.Context, requesterID string) ([]*Request, error)
	// ListOthers returns one page of everyone else's requests, newest first, and the total match count.
	ListOthers(ctx context.Context, userID string, page pagination.Page) ([]*Request, int, error)
}

var requestColumns = []string{"r.id", "r.requester_id", "u.name", "r.description", "r.created_at"}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func selectRequests(extra ...string) squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select(append(append([]string{}, requestColumns...), extra...)...).
		From("public.item_requests r").
		Join("public.users u ON r.requester_id = u.id")
}

func scanRequest(row pgx.Row, extra ...any) (*Request, error) {
	var r Request
	dest := []any{&r.ID, &r.RequesterID, &r.RequesterName, &r.Description, &r.CreatedAt}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &r, nil
}

func (repo *pgxRepository) Create(ctx context.Context, r *Request) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.item_requests").
		Columns("requester_id", "description").
		Values(r.RequesterID, r.Description).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create request query failed: %w", err)
	}

	if err := repo.pool.QueryRow(ctx, query, args...).Scan(&r.ID, &r.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return ErrUserNotFound
		}
		return fmt.Errorf("create request failed: %w", err)
	}
	return nil
}

func (repo *pgxRepository) GetByID(ctx context.Context, id string) (*Request, error) {
	query, args, err := selectRequests().Where(squirrel.Eq{"r.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get request query failed: %w", err)
	}

	r, err := scanRequest(repo.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get request failed: %w", err)
	}
	return r, nil
}

func (repo *pgxRepository) Exists(ctx context.Context, id string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM public.item_requests WHERE id = $1)`

	var exists bool
	if err := repo.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check request exists failed: %w", err)
	}
	return exists, nil
}

func buildListByRequesterQuery(requesterID string) squirrel.SelectBuilder {
	return selectRequests().
		Where(squirrel.Eq{"r.requester_id": requesterID}).
		OrderBy("r.created_at DESC", "r.id DESC")
}

func othersFilter(userID string) squirrel.Sqlizer {
	return squirrel.NotEq{"r.requester_id": userID}
}

func buildListOthersQuery(userID string, page pagination.Page) squirrel.SelectBuilder {
	q := selectRequests("count(*) OVER() AS total_count").
		Where(othersFilter(userID)).
		OrderBy("r.created_at DESC", "r.id DESC")
	return page.Apply(q)
}

func buildOthersMatchQuery(userID string) squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select("r.id").From("public.item_requests r").Where(othersFilter(userID))
}

func (repo *pgxRepository) ListByRequester(ctx context.Context, requesterID string) ([]*Request, error) {
	query, args, err := buildListByRequesterQuery(requesterID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list requests query failed: %w", err)
	}

	rows, err := repo.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list requests failed: %w", err)
	}
	defer rows.Close()

	requests := []*Request{}
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan request failed: %w", err)
		}
		requests = append(requests, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate requests failed: %w", err)
	}
	return requests, nil
}

func (repo *pgxRepository) ListOthers(ctx context.Context, userID string, page pagination.Page) ([]*Request, int, error) {
	query, args, err := buildListOthersQuery(userID, page).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list requests query failed: %w", err)
	}

	rows, err := repo.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list requests failed: %w", err)
	}
	defer rows.Close()

	requests := []*Request{}
	var total int
	for rows.Next() {
		r, err := scanRequest(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan request failed: %w", err)
		}
		requests = append(requests, r)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate requests failed: %w", err)
	}

	if page.PastEnd(len(requests)) {
		total, err = pagination.Count(ctx, repo.pool, buildOthersMatchQuery(userID))
		if err != nil {
			return nil, 0, err
		}
	}

	return requests, total, nil
}
