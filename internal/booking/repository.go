package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nekogravitycat/share-it-backend/internal/pkg/pagination"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	UpdateStatus(ctx context.Context, id string, status Status) (time.Time, error)

	// List returns one page of the user's bookings in state at now, newest start first, and the total match count.
	List(ctx context.Context, scope Scope, userID string, state State, now time.Time, page pagination.Page) ([]*Booking, int, error)
	ListByBookerAndItem(ctx context.Context, bookerID, itemID string) ([]*Booking, error)
	ListByItem(ctx context.Context, itemID string) ([]*Booking, error)
}

var bookingColumns = []string{
	"b.id", "b.item_id", "i.name", "i.owner_id", "b.booker_id", "u.name",
	"b.start_date", "b.end_date", "b.status", "b.created_at", "b.updated_at",
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func selectBookings(extra ...string) squirrel.SelectBuilder {
	cols := make([]string, 0, len(bookingColumns)+len(extra))
	cols = append(cols, bookingColumns...)
	cols = append(cols, extra...)

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select(cols...).
		From("public.bookings b").
		Join("public.items i ON b.item_id = i.id").
		Join("public.users u ON b.booker_id = u.id")
}

func scanBooking(row pgx.Row, extra ...any) (*Booking, error) {
	var b Booking
	dest := []any{
		&b.ID, &b.ItemID, &b.ItemName, &b.ItemOwnerID, &b.BookerID, &b.BookerName,
		&b.Start, &b.End, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("item_id", "booker_id", "start_date", "end_date", "status").
		Values(b.ItemID, b.BookerID, b.Start, b.End, b.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query, args, err := selectBookings().Where(squirrel.Eq{"b.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) (time.Time, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return time.Time{}, fmt.Errorf("build update booking query failed: %w", err)
	}

	var updatedAt time.Time
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, ErrNotFound
		}
		return time.Time{}, fmt.Errorf("update booking failed: %w", err)
	}
	return updatedAt, nil
}

// buildListQuery selects one page of scoped bookings ordered by start descending.
func buildListQuery(scope Scope, userID string, state State, now time.Time, page pagination.Page) squirrel.SelectBuilder {
	q := selectBookings("count(*) OVER() AS total_count").
		Where(Predicate(scope, userID, state, now)).
		OrderBy("b.start_date DESC", "b.id DESC")
	return page.Apply(q)
}

// buildMatchQuery selects every scoped booking in state, unordered and unpaged.
func buildMatchQuery(scope Scope, userID string, state State, now time.Time) squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select("b.id").
		From("public.bookings b").
		Join("public.items i ON b.item_id = i.id").
		Where(Predicate(scope, userID, state, now))
}

func (r *pgxRepository) List(ctx context.Context, scope Scope, userID string, state State, now time.Time, page pagination.Page) ([]*Booking, int, error) {
	query, args, err := buildListQuery(scope, userID, state, now, page).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int
	for rows.Next() {
		b, err := scanBooking(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate bookings failed: %w", err)
	}

	if page.PastEnd(len(bookings)) {
		total, err = pagination.Count(ctx, r.pool, buildMatchQuery(scope, userID, state, now))
		if err != nil {
			return nil, 0, err
		}
	}

	return bookings, total, nil
}

func (r *pgxRepository) ListByBookerAndItem(ctx context.Context, bookerID, itemID string) ([]*Booking, error) {
	return r.listAll(ctx, selectBookings().
		Where(squirrel.Eq{"b.booker_id": bookerID, "b.item_id": itemID}).
		OrderBy("b.start_date DESC", "b.id DESC"))
}

func (r *pgxRepository) ListByItem(ctx context.Context, itemID string) ([]*Booking, error) {
	return r.listAll(ctx, selectBookings().
		Where(squirrel.Eq{"b.item_id": itemID}).
		OrderBy("b.start_date DESC", "b.id DESC"))
}

func (r *pgxRepository) listAll(ctx context.Context, q squirrel.SelectBuilder) ([]*Booking, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings failed: %w", err)
	}

	return bookings, nil
}
