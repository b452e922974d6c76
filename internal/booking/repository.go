package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ranvijay-3589/hotel-booking-backend/internal/pkg/request"
	"github.com/Ranvijay-3589/hotel-booking-backend/internal/room"
)

// Tx is the slice of the repository available inside a booking transaction.
// RoomForUpdate takes a row lock on the room, serializing concurrent writers
// on the same room for the duration of the check-and-insert.
type Tx interface {
	RoomForUpdate(ctx context.Context, roomID string) (*room.Room, error)
	SumOverlappingUnits(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeBookingID string) (int, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	Insert(ctx context.Context, b *Booking) error
	Update(ctx context.Context, b *Booking) error
}

type Repository interface {
	GetByID(ctx context.Context, id string) (*Booking, error)
	ListByUser(ctx context.Context, userID string, params request.ListParams) ([]*Booking, int, error)

	// TransitionStatus moves the booking to the given status only while its
	// current status is one of from. It reports false when the row was in
	// none of those states, so a write racing a cancel cannot resurrect a
	// cancelled booking.
	TransitionStatus(ctx context.Context, id string, from []Status, to Status) (bool, error)

	// SumOverlappingUnits outside a transaction is a read-only probe; the
	// result may be stale under concurrent writers.
	SumOverlappingUnits(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeBookingID string) (int, error)

	// Transact runs fn inside a single database transaction. The whole
	// check-then-write sequence of create/update must go through here.
	// Lock timeouts, deadlocks and serialization failures are reported as
	// ErrStoreBusy; the failed attempt leaves no partial writes.
	Transact(ctx context.Context, fn func(tx Tx) error) error
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

type pgxTx struct {
	tx pgx.Tx
}

func (r *pgxRepository) Transact(ctx context.Context, fn func(tx Tx) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return classifyStoreError(err, "begin booking transaction failed")
	}
	defer tx.Rollback(ctx)

	// Bound lock waits so a contended room surfaces as a retryable failure
	// instead of an indefinite block.
	if _, err := tx.Exec(ctx, "SET LOCAL lock_timeout = '3s'"); err != nil {
		return classifyStoreError(err, "set lock_timeout failed")
	}

	if err := fn(&pgxTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return classifyStoreError(err, "commit booking transaction failed")
	}
	return nil
}

// classifyStoreError maps contention and connectivity failures to the
// retryable ErrStoreBusy; anything else is wrapped as-is.
func classifyStoreError(err error, msg string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrStoreBusy
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.LockNotAvailable, pgerrcode.DeadlockDetected, pgerrcode.SerializationFailure:
			return ErrStoreBusy
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func (t *pgxTx) RoomForUpdate(ctx context.Context, roomID string) (*room.Room, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "hotel_id", "room_type", "price_per_night", "total_units", "capacity", "image_url", "created_at",
	).
		From("public.rooms").
		Where(squirrel.Eq{"id": roomID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lock room query failed: %w", err)
	}

	var rm room.Room
	if err := t.tx.QueryRow(ctx, query, args...).Scan(
		&rm.ID, &rm.HotelID, &rm.RoomType, &rm.PricePerNight, &rm.TotalUnits, &rm.Capacity, &rm.ImageURL, &rm.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, room.ErrNotFound
		}
		return nil, classifyStoreError(err, "lock room failed")
	}
	return &rm, nil
}

func (t *pgxTx) SumOverlappingUnits(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeBookingID string) (int, error) {
	return sumOverlappingUnits(ctx, t.tx, roomID, checkIn, checkOut, excludeBookingID)
}

func (r *pgxRepository) SumOverlappingUnits(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeBookingID string) (int, error) {
	return sumOverlappingUnits(ctx, r.pool, roomID, checkIn, checkOut, excludeBookingID)
}

// sumOverlappingUnits totals units_booked over active bookings of the room
// whose [check_in, check_out) range intersects the queried one. A multi-unit
// booking contributes its full quantity. Overlap rule for half-open ranges:
// existing.check_in < queried.check_out AND existing.check_out > queried.check_in.
func sumOverlappingUnits(ctx context.Context, q querier, roomID string, checkIn, checkOut time.Time, excludeBookingID string) (int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select("COALESCE(SUM(units_booked), 0)").
		From("public.bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"status": []string{string(StatusRequested), string(StatusConfirmed)}}).
		Where(squirrel.Lt{"check_in": checkOut}).
		Where(squirrel.Gt{"check_out": checkIn})

	if excludeBookingID != "" {
		query = query.Where(squirrel.NotEq{"id": excludeBookingID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build overlap sum query failed: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, classifyStoreError(err, "overlap sum failed")
	}
	return total, nil
}

func (t *pgxTx) Insert(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("room_id", "hotel_id", "user_id", "check_in", "check_out", "units_booked", "total_price", "status").
		Values(b.RoomID, b.HotelID, b.UserID, b.CheckIn, b.CheckOut, b.UnitsBooked, b.TotalPrice, b.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert booking query failed: %w", err)
	}

	if err := t.tx.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return classifyStoreError(err, "insert booking failed")
	}
	return nil
}

// Update rewrites the booking's dates, units and price. Status is never
// written here; the guard on active statuses makes a concurrently cancelled
// booking fail the write instead of being silently revived.
func (t *pgxTx) Update(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("check_in", b.CheckIn).
		Set("check_out", b.CheckOut).
		Set("units_booked", b.UnitsBooked).
		Set("total_price", b.TotalPrice).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": b.ID}).
		Where(squirrel.Eq{"status": []string{string(StatusRequested), string(StatusConfirmed)}}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking query failed: %w", err)
	}

	ct, err := t.tx.Exec(ctx, query, args...)
	if err != nil {
		return classifyStoreError(err, "update booking failed")
	}
	if ct.RowsAffected() == 0 {
		return ErrBookingCancelled
	}
	return nil
}

// GetByID inside the transaction reads base columns only; the joined display
// view is assembled by the pool-level GetByID after commit.
func (t *pgxTx) GetByID(ctx context.Context, id string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "room_id", "hotel_id", "user_id", "check_in", "check_out",
		"units_booked", "total_price", "status", "created_at", "updated_at",
	).
		From("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	var b Booking
	if err := t.tx.QueryRow(ctx, query, args...).Scan(
		&b.ID, &b.RoomID, &b.HotelID, &b.UserID, &b.CheckIn, &b.CheckOut,
		&b.UnitsBooked, &b.TotalPrice, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, classifyStoreError(err, "get booking failed")
	}
	return &b, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"b.id", "b.room_id", "r.room_type", "b.hotel_id", "h.name", "h.location",
		"b.user_id", "b.check_in", "b.check_out", "b.units_booked",
		"r.price_per_night", "b.total_price", "b.status", "b.created_at", "b.updated_at",
	).
		From("public.bookings b").
		Join("public.rooms r ON b.room_id = r.id").
		Join("public.hotels h ON b.hotel_id = h.id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	var b Booking
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&b.ID, &b.RoomID, &b.RoomType, &b.HotelID, &b.HotelName, &b.HotelLocation,
		&b.UserID, &b.CheckIn, &b.CheckOut, &b.UnitsBooked,
		&b.PricePerNight, &b.TotalPrice, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, classifyStoreError(err, "get booking failed")
	}
	return &b, nil
}

func (r *pgxRepository) ListByUser(ctx context.Context, userID string, params request.ListParams) ([]*Booking, int, error) {
	params.Normalize()
	offset := (params.Page - 1) * params.PageSize

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"b.id", "b.room_id", "r.room_type", "b.hotel_id", "h.name", "h.location",
		"b.user_id", "b.check_in", "b.check_out", "b.units_booked",
		"r.price_per_night", "b.total_price", "b.status", "b.created_at", "b.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.bookings b").
		Join("public.rooms r ON b.room_id = r.id").
		Join("public.hotels h ON b.hotel_id = h.id").
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("b.created_at DESC").
		Limit(uint64(params.PageSize)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, classifyStoreError(err, "list bookings failed")
	}
	defer rows.Close()

	var bookings []*Booking
	var total int
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.RoomID, &b.RoomType, &b.HotelID, &b.HotelName, &b.HotelLocation,
			&b.UserID, &b.CheckIn, &b.CheckOut, &b.UnitsBooked,
			&b.PricePerNight, &b.TotalPrice, &b.Status, &b.CreatedAt, &b.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}
	return bookings, total, rows.Err()
}

func (r *pgxRepository) TransitionStatus(ctx context.Context, id string, from []Status, to Status) (bool, error) {
	fromValues := make([]string, len(from))
	for i, s := range from {
		fromValues[i] = string(s)
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", to).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": fromValues}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build transition booking status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return false, classifyStoreError(err, "transition booking status failed")
	}
	return ct.RowsAffected() > 0, nil
}
