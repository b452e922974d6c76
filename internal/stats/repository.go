package stats

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository exposes the read-only aggregate queries behind the public
// statistics endpoint.
type Repository interface {
	Overview(ctx context.Context) (*Overview, error)
	BookingsByStatus(ctx context.Context) ([]StatusCount, error)
	TopHotels(ctx context.Context, limit int) ([]TopHotel, error)
	RoomTypeDistribution(ctx context.Context) ([]RoomTypeCount, error)
	MonthlyBookings(ctx context.Context, months int) ([]MonthlyPoint, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Overview(ctx context.Context) (*Overview, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"(SELECT count(*) FROM public.hotels)",
		"(SELECT count(*) FROM public.rooms)",
		"(SELECT count(*) FROM public.bookings)",
		"(SELECT count(*) FROM public.users)",
		"COALESCE(SUM(total_price) FILTER (WHERE status IN ('requested', 'confirmed')), 0)",
		"COALESCE(SUM(total_price) FILTER (WHERE status = 'confirmed'), 0)",
		"COALESCE(AVG(total_price) FILTER (WHERE status IN ('requested', 'confirmed')), 0)",
		"COALESCE(SUM(units_booked) FILTER (WHERE status IN ('requested', 'confirmed')), 0)",
	).
		From("public.bookings").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build overview query failed: %w", err)
	}

	var o Overview
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&o.TotalHotels, &o.TotalRooms, &o.TotalBookings, &o.TotalUsers,
		&o.TotalRevenue, &o.ConfirmedRevenue, &o.AvgBookingValue, &o.TotalUnitsBooked,
	); err != nil {
		return nil, fmt.Errorf("overview query failed: %w", err)
	}
	return &o, nil
}

func (r *pgxRepository) BookingsByStatus(ctx context.Context) ([]StatusCount, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("status", "count(*)").
		From("public.bookings").
		GroupBy("status").
		OrderBy("count(*) DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build bookings by status query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("bookings by status query failed: %w", err)
	}
	defer rows.Close()

	var counts []StatusCount
	for rows.Next() {
		var sc StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, fmt.Errorf("scan status count failed: %w", err)
		}
		counts = append(counts, sc)
	}
	return counts, rows.Err()
}

func (r *pgxRepository) TopHotels(ctx context.Context, limit int) ([]TopHotel, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"h.name", "count(b.id)", "COALESCE(SUM(b.total_price), 0)",
	).
		From("public.hotels h").
		LeftJoin("public.bookings b ON b.hotel_id = h.id AND b.status IN ('requested', 'confirmed')").
		GroupBy("h.id", "h.name").
		OrderBy("count(b.id) DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build top hotels query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("top hotels query failed: %w", err)
	}
	defer rows.Close()

	var hotels []TopHotel
	for rows.Next() {
		var th TopHotel
		if err := rows.Scan(&th.Name, &th.BookingCount, &th.TotalRevenue); err != nil {
			return nil, fmt.Errorf("scan top hotel failed: %w", err)
		}
		hotels = append(hotels, th)
	}
	return hotels, rows.Err()
}

func (r *pgxRepository) RoomTypeDistribution(ctx context.Context) ([]RoomTypeCount, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("r.room_type", "count(b.id)").
		From("public.rooms r").
		LeftJoin("public.bookings b ON b.room_id = r.id AND b.status IN ('requested', 'confirmed')").
		GroupBy("r.room_type").
		OrderBy("count(b.id) DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build room type distribution query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("room type distribution query failed: %w", err)
	}
	defer rows.Close()

	var counts []RoomTypeCount
	for rows.Next() {
		var rc RoomTypeCount
		if err := rows.Scan(&rc.RoomType, &rc.BookingCount); err != nil {
			return nil, fmt.Errorf("scan room type count failed: %w", err)
		}
		counts = append(counts, rc)
	}
	return counts, rows.Err()
}

func (r *pgxRepository) MonthlyBookings(ctx context.Context, months int) ([]MonthlyPoint, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"to_char(created_at, 'YYYY-MM') AS month",
		"count(*)",
		"COALESCE(SUM(total_price), 0)",
	).
		From("public.bookings").
		Where("created_at >= now() - (? * interval '1 month')", months).
		GroupBy("to_char(created_at, 'YYYY-MM')").
		OrderBy("month ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build monthly bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("monthly bookings query failed: %w", err)
	}
	defer rows.Close()

	var points []MonthlyPoint
	for rows.Next() {
		var mp MonthlyPoint
		if err := rows.Scan(&mp.Month, &mp.Count, &mp.Revenue); err != nil {
			return nil, fmt.Errorf("scan monthly point failed: %w", err)
		}
		points = append(points, mp)
	}
	return points, rows.Err()
}
