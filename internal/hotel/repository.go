package hotel

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines data access methods for hotels.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Hotel, error)
	List(ctx context.Context, filter Filter) ([]*Hotel, int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Hotel, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "name", "location", "description", "image_url", "rating", "created_at",
	).
		From("public.hotels").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get hotel query failed: %w", err)
	}

	var h Hotel
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&h.ID, &h.Name, &h.Location, &h.Description, &h.ImageURL, &h.Rating, &h.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get hotel failed: %w", err)
	}
	return &h, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Hotel, int, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"h.id", "h.name", "h.location", "h.description", "h.image_url", "h.rating", "h.created_at",
		"COALESCE(MIN(r.price_per_night), 0) AS min_room_price",
		"COALESCE(MAX(r.price_per_night), 0) AS max_room_price",
		"count(*) OVER() AS total_count",
	).
		From("public.hotels h").
		LeftJoin("public.rooms r ON r.hotel_id = h.id")

	if filter.Location != "" {
		query = query.Where(squirrel.ILike{"h.location": "%" + filter.Location + "%"})
	}
	if filter.Keyword != "" {
		kw := "%" + filter.Keyword + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"h.name": kw},
			squirrel.ILike{"h.location": kw},
			squirrel.ILike{"h.description": kw},
		})
	}
	if filter.MinRating != nil {
		query = query.Where(squirrel.GtOrEq{"h.rating": *filter.MinRating})
	}

	query = query.GroupBy("h.id")

	if filter.MinPrice != nil {
		query = query.Having("COALESCE(MIN(r.price_per_night), 0) >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Having("COALESCE(MIN(r.price_per_night), 0) <= ?", *filter.MaxPrice)
	}

	query = query.OrderBy("h.rating DESC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list hotels query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list hotels failed: %w", err)
	}
	defer rows.Close()

	var hotels []*Hotel
	var total int
	for rows.Next() {
		var h Hotel
		if err := rows.Scan(
			&h.ID, &h.Name, &h.Location, &h.Description, &h.ImageURL, &h.Rating, &h.CreatedAt,
			&h.MinRoomPrice, &h.MaxRoomPrice, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan hotel failed: %w", err)
		}
		hotels = append(hotels, &h)
	}
	return hotels, total, rows.Err()
}
