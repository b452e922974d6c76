package room

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines data access methods for rooms.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Room, error)
	ListByHotel(ctx context.Context, hotelID string) ([]*Room, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Room, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "hotel_id", "room_type", "price_per_night", "total_units", "capacity", "image_url", "created_at",
	).
		From("public.rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get room query failed: %w", err)
	}

	var rm Room
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&rm.ID, &rm.HotelID, &rm.RoomType, &rm.PricePerNight, &rm.TotalUnits, &rm.Capacity, &rm.ImageURL, &rm.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get room failed: %w", err)
	}
	return &rm, nil
}

func (r *pgxRepository) ListByHotel(ctx context.Context, hotelID string) ([]*Room, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "hotel_id", "room_type", "price_per_night", "total_units", "capacity", "image_url", "created_at",
	).
		From("public.rooms").
		Where(squirrel.Eq{"hotel_id": hotelID}).
		OrderBy("price_per_night ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list rooms query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list rooms failed: %w", err)
	}
	defer rows.Close()

	var rooms []*Room
	for rows.Next() {
		var rm Room
		if err := rows.Scan(
			&rm.ID, &rm.HotelID, &rm.RoomType, &rm.PricePerNight, &rm.TotalUnits, &rm.Capacity, &rm.ImageURL, &rm.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan room failed: %w", err)
		}
		rooms = append(rooms, &rm)
	}
	return rooms, rows.Err()
}
