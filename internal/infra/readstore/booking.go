package readstore

import (
	"context"

	"homestay/internal/infra"
	"homestay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingByIDSQL = `
SELECT b.id, b.property_id, p.name, b.profile_id, b.check_in, b.check_out,
       b.total_nights, b.order_total_cents, b.status, b.created_at, b.updated_at
FROM bookings b
JOIN properties p ON p.id = b.property_id
WHERE b.id = $1
`

const bookingsByProfileSQL = `
SELECT b.id, b.property_id, p.name, p.country, b.check_in, b.check_out,
       b.total_nights, b.order_total_cents, b.created_at
FROM bookings b
JOIN properties p ON p.id = b.property_id
WHERE b.profile_id = $1 AND b.status = 'confirmed'
ORDER BY b.created_at DESC, b.id DESC
LIMIT $2
`

const bookingsByProfileAfterSQL = `
SELECT b.id, b.property_id, p.name, p.country, b.check_in, b.check_out,
       b.total_nights, b.order_total_cents, b.created_at
FROM bookings b
JOIN properties p ON p.id = b.property_id
WHERE b.profile_id = $1 AND b.status = 'confirmed'
  AND (b.created_at, b.id) < ($2, $3)
ORDER BY b.created_at DESC, b.id DESC
LIMIT $4
`

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

var _ queries.BookingReadStore = (*BookingReadStore)(nil)

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var view queries.BookingView
	err := r.pool.QueryRow(ctx, bookingByIDSQL, id).Scan(
		&view.ID, &view.PropertyID, &view.PropertyName, &view.ProfileID,
		&view.CheckIn, &view.CheckOut, &view.TotalNights, &view.OrderTotalCents,
		&view.Status, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return &view, nil
}

func (r *BookingReadStore) FindByProfileID(ctx context.Context, profileID uuid.UUID, after *queries.ListKey, limit int32) ([]*queries.BookingListItem, error) {
	var rows pgx.Rows
	var err error
	if after != nil {
		rows, err = r.pool.Query(ctx, bookingsByProfileAfterSQL, profileID, after.CreatedAt, after.ID, limit)
	} else {
		rows, err = r.pool.Query(ctx, bookingsByProfileSQL, profileID, limit)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by profile", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID, &item.PropertyID, &item.PropertyName, &item.PropertyCountry,
			&item.CheckIn, &item.CheckOut, &item.TotalNights, &item.OrderTotalCents,
			&item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return items, nil
}
