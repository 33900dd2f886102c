package readstore

import (
	"context"
	"time"

	"homestay/internal/domain/booking"
	"homestay/internal/infra"
	"homestay/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const propertyPricingSQL = `
SELECT name, price_cents
FROM properties
WHERE id = $1
`

const confirmedStaysSQL = `
SELECT check_in, check_out
FROM bookings
WHERE property_id = $1 AND status = 'confirmed'
ORDER BY check_in
`

// PropertyReadStore serves the hydration read path: a property's nightly
// price and its confirmed stays, materialized into domain values. The
// result is a snapshot; bookings confirmed afterwards are invisible
// until the caller re-hydrates.
type PropertyReadStore struct {
	pool *pgxpool.Pool
}

func NewPropertyReadStore(pool *pgxpool.Pool) *PropertyReadStore {
	return &PropertyReadStore{pool: pool}
}

var _ usecase.BookingContextReader = (*PropertyReadStore)(nil)

func (r *PropertyReadStore) BookingContext(ctx context.Context, propertyID uuid.UUID) (*usecase.BookingContext, error) {
	var name string
	var priceCents int64
	err := r.pool.QueryRow(ctx, propertyPricingSQL, propertyID).Scan(&name, &priceCents)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find property", err)
	}

	stays, err := r.confirmedStays(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	return &usecase.BookingContext{
		PropertyID:    propertyID,
		PropertyName:  name,
		NightlyPrice:  booking.NewMoney(priceCents),
		ExistingStays: stays,
	}, nil
}

func (r *PropertyReadStore) confirmedStays(ctx context.Context, propertyID uuid.UUID) ([]booking.StayRange, error) {
	rows, err := r.pool.Query(ctx, confirmedStaysSQL, propertyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load confirmed stays", err)
	}
	defer rows.Close()

	var stays []booking.StayRange
	for rows.Next() {
		var checkIn, checkOut time.Time
		if err := rows.Scan(&checkIn, &checkOut); err != nil {
			return nil, infra.WrapRepoErr("failed to scan stay row", err)
		}
		stay, err := booking.NewStayRange(checkIn, checkOut)
		if err != nil {
			// The table constraint forbids check_in >= check_out.
			return nil, infra.WrapRepoErr("malformed stay row", err)
		}
		stays = append(stays, stay)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate stay rows", err)
	}
	return stays, nil
}
