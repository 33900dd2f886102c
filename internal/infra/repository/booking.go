package repository

import (
	"context"

	"homestay/internal/infra"
	"homestay/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createBookingSQL = `
INSERT INTO bookings (id, property_id, profile_id, check_in, check_out, total_nights, order_total_cents, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, 'confirmed')
RETURNING id
`

const deleteBookingSQL = `
DELETE FROM bookings
WHERE id = $1 AND profile_id = $2
`

// BookingRepository is the authoritative write path. The bookings table
// carries an exclusion constraint over (property_id, daterange(check_in,
// check_out)), so an overlapping concurrent insert surfaces here as a
// conflict regardless of what any session's advisory snapshot said.
type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

var _ usecase.BookingWriter = (*BookingRepository)(nil)

func (r *BookingRepository) CreateBooking(ctx context.Context, b usecase.NewBooking) (uuid.UUID, error) {
	id := uuid.New()
	row := r.pool.QueryRow(ctx, createBookingSQL,
		id, b.PropertyID, b.ProfileID, b.CheckIn, b.CheckOut, b.TotalNights, b.OrderTotal.Cents())
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err, infra.KindFromPgError(err))
	}
	return id, nil
}

func (r *BookingRepository) DeleteBooking(ctx context.Context, profileID, bookingID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, deleteBookingSQL, bookingID, profileID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err, infra.KindFromPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
