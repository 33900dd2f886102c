package usecase

import (
	"context"
	"time"

	"homestay/internal/domain/booking"

	"github.com/google/uuid"
)

// BookingContext is the hydration payload for one property: everything a
// booking session needs to answer availability and pricing locally.
type BookingContext struct {
	PropertyID    uuid.UUID
	PropertyName  string
	NightlyPrice  booking.Money
	ExistingStays []booking.StayRange
}

// NewBooking is the write-side payload handed to the persistence
// boundary on confirm. Totals are precomputed from the validated
// selection; the store re-checks only the overlap invariant.
type NewBooking struct {
	PropertyID  uuid.UUID
	ProfileID   uuid.UUID
	CheckIn     time.Time
	CheckOut    time.Time
	TotalNights int
	OrderTotal  booking.Money
}

// BookingContextReader is the read path for hydration. Idempotent; may
// be called repeatedly to refresh a stale availability snapshot.
type BookingContextReader interface {
	BookingContext(ctx context.Context, propertyID uuid.UUID) (*BookingContext, error)
}

// BookingWriter is the authoritative write path. CreateBooking must be
// atomic with respect to the no-overlapping-stays invariant and surface
// a concurrent winner as a conflict.
type BookingWriter interface {
	CreateBooking(ctx context.Context, b NewBooking) (uuid.UUID, error)
	DeleteBooking(ctx context.Context, profileID, bookingID uuid.UUID) error
}
