package queries

import (
	"context"
	"time"

	"homestay/internal/domain/booking"
	"homestay/internal/infra"
	"homestay/internal/pkg/errs"
	"homestay/internal/usecase"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type StayView struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

// BookingContextView is the hydration payload plus the derived
// calendar guidance (disabled dates).
type BookingContextView struct {
	PropertyID        uuid.UUID   `json:"property_id"`
	PropertyName      string      `json:"property_name"`
	NightlyPriceCents int64       `json:"nightly_price_cents"`
	ExistingStays     []StayView  `json:"existing_stays"`
	DisabledDates     []time.Time `json:"disabled_dates"`
}

type BookingView struct {
	ID              uuid.UUID `json:"id"`
	PropertyID      uuid.UUID `json:"property_id"`
	PropertyName    string    `json:"property_name"`
	ProfileID       uuid.UUID `json:"profile_id"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	TotalNights     int32     `json:"total_nights"`
	OrderTotalCents int64     `json:"order_total_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID              uuid.UUID `json:"id"`
	PropertyID      uuid.UUID `json:"property_id"`
	PropertyName    string    `json:"property_name"`
	PropertyCountry string    `json:"property_country"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	TotalNights     int32     `json:"total_nights"`
	OrderTotalCents int64     `json:"order_total_cents"`
	CreatedAt       time.Time `json:"created_at"`
}

// ListKey is the keyset position for the booking list: newest first,
// ordered by (created_at, id) descending.
type ListKey struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

type BookingQueries interface {
	GetBookingContext(ctx context.Context, propertyID uuid.UUID) (*BookingContextView, error)
	GetByID(ctx context.Context, profileID, id uuid.UUID) (*BookingView, error)
	ListByProfile(ctx context.Context, profileID uuid.UUID, after *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByProfileID(ctx context.Context, profileID uuid.UUID, after *ListKey, limit int32) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	contextReader usecase.BookingContextReader
	store         BookingReadStore
}

func NewBookingQueries(contextReader usecase.BookingContextReader, store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{
		contextReader: contextReader,
		store:         store,
	}
}

func (q *bookingQueriesImpl) GetBookingContext(ctx context.Context, propertyID uuid.UUID) (*BookingContextView, error) {
	bc, err := q.contextReader.BookingContext(ctx, propertyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrPropertyNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	stays := make([]StayView, len(bc.ExistingStays))
	for i, stay := range bc.ExistingStays {
		stays[i] = StayView{CheckIn: stay.CheckIn(), CheckOut: stay.CheckOut()}
	}

	return &BookingContextView{
		PropertyID:        bc.PropertyID,
		PropertyName:      bc.PropertyName,
		NightlyPriceCents: bc.NightlyPrice.Cents(),
		ExistingStays:     stays,
		DisabledDates:     booking.BuildAvailability(bc.ExistingStays).DisabledDates(),
	}, nil
}

// GetByID is owner-scoped: someone else's booking reads as not found.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, profileID, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if view.ProfileID != profileID {
		return nil, errs.ErrBookingNotFound
	}
	return view, nil
}

// ListByProfile pages newest-first. Fetches one row past the limit to
// decide whether a next cursor exists.
func (q *bookingQueriesImpl) ListByProfile(ctx context.Context, profileID uuid.UUID, after *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	var key *ListKey
	if after != nil && after.After != "" {
		createdAt, id, err := DecodeAfterCursor(after.After)
		if err != nil {
			return nil, nil, errs.Mark(err, errs.ErrInvalidCursor)
		}
		key = &ListKey{CreatedAt: createdAt, ID: id}
	}

	items, err := q.store.FindByProfileID(ctx, profileID, key, int32(limit+1))
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	var next *Cursor
	if len(items) > limit {
		items = items[:limit]
		last := items[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return items, next, nil
}
