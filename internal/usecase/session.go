package usecase

import (
	"context"
	"sync"
	"time"

	"homestay/internal/domain/booking"
	"homestay/internal/infra"
	"homestay/internal/pkg/clock"
	"homestay/internal/pkg/errs"

	"github.com/google/uuid"
)

// BookingSession owns one guest's Selection for one property view. The
// selection itself assumes a single logical writer; the mutex only
// serializes HTTP requests that race onto the same session id.
type BookingSession struct {
	mu sync.Mutex

	id        uuid.UUID
	profileID uuid.UUID
	selection *booking.Selection
	reader    BookingContextReader
	writer    BookingWriter
	clk       clock.Clock

	touchedAt time.Time
}

func newBookingSession(
	profileID uuid.UUID,
	reader BookingContextReader,
	writer BookingWriter,
	clk clock.Clock,
) *BookingSession {
	return &BookingSession{
		id:        uuid.New(),
		profileID: profileID,
		selection: booking.NewSelection(clk),
		reader:    reader,
		writer:    writer,
		clk:       clk,
		touchedAt: clk.Now(),
	}
}

func (s *BookingSession) ID() uuid.UUID        { return s.id }
func (s *BookingSession) ProfileID() uuid.UUID { return s.profileID }

// Hydrate loads the property's price and confirmed stays and resets the
// selection. Safe to call again to refresh the snapshot.
func (s *BookingSession) Hydrate(ctx context.Context, propertyID uuid.UUID) error {
	bc, err := s.fetchContext(ctx, propertyID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Hydrate(bc.PropertyID, bc.NightlyPrice, bc.ExistingStays)
	s.touch()
	return nil
}

func (s *BookingSession) SelectStart(date time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.selection.SelectStart(date)
}

func (s *BookingSession) SelectEnd(date time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.selection.SelectEnd(date)
}

func (s *BookingSession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.selection.Clear()
}

// Confirm submits the validated selection through the write boundary.
// A conflict means another guest won the race: the session re-hydrates
// its availability snapshot so the retained candidate re-validates
// against fresh data, and the caller surfaces a retryable conflict.
func (s *BookingSession) Confirm(ctx context.Context) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if err := s.selection.BeginSubmission(); err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrSelectionNotConfirmable)
	}

	candidate := s.selection.Candidate()
	quote := s.selection.Quote()

	bookingID, err := s.writer.CreateBooking(ctx, NewBooking{
		PropertyID:  s.selection.PropertyID(),
		ProfileID:   s.profileID,
		CheckIn:     candidate.CheckIn(),
		CheckOut:    candidate.CheckOut(),
		TotalNights: quote.Nights,
		OrderTotal:  quote.OrderTotal,
	})
	if err != nil {
		s.selection.FailSubmission()
		switch {
		case infra.IsKind(err, infra.KindConflict):
			s.refreshAvailability(ctx)
			return uuid.Nil, errs.Mark(err, errs.ErrBookingConflict)
		case infra.IsKind(err, infra.KindNotFound), infra.IsKind(err, infra.KindForeignKeyViolated):
			return uuid.Nil, errs.Mark(err, errs.ErrPropertyNotFound)
		default:
			return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	s.selection.CompleteSubmission()
	return bookingID, nil
}

func (s *BookingSession) Snapshot() *SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := &SessionView{
		ID:                s.id,
		PropertyID:        s.selection.PropertyID(),
		NightlyPriceCents: s.selection.NightlyPrice().Cents(),
		Status:            s.selection.Status().String(),
	}
	if reason := s.selection.Reason(); reason != "" {
		r := string(reason)
		view.Reason = &r
	}
	if start := s.selection.PendingStart(); start != nil {
		view.CheckIn = start
	}
	if candidate := s.selection.Candidate(); candidate != nil {
		in, out := candidate.CheckIn(), candidate.CheckOut()
		view.CheckIn = &in
		view.CheckOut = &out
	}
	if quote := s.selection.Quote(); quote != nil {
		nights := quote.Nights
		total := quote.OrderTotal.Cents()
		view.Nights = &nights
		view.OrderTotalCents = &total
	}
	return view
}

func (s *BookingSession) expiredAt(deadline time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touchedAt.Before(deadline)
}

func (s *BookingSession) touch() {
	s.touchedAt = s.clk.Now()
}

func (s *BookingSession) fetchContext(ctx context.Context, propertyID uuid.UUID) (*BookingContext, error) {
	bc, err := s.reader.BookingContext(ctx, propertyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrPropertyNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return bc, nil
}

// refreshAvailability is best-effort: failing to refresh after a lost
// race still leaves the session in Failed, which is retryable.
func (s *BookingSession) refreshAvailability(ctx context.Context) {
	bc, err := s.reader.BookingContext(ctx, s.selection.PropertyID())
	if err != nil {
		return
	}
	s.selection.Rehydrate(bc.ExistingStays)
}
