package usecase

import (
	"context"

	"homestay/internal/infra"
	"homestay/internal/pkg/errs"

	"github.com/google/uuid"
)

// BookingCommands covers booking mutations outside the session flow.
type BookingCommands interface {
	Delete(ctx context.Context, profileID, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	writer BookingWriter
}

func NewBookingCommands(writer BookingWriter) BookingCommands {
	return &bookingCommandsImpl{writer: writer}
}

// Delete removes one of the caller's own bookings. The write path scopes
// the delete to the owning profile, so a foreign id reads as not found.
func (u *bookingCommandsImpl) Delete(ctx context.Context, profileID, bookingID uuid.UUID) error {
	if err := u.writer.DeleteBooking(ctx, profileID, bookingID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrBookingNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
