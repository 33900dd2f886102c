package request

import (
	"time"

	"github.com/google/uuid"
)

type OpenBookingSessionRequest struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
}

type SelectDateRequest struct {
	Date time.Time `json:"date" binding:"required"`
}

// SelectedDay truncates the payload to a calendar day in UTC. Clients
// send full timestamps; only the date part is meaningful for a stay.
func (r SelectDateRequest) SelectedDay() time.Time {
	d := r.Date.UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
