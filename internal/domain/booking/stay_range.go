package booking

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidRange = errors.New("check-in must be before check-out")

// StayRange is a half-open [checkIn, checkOut) span of calendar days.
// Immutable once constructed; compared only by value.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

// NewStayRange truncates both endpoints to day granularity before
// validating. Time-of-day components are ignored so a night count is
// always an exact integer.
func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	in := Day(checkIn)
	out := Day(checkOut)
	if !in.Before(out) {
		return StayRange{}, ErrInvalidRange
	}
	return StayRange{checkIn: in, checkOut: out}, nil
}

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func (r StayRange) CheckIn() time.Time {
	return r.checkIn
}

func (r StayRange) CheckOut() time.Time {
	return r.checkOut
}

// Overlaps reports whether two stays share at least one night.
// Touching endpoints do not overlap: a checkout day may equal the next
// guest's check-in day.
func (r StayRange) Overlaps(other StayRange) bool {
	return r.checkIn.Before(other.checkOut) && other.checkIn.Before(r.checkOut)
}

func (r StayRange) Nights() int {
	return int(r.checkOut.Sub(r.checkIn) / (24 * time.Hour))
}

func (r StayRange) Equal(other StayRange) bool {
	return r.checkIn.Equal(other.checkIn) && r.checkOut.Equal(other.checkOut)
}

func (r StayRange) String() string {
	return fmt.Sprintf("[%s,%s)", r.checkIn.Format(time.DateOnly), r.checkOut.Format(time.DateOnly))
}
