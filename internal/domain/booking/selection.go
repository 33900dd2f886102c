package booking

import (
	"errors"
	"time"

	"homestay/internal/pkg/clock"

	"github.com/google/uuid"
)

type Status string

const (
	StatusEmpty      Status = "empty"
	StatusSelecting  Status = "selecting"
	StatusValid      Status = "valid"
	StatusInvalid    Status = "invalid"
	StatusSubmitting Status = "submitting"
	StatusSubmitted  Status = "submitted"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// InvalidReason explains why a completed selection failed validation.
type InvalidReason string

const (
	ReasonPastDate             InvalidReason = "past_date"
	ReasonOverlap              InvalidReason = "overlap"
	ReasonZeroOrNegativeNights InvalidReason = "zero_or_negative_nights"
)

var (
	ErrNotHydrated        = errors.New("selection not hydrated")
	ErrNoCheckInSelected  = errors.New("no check-in selected")
	ErrSubmissionInFlight = errors.New("submission in flight")
	ErrAlreadySubmitted   = errors.New("selection already submitted")
	ErrNotConfirmable     = errors.New("selection is not confirmable")
)

// Selection is the per-session mutable cell behind the booking calendar:
// which property is being viewed, its nightly price, the availability
// snapshot, and the guest's in-progress check-in/check-out choice.
//
// One logical writer drives it (the session the guest is browsing in), so
// it carries no locking of its own; callers that multiplex sessions over
// concurrent transports serialize access themselves.
type Selection struct {
	clk clock.Clock

	hydrated     bool
	propertyID   uuid.UUID
	nightlyPrice Money
	availability *AvailabilityIndex

	pendingStart *time.Time
	candidate    *StayRange
	quote        *Quote
	status       Status
	reason       InvalidReason
}

func NewSelection(clk clock.Clock) *Selection {
	return &Selection{clk: clk, status: StatusEmpty}
}

// Hydrate installs the property context and availability snapshot,
// discarding any in-progress selection. Calling it again with identical
// input yields an index with identical answers.
func (s *Selection) Hydrate(propertyID uuid.UUID, nightlyPrice Money, stays []StayRange) {
	s.hydrated = true
	s.propertyID = propertyID
	s.nightlyPrice = nightlyPrice
	s.availability = BuildAvailability(stays)
	s.reset()
}

// Rehydrate swaps in a fresh availability snapshot while keeping the
// candidate, then re-validates it. Used after a conflicting writer won
// the race at the store: the retained range turns Invalid(Overlap) and
// the guest picks again.
func (s *Selection) Rehydrate(stays []StayRange) {
	if !s.hydrated {
		return
	}
	s.availability = BuildAvailability(stays)
	if s.candidate != nil && s.status != StatusSubmitting && s.status != StatusSubmitted {
		s.validate()
	}
}

func (s *Selection) SelectStart(date time.Time) error {
	if !s.hydrated {
		return ErrNotHydrated
	}
	switch s.status {
	case StatusSubmitting:
		return ErrSubmissionInFlight
	case StatusSubmitted:
		return ErrAlreadySubmitted
	}

	day := Day(date)
	s.pendingStart = &day
	s.candidate = nil
	s.quote = nil
	s.reason = ""
	s.status = StatusSelecting
	return nil
}

func (s *Selection) SelectEnd(date time.Time) error {
	if !s.hydrated {
		return ErrNotHydrated
	}
	if s.status != StatusSelecting || s.pendingStart == nil {
		return ErrNoCheckInSelected
	}

	day := Day(date)
	// Clicking the same day twice means "start over", not a zero-night stay.
	if day.Equal(*s.pendingStart) {
		s.reset()
		return nil
	}

	candidate := StayRange{checkIn: *s.pendingStart, checkOut: day}
	s.pendingStart = nil
	s.candidate = &candidate
	s.validate()
	return nil
}

// Clear discards the candidate from any state.
func (s *Selection) Clear() {
	s.reset()
}

// BeginSubmission gates confirmation on a validated selection. A Failed
// submission keeps its candidate and quote, so confirm can be retried
// without re-selecting dates.
func (s *Selection) BeginSubmission() error {
	if s.status != StatusValid && s.status != StatusFailed {
		return ErrNotConfirmable
	}
	if s.candidate == nil || s.quote == nil {
		return ErrNotConfirmable
	}
	s.status = StatusSubmitting
	return nil
}

// CompleteSubmission marks the session terminal.
func (s *Selection) CompleteSubmission() {
	if s.status == StatusSubmitting {
		s.status = StatusSubmitted
	}
}

// FailSubmission returns to a retryable state, candidate retained.
func (s *Selection) FailSubmission() {
	if s.status == StatusSubmitting {
		s.status = StatusFailed
	}
}

func (s *Selection) validate() {
	s.quote = nil
	candidate := *s.candidate
	switch {
	case !candidate.checkIn.Before(candidate.checkOut):
		s.invalidate(ReasonZeroOrNegativeNights)
	case candidate.checkIn.Before(clock.Today(s.clk)):
		s.invalidate(ReasonPastDate)
	case !s.availability.IsAvailable(candidate):
		s.invalidate(ReasonOverlap)
	default:
		quote := QuoteFor(candidate, s.nightlyPrice)
		s.quote = &quote
		s.reason = ""
		s.status = StatusValid
	}
}

func (s *Selection) invalidate(reason InvalidReason) {
	s.reason = reason
	s.status = StatusInvalid
}

func (s *Selection) reset() {
	s.pendingStart = nil
	s.candidate = nil
	s.quote = nil
	s.reason = ""
	s.status = StatusEmpty
}

func (s *Selection) Hydrated() bool       { return s.hydrated }
func (s *Selection) PropertyID() uuid.UUID { return s.propertyID }
func (s *Selection) NightlyPrice() Money  { return s.nightlyPrice }
func (s *Selection) Status() Status       { return s.status }
func (s *Selection) Reason() InvalidReason { return s.reason }

func (s *Selection) Availability() *AvailabilityIndex {
	return s.availability
}

func (s *Selection) PendingStart() *time.Time {
	if s.pendingStart == nil {
		return nil
	}
	d := *s.pendingStart
	return &d
}

func (s *Selection) Candidate() *StayRange {
	if s.candidate == nil {
		return nil
	}
	c := *s.candidate
	return &c
}

func (s *Selection) Quote() *Quote {
	if s.quote == nil {
		return nil
	}
	q := *s.quote
	return &q
}
