package booking

import (
	"sort"
	"time"
)

// AvailabilityIndex is a point-in-time snapshot of one property's
// confirmed stays. It answers overlap queries for the selection flow and
// is advisory only: the store's exclusion constraint remains the
// authoritative overlap check at booking-creation time.
//
// Stays are stored as given. The store guarantees confirmed stays never
// overlap each other, so no sorting or dedup happens here.
type AvailabilityIndex struct {
	stays []StayRange
}

func BuildAvailability(stays []StayRange) *AvailabilityIndex {
	copied := make([]StayRange, len(stays))
	copy(copied, stays)
	return &AvailabilityIndex{stays: copied}
}

// IsAvailable reports whether the candidate overlaps none of the stored
// stays. Linear scan: per-property stay counts are booking calendars,
// not global schedules. An interval tree would preserve the same
// semantics if counts ever grow large.
func (a *AvailabilityIndex) IsAvailable(candidate StayRange) bool {
	for _, stay := range a.stays {
		if candidate.Overlaps(stay) {
			return false
		}
	}
	return true
}

func (a *AvailabilityIndex) Stays() []StayRange {
	copied := make([]StayRange, len(a.stays))
	copy(copied, a.stays)
	return copied
}

// DisabledDates returns every day covered by a stored stay, sorted and
// deduplicated. Used to gray out calendar cells; IsAvailable stays the
// authoritative check.
func (a *AvailabilityIndex) DisabledDates() []time.Time {
	seen := make(map[time.Time]struct{})
	var days []time.Time
	for _, stay := range a.stays {
		for d := stay.checkIn; d.Before(stay.checkOut); d = d.AddDate(0, 0, 1) {
			if _, ok := seen[d]; ok {
				continue
			}
			seen[d] = struct{}{}
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}
