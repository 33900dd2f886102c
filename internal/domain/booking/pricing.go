package booking

import "errors"

var ErrNegativePrice = errors.New("price cannot be negative")

// Money is an amount in integer minor units (cents). Integer arithmetic
// keeps nightly totals exact; binary floating point is never involved.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) MulNights(nights int) Money {
	return Money{cents: m.cents * int64(nights)}
}

// Quote is the derived pricing for a validated stay: the night count and
// nights x nightly price. Never persisted as-is; recomputed whenever the
// candidate range changes.
type Quote struct {
	Nights     int
	OrderTotal Money
}

// QuoteFor is pure and idempotent, safe to call on every selection change.
func QuoteFor(r StayRange, nightlyPrice Money) Quote {
	nights := r.Nights()
	return Quote{
		Nights:     nights,
		OrderTotal: nightlyPrice.MulNights(nights),
	}
}
