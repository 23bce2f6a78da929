package booking

import (
	"time"
)

const nightDuration = 24 * time.Hour

// Stay is the half-open interval [checkIn, checkOut).
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	if !checkOut.After(checkIn) {
		return Stay{}, ErrInvalidStay
	}
	return Stay{checkIn: checkIn, checkOut: checkOut}, nil
}

func (s Stay) CheckIn() time.Time  { return s.checkIn }
func (s Stay) CheckOut() time.Time { return s.checkOut }

func (s Stay) Duration() time.Duration {
	return s.checkOut.Sub(s.checkIn)
}

// Nights counts started nights; a partial day is billed as a full night.
func (s Stay) Nights() int {
	return CeilNights(s.Duration())
}

// Overlaps applies the half-open test: [a,b) and [c,d) conflict iff a < d and c < b.
func (s Stay) Overlaps(other Stay) bool {
	return s.checkIn.Before(other.checkOut) && other.checkIn.Before(s.checkOut)
}

func (s Stay) ExtendTo(newCheckOut time.Time) (Stay, error) {
	if !newCheckOut.After(s.checkOut) {
		return Stay{}, ErrInvalidStay
	}
	return Stay{checkIn: s.checkIn, checkOut: newCheckOut}, nil
}

func (s Stay) IsZero() bool {
	return s.checkIn.IsZero() && s.checkOut.IsZero()
}

func CeilNights(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	n := int(d / nightDuration)
	if d%nightDuration != 0 {
		n++
	}
	return n
}
