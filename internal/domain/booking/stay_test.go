//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-booking-engine/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d, hour int) time.Time {
	return time.Date(2025, 6, d, hour, 0, 0, 0, time.UTC)
}

func TestNewStay(t *testing.T) {
	_, err := booking.NewStay(day(10, 12), day(10, 12))
	require.ErrorIs(t, err, booking.ErrInvalidStay)

	_, err = booking.NewStay(day(10, 12), day(9, 12))
	require.ErrorIs(t, err, booking.ErrInvalidStay)

	s, err := booking.NewStay(day(7, 14), day(10, 12))
	require.NoError(t, err)
	assert.Equal(t, 3, s.Nights())
}

func TestCeilNights(t *testing.T) {
	cases := []struct {
		name string
		d    time.Duration
		want int
	}{
		{name: "zero", d: 0, want: 0},
		{name: "exactly one day", d: 24 * time.Hour, want: 1},
		{name: "one hour over", d: 25 * time.Hour, want: 2},
		{name: "two days", d: 48 * time.Hour, want: 2},
		{name: "one second", d: time.Second, want: 1},
		{name: "negative", d: -time.Hour, want: 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, booking.CeilNights(c.d))
		})
	}
}

func TestStayOverlaps(t *testing.T) {
	base, _ := booking.NewStay(day(10, 14), day(12, 12))

	cases := []struct {
		name     string
		in, out  time.Time
		overlaps bool
	}{
		{name: "identical", in: day(10, 14), out: day(12, 12), overlaps: true},
		{name: "inside", in: day(11, 0), out: day(11, 6), overlaps: true},
		{name: "starts at checkout", in: day(12, 12), out: day(14, 12), overlaps: false},
		{name: "ends at checkin", in: day(8, 14), out: day(10, 14), overlaps: false},
		{name: "straddles checkout", in: day(11, 14), out: day(13, 12), overlaps: true},
		{name: "well before", in: day(1, 0), out: day(2, 0), overlaps: false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			other, err := booking.NewStay(c.in, c.out)
			require.NoError(t, err)
			assert.Equal(t, c.overlaps, base.Overlaps(other))
			assert.Equal(t, c.overlaps, other.Overlaps(base))
		})
	}
}

func TestStayExtendTo(t *testing.T) {
	s, _ := booking.NewStay(day(7, 14), day(10, 12))

	_, err := s.ExtendTo(day(10, 12))
	require.ErrorIs(t, err, booking.ErrInvalidStay)

	ext, err := s.ExtendTo(day(12, 12))
	require.NoError(t, err)
	assert.Equal(t, day(7, 14), ext.CheckIn())
	assert.Equal(t, day(12, 12), ext.CheckOut())
}
