//go:build unit

package booking_test

import (
	"testing"

	"hotel-booking-engine/internal/domain/booking"
	"hotel-booking-engine/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTransition(t *testing.T) {
	type tc struct {
		name        string
		current     booking.Status
		target      booking.Status
		path        booking.Path
		wantChanged bool
		errIs       error
	}

	cases := []tc{
		{name: "pending to approved via workflow", current: booking.StatusPending, target: booking.StatusApproved, path: booking.PathWorkflow, wantChanged: true},
		{name: "pending to cancelled via workflow", current: booking.StatusPending, target: booking.StatusCancelled, path: booking.PathWorkflow, wantChanged: true},
		{name: "approved to checked-in via staff", current: booking.StatusApproved, target: booking.StatusCheckedIn, path: booking.PathStaff, wantChanged: true},
		{name: "checked-in to checked-out via staff", current: booking.StatusCheckedIn, target: booking.StatusCheckedOut, path: booking.PathStaff, wantChanged: true},
		{name: "same status is a no-op", current: booking.StatusCheckedIn, target: booking.StatusCheckedIn, path: booking.PathStaff},
		{name: "pending to checked-in skips approval", current: booking.StatusPending, target: booking.StatusCheckedIn, path: booking.PathStaff, errIs: booking.ErrIllegalTransition},
		{name: "checked-in cannot be cancelled", current: booking.StatusCheckedIn, target: booking.StatusCancelled, path: booking.PathWorkflow, errIs: booking.ErrIllegalTransition},
		{name: "checked-out is terminal", current: booking.StatusCheckedOut, target: booking.StatusCheckedIn, path: booking.PathStaff, errIs: booking.ErrIllegalTransition},
		{name: "cancelled is terminal", current: booking.StatusCancelled, target: booking.StatusPending, path: booking.PathStaff, errIs: booking.ErrIllegalTransition},
		{name: "unknown target", current: booking.StatusPending, target: booking.Status(42), path: booking.PathStaff, errIs: booking.ErrInvalidStatus},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			changed, err := booking.ValidateTransition(c.current, c.target, c.path)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.False(t, changed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.wantChanged, changed)
		})
	}
}

func TestValidateTransition_StaffPathPolicy(t *testing.T) {
	for _, current := range booking.AllStatuses() {
		for _, target := range []booking.Status{booking.StatusApproved, booking.StatusCancelled} {
			t.Run(current.String()+"->"+target.String(), func(t *testing.T) {
				changed, err := booking.ValidateTransition(current, target, booking.PathStaff)
				require.ErrorIs(t, err, booking.ErrTransitionPolicy)
				assert.True(t, errs.Is(err, errs.ErrPolicyViolation))
				assert.False(t, changed)
			})
		}
	}
}

func TestParseStatus(t *testing.T) {
	s, err := booking.ParseStatus(" checked-in ")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusCheckedIn, s)
	assert.Equal(t, "Checked-In", s.String())
	assert.Equal(t, 3, s.ID())

	_, err = booking.ParseStatus("Confirmed")
	require.ErrorIs(t, err, booking.ErrInvalidStatus)

	fromID, err := booking.StatusFromID(5)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusCancelled, fromID)

	_, err = booking.StatusFromID(0)
	require.ErrorIs(t, err, booking.ErrInvalidStatus)
}

func TestStatusCapabilities(t *testing.T) {
	assert.True(t, booking.StatusApproved.AllowsStayChange())
	assert.True(t, booking.StatusCheckedIn.AllowsStayChange())
	assert.False(t, booking.StatusPending.AllowsStayChange())
	assert.False(t, booking.StatusCheckedOut.AllowsStayChange())

	assert.True(t, booking.StatusCheckedOut.AllowsInvoicing())
	assert.False(t, booking.StatusPending.AllowsInvoicing())
	assert.False(t, booking.StatusCancelled.AllowsInvoicing())

	assert.True(t, booking.StatusPending.HoldsRoom())
	assert.False(t, booking.StatusCancelled.HoldsRoom())
	assert.False(t, booking.StatusCheckedOut.HoldsRoom())
}
