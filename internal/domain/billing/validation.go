package billing

import (
	"fmt"

	"hotel-booking-engine/internal/pkg/errs"
)

var (
	ErrPendingCharges = errs.Mark(errs.New("pending charges must be approved or rejected before invoicing"), errs.ErrPendingChargesBlock)
	ErrNoAssignedRoom = errs.Mark(errs.New("booking has no assigned room"), errs.ErrValidation)
)

type Validation struct {
	IsComplete     bool
	PendingCharges int
	AssignedRooms  int
	Message        string
}

// Validate is the hard precondition for invoice creation.
func Validate(agg Aggregation) Validation {
	v := Validation{
		PendingCharges: agg.PendingCharges,
		AssignedRooms:  agg.AssignedRooms,
	}
	switch {
	case agg.AssignedRooms == 0:
		v.Message = "No rooms are assigned to this booking"
	case agg.PendingCharges > 0:
		v.Message = fmt.Sprintf("%d pending charge(s) must be resolved before invoicing", agg.PendingCharges)
	default:
		v.IsComplete = true
		v.Message = "Billing is ready for invoicing"
	}
	return v
}

func (v Validation) Err() error {
	if v.IsComplete {
		return nil
	}
	if v.AssignedRooms == 0 {
		return ErrNoAssignedRoom
	}
	return errs.Wrapf(ErrPendingCharges, "%d pending", v.PendingCharges)
}
