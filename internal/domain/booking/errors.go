package booking

import "hotel-booking-engine/internal/pkg/errs"

var (
	ErrInvalidStatus     = errs.Mark(errs.New("invalid booking status"), errs.ErrValidation)
	ErrInvalidStay       = errs.Mark(errs.New("check-out must be after check-in"), errs.ErrValidation)
	ErrNoRooms           = errs.Mark(errs.New("booking needs at least one room"), errs.ErrValidation)
	ErrDuplicateRoom     = errs.Mark(errs.New("room assigned twice to the same booking"), errs.ErrValidation)
	ErrNegativePrice     = errs.Mark(errs.New("room price cannot be negative"), errs.ErrValidation)
	ErrOccupancy         = errs.Mark(errs.New("occupancy exceeds room capacity"), errs.ErrValidation)
	ErrInvalidDownpay    = errs.Mark(errs.New("downpayment must be between zero and the billed total"), errs.ErrValidation)
	ErrRoomNotAssigned   = errs.Mark(errs.New("room is not assigned to this booking"), errs.ErrValidation)
	ErrSameRoom          = errs.Mark(errs.New("new room equals the current room"), errs.ErrValidation)
	ErrTotalBelowPayment = errs.Mark(errs.New("new total would fall below the amount already paid"), errs.ErrValidation)

	ErrTransitionPolicy  = errs.Mark(errs.New("status can only be set through the approval or cancellation workflow"), errs.ErrPolicyViolation)
	ErrIllegalTransition = errs.Mark(errs.New("illegal status transition"), errs.ErrPolicyViolation)

	ErrStayChangeNotAllowed = errs.Mark(errs.New("room change and extension require an approved or checked-in booking"), errs.ErrIneligibleStatus)
	ErrBookingClosed        = errs.Mark(errs.New("booking is checked out or cancelled"), errs.ErrIneligibleStatus)
)
