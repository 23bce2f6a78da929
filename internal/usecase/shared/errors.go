package shared

import (
	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/pkg/errs"
)

var (
	ErrBookingNotFound  = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
	ErrRoomNotFound     = errs.Mark(errs.New("room not found"), errs.ErrNotFound)
	ErrChargeNotFound   = errs.Mark(errs.New("charge not found"), errs.ErrNotFound)
	ErrDiscountNotFound = errs.Mark(errs.New("discount not found"), errs.ErrNotFound)
	ErrInvoiceNotFound  = errs.Mark(errs.New("invoice not found"), errs.ErrNotFound)

	ErrStaleBooking = errs.Mark(errs.New("booking changed since it was read"), errs.ErrStaleBooking)
	ErrHoldConflict = errs.Mark(errs.New("overlapping room hold rejected by the store"), errs.ErrRoomConflict)

	ErrDuplicateRecord  = errs.Mark(errs.New("record already exists"), errs.ErrConflict)
	ErrMissingReference = errs.Mark(errs.New("referenced record does not exist"), errs.ErrValidation)
)

// RepoErr turns a repository error into the use case error a caller can act on.
// notFound replaces missing rows when given. Only failures of the store itself
// are marked unavailable and therefore retryable.
func RepoErr(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound) && notFound != nil:
		return notFound
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrNotFound)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Wrap(ErrDuplicateRecord, err.Error())
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Wrap(ErrMissingReference, err.Error())
	case infra.IsKind(err, infra.KindStale):
		return errs.Wrap(ErrStaleBooking, err.Error())
	case infra.IsKind(err, infra.KindConflict):
		return errs.Wrap(ErrHoldConflict, err.Error())
	default:
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}
}
