package errs

// Error classes shared by every layer. Concrete errors are marked with one of
// these so handlers can map them without knowing the originating package.
var (
	ErrValidation           = New("validation error")
	ErrPolicyViolation      = New("policy violation")
	ErrIneligibleStatus     = New("ineligible status")
	ErrRoomConflict         = New("room conflict")
	ErrPendingChargesBlock  = New("pending charges block")
	ErrInvoiceAlreadyExists = New("invoice already exists")
	ErrConflict             = New("conflict")
	ErrNotFound             = New("not found")
	ErrStoreUnavailable     = New("store unavailable")
	ErrStaleBooking         = New("stale booking")
	ErrUnauthorized         = New("unauthorized")
)

type Code string

const (
	CodeValidation           Code = "VALIDATION_ERROR"
	CodePolicyViolation      Code = "POLICY_VIOLATION"
	CodeIneligibleStatus     Code = "INELIGIBLE_STATUS"
	CodeRoomConflict         Code = "ROOM_CONFLICT"
	CodePendingChargesBlock  Code = "PENDING_CHARGES"
	CodeInvoiceAlreadyExists Code = "INVOICE_ALREADY_EXISTS"
	CodeConflict             Code = "CONFLICT"
	CodeNotFound             Code = "NOT_FOUND"
	CodeStoreUnavailable     Code = "STORE_UNAVAILABLE"
	CodeStaleBooking         Code = "STALE_BOOKING"
	CodeUnauthorized         Code = "UNAUTHORIZED"
	CodeInternal             Code = "INTERNAL_ERROR"
)

var classes = []struct {
	err  error
	code Code
}{
	{ErrValidation, CodeValidation},
	{ErrPolicyViolation, CodePolicyViolation},
	{ErrIneligibleStatus, CodeIneligibleStatus},
	{ErrRoomConflict, CodeRoomConflict},
	{ErrPendingChargesBlock, CodePendingChargesBlock},
	{ErrInvoiceAlreadyExists, CodeInvoiceAlreadyExists},
	{ErrConflict, CodeConflict},
	{ErrNotFound, CodeNotFound},
	{ErrStaleBooking, CodeStaleBooking},
	{ErrUnauthorized, CodeUnauthorized},
	{ErrStoreUnavailable, CodeStoreUnavailable},
}

// KindOf returns the wire code of the first class err is marked with.
func KindOf(err error) Code {
	if err == nil {
		return ""
	}
	for _, c := range classes {
		if Is(err, c.err) {
			return c.code
		}
	}
	return CodeInternal
}

// Retryable reports whether a caller may safely repeat the request.
func Retryable(err error) bool {
	return Is(err, ErrStoreUnavailable)
}
