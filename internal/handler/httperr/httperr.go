package httperr

import (
	"log/slog"
	"net/http"

	"hotel-booking-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Body struct {
	Code      errs.Code `json:"code"`
	Message   string    `json:"message"`
	Retryable bool      `json:"retryable,omitempty"`
}

type Response struct {
	Status  int  `json:"-"`
	Success bool `json:"success"`
	Error   Body `json:"error"`
	Detail  any  `json:"detail,omitempty"`
}

var statusByCode = map[errs.Code]int{
	errs.CodeValidation:           http.StatusBadRequest,
	errs.CodeUnauthorized:         http.StatusUnauthorized,
	errs.CodeNotFound:             http.StatusNotFound,
	errs.CodeRoomConflict:         http.StatusConflict,
	errs.CodeStaleBooking:         http.StatusConflict,
	errs.CodeInvoiceAlreadyExists: http.StatusConflict,
	errs.CodeConflict:             http.StatusConflict,
	errs.CodePolicyViolation:      http.StatusUnprocessableEntity,
	errs.CodeIneligibleStatus:     http.StatusUnprocessableEntity,
	errs.CodePendingChargesBlock:  http.StatusUnprocessableEntity,
	errs.CodeStoreUnavailable:     http.StatusServiceUnavailable,
}

// StatusOf maps an error class to its HTTP status. Unclassified errors are 500.
func StatusOf(code errs.Code) int {
	if s, ok := statusByCode[code]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, code errs.Code, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error = Body{Code: code, Message: msg, Retryable: errs.Retryable(err)}
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

const stackDepth = 12

// Abort classifies err and writes the matching envelope. Internal errors keep
// their message out of the response and go to the log with their stack.
func Abort(c *gin.Context, err error) {
	code := errs.KindOf(err)
	msg := err.Error()
	if code == errs.CodeInternal {
		msg = "Internal server error"
		slog.ErrorContext(c.Request.Context(), "unclassified error",
			"error", err.Error(),
			"method", c.Request.Method,
			"path", c.FullPath(),
			"stack", errs.ExtractStackLines(err, stackDepth),
		)
	}
	AbortWithError(c, StatusOf(code), code, err, msg, nil)
}

// BadRequest is for input rejected before it reaches a use case.
func BadRequest(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusBadRequest, errs.CodeValidation, err, msg, err.Error())
}
