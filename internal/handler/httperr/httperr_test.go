//go:build unit

package httperr_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"

	"hotel-booking-engine/internal/handler/httperr"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func routerFailingWith(err error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/bookings/:id", func(c *gin.Context) {
		httperr.Abort(c, err)
	})
	return r
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestAbort(t *testing.T) {
	cases := []struct {
		name      string
		err       error
		status    int
		code      errs.Code
		retryable bool
	}{
		{
			name:      "store unavailable is retryable",
			err:       errs.Wrap(errs.Mark(errs.New("connection refused"), errs.ErrStoreUnavailable), "load booking"),
			status:    http.StatusServiceUnavailable,
			code:      errs.CodeStoreUnavailable,
			retryable: true,
		},
		{
			name:   "stale booking is not retryable",
			err:    errs.Mark(errs.New("booking changed since it was read"), errs.ErrStaleBooking),
			status: http.StatusConflict,
			code:   errs.CodeStaleBooking,
		},
		{
			name:   "generic conflict",
			err:    errs.Mark(errs.New("record already exists"), errs.ErrConflict),
			status: http.StatusConflict,
			code:   errs.CodeConflict,
		},
		{
			name:   "validation",
			err:    errs.Mark(errs.New("check-out must be after check-in"), errs.ErrValidation),
			status: http.StatusBadRequest,
			code:   errs.CodeValidation,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.PerformRequest(t, routerFailingWith(tc.err), http.MethodGet, "/api/bookings/1", nil, "")

			body := httptest.AssertErrorCode(t, w, tc.status, string(tc.code))
			assert.Equal(t, tc.retryable, body.Error.Retryable)
			assert.Equal(t, tc.err.Error(), body.Error.Message)
		})
	}
}

func TestAbort_InternalErrorIsLoggedWithStack(t *testing.T) {
	logs := captureLogs(t)

	w := httptest.PerformRequest(t, routerFailingWith(errs.New("nil breakdown")), http.MethodGet, "/api/bookings/1", nil, "")

	body := httptest.AssertErrorCode(t, w, http.StatusInternalServerError, string(errs.CodeInternal))
	assert.Equal(t, "Internal server error", body.Error.Message)
	assert.False(t, body.Error.Retryable)
	assert.NotContains(t, w.Body.String(), "nil breakdown")

	var entry struct {
		Msg   string   `json:"msg"`
		Error string   `json:"error"`
		Path  string   `json:"path"`
		Stack []string `json:"stack"`
	}
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry), logs.String())
	assert.Equal(t, "unclassified error", entry.Msg)
	assert.Equal(t, "nil breakdown", entry.Error)
	assert.Equal(t, "/api/bookings/:id", entry.Path)
	require.NotEmpty(t, entry.Stack)
	assert.LessOrEqual(t, len(entry.Stack), 12)
	assert.Equal(t, "nil breakdown", entry.Stack[0])
}

func TestAbort_ClassifiedErrorIsNotLogged(t *testing.T) {
	logs := captureLogs(t)

	w := httptest.PerformRequest(t, routerFailingWith(errs.Mark(errs.New("booking not found"), errs.ErrNotFound)),
		http.MethodGet, "/api/bookings/1", nil, "")

	httptest.AssertErrorCode(t, w, http.StatusNotFound, string(errs.CodeNotFound))
	assert.Empty(t, logs.String())
}

func TestBadRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/bookings", func(c *gin.Context) {
		httperr.BadRequest(c, errs.New("unexpected EOF"), "Invalid request body")
	})

	w := httptest.PerformRequest(t, r, http.MethodPost, "/api/bookings", nil, "")

	body := httptest.AssertErrorCode(t, w, http.StatusBadRequest, string(errs.CodeValidation))
	assert.Equal(t, "Invalid request body", body.Error.Message)
	assert.False(t, body.Error.Retryable)
}
