//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"hotel-booking-engine/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	errRoomTaken := errs.Mark(errs.New("room 101 is held"), errs.ErrRoomConflict)

	cases := []struct {
		name string
		err  error
		want errs.Code
	}{
		{name: "nil", err: nil, want: ""},
		{name: "marked", err: errRoomTaken, want: errs.CodeRoomConflict},
		{name: "wrapped after marking", err: errs.Wrap(errRoomTaken, "change room"), want: errs.CodeRoomConflict},
		{name: "fmt wrapped", err: fmt.Errorf("outer: %w", errRoomTaken), want: errs.CodeRoomConflict},
		{name: "class itself", err: errs.ErrInvoiceAlreadyExists, want: errs.CodeInvoiceAlreadyExists},
		{name: "unmarked", err: errors.New("boom"), want: errs.CodeInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errs.KindOf(tc.err))
		})
	}
}

func TestMark(t *testing.T) {
	t.Run("nil error returns the mark", func(t *testing.T) {
		assert.Equal(t, errs.ErrNotFound, errs.Mark(nil, errs.ErrNotFound))
	})

	t.Run("original message is preserved", func(t *testing.T) {
		err := errs.Mark(errs.New("booking 42 not found"), errs.ErrNotFound)
		assert.Equal(t, "booking 42 not found", err.Error())
		assert.True(t, errs.Is(err, errs.ErrNotFound))
		assert.False(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestRetryable(t *testing.T) {
	assert.True(t, errs.Retryable(errs.Mark(errs.New("pool closed"), errs.ErrStoreUnavailable)))
	assert.False(t, errs.Retryable(errs.Mark(errs.New("bad date"), errs.ErrValidation)))
}
