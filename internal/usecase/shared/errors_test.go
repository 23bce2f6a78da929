//go:build unit

package shared_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"hotel-booking-engine/internal/infra"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
)

func TestRepoErr(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repoErr := func(kind infra.RepositoryErrorKind) error {
		return infra.WrapRepoErr(logger, kind, "store call", errs.New("driver said no"))
	}

	cases := []struct {
		name      string
		err       error
		notFound  error
		wantCode  errs.Code
		wantIs    error
		retryable bool
	}{
		{
			name:     "missing row with domain error",
			err:      repoErr(infra.KindNotFound),
			notFound: shared.ErrBookingNotFound,
			wantCode: errs.CodeNotFound,
			wantIs:   shared.ErrBookingNotFound,
		},
		{
			name:     "missing row without domain error",
			err:      repoErr(infra.KindNotFound),
			wantCode: errs.CodeNotFound,
		},
		{
			name:     "duplicate key",
			err:      repoErr(infra.KindDuplicateKey),
			wantCode: errs.CodeConflict,
			wantIs:   shared.ErrDuplicateRecord,
		},
		{
			name:     "foreign key",
			err:      repoErr(infra.KindForeignKeyViolated),
			wantCode: errs.CodeValidation,
			wantIs:   shared.ErrMissingReference,
		},
		{
			name:     "exclusion constraint",
			err:      repoErr(infra.KindConflict),
			wantCode: errs.CodeRoomConflict,
			wantIs:   shared.ErrHoldConflict,
		},
		{
			name:     "version mismatch",
			err:      repoErr(infra.KindStale),
			wantCode: errs.CodeStaleBooking,
			wantIs:   shared.ErrStaleBooking,
		},
		{
			name:      "db failure",
			err:       repoErr(infra.KindDBFailure),
			wantCode:  errs.CodeStoreUnavailable,
			retryable: true,
		},
		{
			name:      "unclassified error",
			err:       context.DeadlineExceeded,
			wantCode:  errs.CodeStoreUnavailable,
			retryable: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := shared.RepoErr(tc.err, tc.notFound)

			assert.Equal(t, tc.wantCode, errs.KindOf(got))
			assert.Equal(t, tc.retryable, errs.Retryable(got))
			if tc.wantIs != nil {
				assert.True(t, errs.Is(got, tc.wantIs), got.Error())
			}
		})
	}

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, shared.RepoErr(nil, shared.ErrRoomNotFound))
	})
}
