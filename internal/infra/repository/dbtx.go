package repository

import (
	"context"
	"errors"
	"log/slog"

	"hotel-booking-engine/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
	pgErrExclusionViolation  = "23P01"
)

// wrapErr classifies a pgx error into a repository error kind.
func wrapErr(msg string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, msg, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrUniqueViolation:
			return infra.WrapRepoErr(slog.Default(), infra.KindDuplicateKey, msg, err)
		case pgErrForeignKeyViolation:
			return infra.WrapRepoErr(slog.Default(), infra.KindForeignKeyViolated, msg, err)
		case pgErrExclusionViolation:
			return infra.WrapRepoErr(slog.Default(), infra.KindConflict, msg, err)
		}
	}
	return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, msg, err)
}

func notFound(msg string) error {
	return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, msg, nil)
}
