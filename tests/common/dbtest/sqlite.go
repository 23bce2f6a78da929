//go:build unit || e2e

package dbtest

import (
	"context"
	"strings"
	"testing"

	"hotel-booking-engine/internal/infra/gormstore"
	"hotel-booking-engine/internal/pkg/config"
	"hotel-booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewSQLite opens a private in-memory store seeded with DefaultRooms.
func NewSQLite(t *testing.T) (*gorm.DB, shared.UnitOfWork) {
	t.Helper()

	name := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	db, cleanup, err := gormstore.Open(config.SQLiteConfig{
		DSN: "file:" + name + "?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	t.Cleanup(cleanup)

	require.NoError(t, gormstore.PutRooms(context.Background(), db, DefaultRooms()...))
	return db, gormstore.NewUoW(db)
}
