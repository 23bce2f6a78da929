//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"hotel-booking-engine/internal/domain/staff"
	"hotel-booking-engine/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := jwt.NewService("test-secret", "front-office", time.Hour)
	id := uuid.New()

	token, err := svc.GenerateToken(id, staff.RoleFrontDesk)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "front_desk", claims.Role)
	assert.Equal(t, "front-office", claims.Issuer)
}

func TestService_Rejects(t *testing.T) {
	svc := jwt.NewService("test-secret", "front-office", time.Hour)

	t.Run("other secret", func(t *testing.T) {
		other := jwt.NewService("another-secret", "front-office", time.Hour)
		token, err := other.GenerateToken(uuid.New(), staff.RoleManager)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("other issuer", func(t *testing.T) {
		other := jwt.NewService("test-secret", "someone-else", time.Hour)
		token, err := other.GenerateToken(uuid.New(), staff.RoleManager)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired := jwt.NewService("test-secret", "front-office", -time.Minute)
		token, err := expired.GenerateToken(uuid.New(), staff.RoleViewer)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
