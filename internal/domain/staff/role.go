// Package staff models the hotel employee acting on a booking. Identities are
// issued elsewhere; the engine only reads them from the access token.
package staff

import (
	"hotel-booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidRole = errs.Mark(errs.New("invalid staff role"), errs.ErrUnauthorized)

type Role string

const (
	RoleViewer    Role = "viewer"
	RoleFrontDesk Role = "front_desk"
	RoleManager   Role = "manager"
)

var roleLevels = map[Role]int{
	RoleViewer:    1,
	RoleFrontDesk: 2,
	RoleManager:   3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleLevels[r]
	return ok
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// AtLeast reports whether r ranks the same as or above min.
func (r Role) AtLeast(min Role) bool {
	have, ok := roleLevels[r]
	need, okMin := roleLevels[min]
	return ok && okMin && have >= need
}

// Actor is who performed a mutation, recorded on payments and events.
type Actor struct {
	ID   uuid.UUID
	Role Role
}
