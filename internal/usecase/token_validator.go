package usecase

import (
	"hotel-booking-engine/internal/domain/staff"
	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/pkg/jwt"
)

// TokenValidator turns a bearer token into the staff actor behind it.
type TokenValidator interface {
	ValidateToken(tokenString string) (staff.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (staff.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return staff.Actor{}, errs.Mark(err, errs.ErrUnauthorized)
	}

	role, err := staff.NewRole(claims.Role)
	if err != nil {
		return staff.Actor{}, err
	}

	return staff.Actor{ID: claims.UserID, Role: role}, nil
}
