package api

import (
	"net/http"

	"hotel-booking-engine/internal/domain/staff"
	resdto "hotel-booking-engine/internal/handler/dto/response"
	"hotel-booking-engine/internal/handler/httperr"
	"hotel-booking-engine/internal/handler/middleware"
	"hotel-booking-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.BadRequest(c, errs.Mark(err, errs.ErrValidation), "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func mustActor(c *gin.Context) (staff.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.CodeUnauthorized, errs.ErrUnauthorized, "Unauthorized", nil)
		return staff.Actor{}, false
	}
	return actor, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.BadRequest(c, errs.Mark(err, errs.ErrValidation), "Invalid request")
		return false
	}
	return true
}

func respond(c *gin.Context, status int, data any, err error) {
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resdto.OK(data))
}
