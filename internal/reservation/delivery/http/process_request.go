package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"reservation-agent/internal/model"
	"reservation-agent/internal/reservation"
)

// processCreateReq binds and validates the create reservation request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, reservation.ErrInvalidPayload
	}
	return req, req.validate()
}

// processUserScope reads the :userId path parameter.
func (h *handler) processUserScope(c *gin.Context) (model.Scope, error) {
	userID := strings.TrimSpace(c.Param("userId"))
	if userID == "" {
		return model.Scope{}, reservation.ErrMissingUser
	}
	return model.Scope{UserID: userID}, nil
}
