package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Invoke godoc
// @Summary     Chat with the reservation agent
// @Description Routes a Korean message to the agent, which may create or cancel the user's reservation.
// @Tags        Agent
// @Accept      json
// @Produce     json
// @Param       body body invokeReq true "Message and user"
// @Success     200  {object} invokeResp
// @Failure     400  {object} errorResp "Missing or oversized fields"
// @Failure     500  {object} errorResp "Agent failure"
// @Router      /invoke-agent/ [POST]
func (h *handler) Invoke(c *gin.Context) {
	ctx := c.Request.Context()

	var req invokeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "agent.delivery.http.Invoke: bind: %v", err)
		c.JSON(http.StatusBadRequest, errorResp{Error: errMissingFields.Error()})
		return
	}
	if err := req.validate(); err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Error: err.Error()})
		return
	}

	userID := strings.TrimSpace(string(req.UserID))
	h.l.Debugf(ctx, "agent.delivery.http.Invoke: user=%s message=%q", userID, req.Message)

	answer, err := h.agent.ProcessQuery(ctx, userID, req.Message)
	if err != nil {
		h.l.Errorf(ctx, "agent.delivery.http.Invoke: agent.ProcessQuery: %v", err)
		c.JSON(http.StatusInternalServerError, errorResp{Error: errAgentFailed.Error()})
		return
	}

	c.JSON(http.StatusOK, invokeResp{Response: answer})
}

// ClearHistory godoc
// @Summary     Forget a user's chat history
// @Tags        Agent
// @Param       userId path string true "User ID"
// @Success     204
// @Failure     500 {object} errorResp "History store failure"
// @Router      /invoke-agent/history/{userId} [DELETE]
func (h *handler) ClearHistory(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.agent.ClearHistory(ctx, c.Param("userId")); err != nil {
		h.l.Errorf(ctx, "agent.delivery.http.ClearHistory: %v", err)
		c.JSON(http.StatusInternalServerError, errorResp{Error: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
