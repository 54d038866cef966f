package http

import (
	"github.com/gin-gonic/gin"

	"reservation-agent/pkg/response"
)

// Create godoc
// @Summary     Create a reservation
// @Description Books a reservation for a user. A user holds at most one reservation.
// @Tags        Reservations
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Reservation data"
// @Success     201  {object} reservationResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Conflict - reservation already exists"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/reservations [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	out, err := h.uc.Book(ctx, req.toScope(), req.toInput())
	if err != nil {
		h.fail(c, "uc.Book", err)
		return
	}

	response.Created(c, newReservationResp(out.Reservation))
}

// ListByUser godoc
// @Summary     List reservations of a user
// @Tags        Reservations
// @Produce     json
// @Param       userId path string true "User ID"
// @Success     200 {array}  reservationResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/reservations/user/{userId} [GET]
func (h *handler) ListByUser(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processUserScope(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	out, err := h.uc.ListByUser(ctx, sc)
	if err != nil {
		h.fail(c, "uc.ListByUser", err)
		return
	}

	response.OK(c, h.newListResp(out))
}

// DeleteByUser godoc
// @Summary     Cancel every reservation of a user
// @Tags        Reservations
// @Param       userId path string true "User ID"
// @Success     204
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/reservations/user/{userId} [DELETE]
func (h *handler) DeleteByUser(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processUserScope(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	if _, err := h.uc.Cancel(ctx, sc); err != nil {
		h.fail(c, "uc.Cancel", err)
		return
	}

	response.NoContent(c)
}

func (h *handler) fail(c *gin.Context, op string, err error) {
	if mapped := h.mapError(err); mapped != nil {
		response.Error(c, mapped, nil)
		return
	}
	h.l.Errorf(c.Request.Context(), "%s: %v", op, err)
	response.InternalError(c, err)
}
