package http

import (
	"strings"

	"reservation-agent/internal/model"
	"reservation-agent/internal/reservation"
	"reservation-agent/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	UserID  string `json:"userId"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Purpose string `json:"purpose"`
}

func (r createReq) validate() error {
	if strings.TrimSpace(r.UserID) == "" || strings.TrimSpace(r.Date) == "" ||
		strings.TrimSpace(r.Time) == "" || strings.TrimSpace(r.Purpose) == "" {
		return reservation.ErrInvalidPayload
	}
	return nil
}

func (r createReq) toScope() model.Scope {
	return model.Scope{UserID: r.UserID}
}

func (r createReq) toInput() reservation.BookInput {
	return reservation.BookInput{
		Date:    r.Date,
		Time:    r.Time,
		Purpose: r.Purpose,
	}
}

// --- Response DTOs ---

// reservationResp uses the booking service field names so remote clients can read it.
type reservationResp struct {
	ID        string            `json:"id"`
	UserID    string            `json:"userId"`
	Date      string            `json:"date"`
	Time      string            `json:"time"`
	Purpose   string            `json:"purpose"`
	Status    string            `json:"status"`
	CreatedAt response.DateTime `json:"createdAt"`
	UpdatedAt response.DateTime `json:"updatedAt"`
}

func newReservationResp(r reservation.Reservation) reservationResp {
	return reservationResp{
		ID:        r.ID,
		UserID:    r.UserID,
		Date:      r.Date,
		Time:      r.Time,
		Purpose:   r.Purpose,
		Status:    r.Status,
		CreatedAt: response.DateTime(r.CreatedAt),
		UpdatedAt: response.DateTime(r.UpdatedAt),
	}
}

func (h *handler) newListResp(out reservation.ListOutput) []reservationResp {
	items := make([]reservationResp, len(out.Reservations))
	for i, r := range out.Reservations {
		items[i] = newReservationResp(r)
	}
	return items
}
