package http

import (
	"errors"
	"net/http"

	"reservation-agent/internal/reservation"
	pkgErrors "reservation-agent/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// It returns nil for errors that should be answered with a 500.
func (h *handler) mapError(err error) error {
	var conflict *reservation.ConflictError
	switch {
	case errors.As(err, &conflict):
		return pkgErrors.NewHTTPError(http.StatusConflict, conflict.Error()).WithDetails(conflict.Details)
	case errors.Is(err, reservation.ErrInvalidPayload),
		errors.Is(err, reservation.ErrInvalidDateTime),
		errors.Is(err, reservation.ErrMissingUser):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return nil
	}
}
