package reservation

import (
	"errors"
	"fmt"
)

// DefaultConflictMessage is shown when the booking service reports a conflict without a message.
const DefaultConflictMessage = "이미 예약이 존재합니다."

var (
	ErrMissingUser     = errors.New("user id is required")
	ErrUnparsableInput = errors.New("reservation text could not be parsed")
	ErrInvalidPayload  = errors.New("userId, date, time and purpose are required")
	ErrInvalidDateTime = errors.New("date must be YYYY-MM-DD and time HH:MM")
	ErrConflict        = errors.New("reservation already exists")
	ErrBookingService  = errors.New("booking service error")
)

// ConflictError is returned when the user already holds a reservation.
type ConflictError struct {
	Message string
	Details string
}

func (e *ConflictError) Error() string {
	if e.Message == "" {
		return DefaultConflictMessage
	}
	return e.Message
}

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// StatusError is an unexpected non-2xx answer from the booking service.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("booking service returned %d: %s", e.Code, e.Body)
}

func (e *StatusError) Is(target error) bool { return target == ErrBookingService }
