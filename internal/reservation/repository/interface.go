package repository

import (
	"context"

	"reservation-agent/internal/reservation"
)

// Repository is the booking store. Implementations report an existing
// reservation with *reservation.ConflictError.
//
//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, opt CreateOptions) (reservation.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]reservation.Reservation, error)
	DeleteByUser(ctx context.Context, userID string) error
}
