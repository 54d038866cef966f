package remote

import (
	"context"
	"strings"

	"reservation-agent/internal/reservation"
	"reservation-agent/internal/reservation/repository"
	pkgLog "reservation-agent/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a Repository backed by the external booking service.
func New(client *Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{client: client, l: l}
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (reservation.Reservation, error) {
	created, err := r.client.CreateReservation(ctx, CreateReservationRequest{
		UserID:  opt.UserID,
		Date:    opt.Date,
		Time:    opt.Time,
		Purpose: opt.Purpose,
	})
	if err != nil {
		r.l.Warnf(ctx, "remote repository: create for user=%s failed: %v", opt.UserID, err)
		return reservation.Reservation{}, err
	}

	res := toReservation(*created)
	// Echo the request where the server omitted fields.
	if res.UserID == "" {
		res.UserID = opt.UserID
	}
	if res.Date == "" {
		res.Date = opt.Date
	}
	if res.Time == "" {
		res.Time = opt.Time
	}
	if res.Purpose == "" {
		res.Purpose = opt.Purpose
	}
	if res.Status == "" {
		res.Status = reservation.StatusConfirmed
	}
	return res, nil
}

func (r *implRepository) ListByUser(ctx context.Context, userID string) ([]reservation.Reservation, error) {
	list, err := r.client.ListReservations(ctx, userID)
	if err != nil {
		r.l.Warnf(ctx, "remote repository: list for user=%s failed: %v", userID, err)
		return nil, err
	}

	out := make([]reservation.Reservation, 0, len(list))
	for _, item := range list {
		out = append(out, toReservation(item))
	}
	return out, nil
}

func (r *implRepository) DeleteByUser(ctx context.Context, userID string) error {
	if err := r.client.DeleteReservations(ctx, userID); err != nil {
		r.l.Warnf(ctx, "remote repository: delete for user=%s failed: %v", userID, err)
		return err
	}
	return nil
}

// toReservation normalizes server formats: TIME columns come back as HH:MM:SS.
func toReservation(in Reservation) reservation.Reservation {
	t := in.Time
	if len(t) == len("15:04:05") && strings.Count(t, ":") == 2 {
		t = t[:5]
	}
	return reservation.Reservation{
		ID:        string(in.ID),
		UserID:    string(in.UserID),
		Date:      in.Date,
		Time:      t,
		Purpose:   in.Purpose,
		Status:    in.Status,
		CreatedAt: in.CreatedAt.Time(),
		UpdatedAt: in.UpdatedAt.Time(),
	}
}
