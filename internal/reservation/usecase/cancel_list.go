package usecase

import (
	"context"

	"reservation-agent/internal/model"
	"reservation-agent/internal/reservation"
)

// Cancel removes every reservation of the user.
func (uc *implUseCase) Cancel(ctx context.Context, sc model.Scope) (reservation.CancelOutput, error) {
	if sc.UserID == "" {
		return reservation.CancelOutput{}, reservation.ErrMissingUser
	}

	if err := uc.repo.DeleteByUser(ctx, sc.UserID); err != nil {
		uc.l.Warnf(ctx, "reservation usecase: cancel for user=%s failed: %v", sc.UserID, err)
		return reservation.CancelOutput{}, err
	}

	uc.l.Infof(ctx, "reservation usecase: cancelled all reservations of user=%s", sc.UserID)
	uc.mirrorCancel(ctx, sc.UserID)

	return reservation.CancelOutput{Message: reservation.CancelledMessage(sc.UserID)}, nil
}

// ListByUser returns the user's reservations.
func (uc *implUseCase) ListByUser(ctx context.Context, sc model.Scope) (reservation.ListOutput, error) {
	if sc.UserID == "" {
		return reservation.ListOutput{}, reservation.ErrMissingUser
	}

	list, err := uc.repo.ListByUser(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "reservation usecase: list for user=%s failed: %v", sc.UserID, err)
		return reservation.ListOutput{}, err
	}
	return reservation.ListOutput{Reservations: list}, nil
}
