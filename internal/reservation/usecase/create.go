package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"reservation-agent/internal/model"
	"reservation-agent/internal/reservation"
	repo "reservation-agent/internal/reservation/repository"
	"reservation-agent/pkg/datemath"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Create extracts the appointment from free text and books it.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input reservation.CreateInput) (reservation.CreateOutput, error) {
	if sc.UserID == "" {
		return reservation.CreateOutput{}, reservation.ErrMissingUser
	}

	dt, err := datemath.Extract(input.RawText, uc.referenceYear())
	if err != nil {
		uc.l.Infof(ctx, "reservation usecase: user=%s could not parse %q: %v", sc.UserID, input.RawText, err)
		return reservation.CreateOutput{}, fmt.Errorf("%w: %w", reservation.ErrUnparsableInput, err)
	}

	out, err := uc.Book(ctx, sc, reservation.BookInput{Date: dt.Date(), Time: dt.Time()})
	if err != nil {
		return reservation.CreateOutput{}, err
	}

	return reservation.CreateOutput{
		Reservation: out.Reservation,
		Message:     reservation.CreatedMessage(out.Reservation),
	}, nil
}

// Book validates a structured date and time and persists it.
func (uc *implUseCase) Book(ctx context.Context, sc model.Scope, input reservation.BookInput) (reservation.BookOutput, error) {
	if sc.UserID == "" {
		return reservation.BookOutput{}, reservation.ErrMissingUser
	}
	if strings.TrimSpace(input.Date) == "" || strings.TrimSpace(input.Time) == "" {
		return reservation.BookOutput{}, reservation.ErrInvalidPayload
	}

	start, err := time.ParseInLocation(dateLayout+" "+timeLayout, input.Date+" "+input.Time, uc.cfg.Location)
	if err != nil {
		return reservation.BookOutput{}, fmt.Errorf("%w: %v", reservation.ErrInvalidDateTime, err)
	}

	purpose := input.Purpose
	if purpose == "" {
		purpose = uc.cfg.Purpose
	}

	res, err := uc.repo.Create(ctx, repo.CreateOptions{
		UserID:  sc.UserID,
		Date:    input.Date,
		Time:    input.Time,
		Purpose: purpose,
	})
	if err != nil {
		uc.l.Warnf(ctx, "reservation usecase: create for user=%s failed: %v", sc.UserID, err)
		return reservation.BookOutput{}, err
	}

	uc.l.Infof(ctx, "reservation usecase: booked user=%s date=%s time=%s", sc.UserID, res.Date, res.Time)
	uc.mirrorCreate(ctx, res, start)

	return reservation.BookOutput{Reservation: res}, nil
}

func (uc *implUseCase) referenceYear() int {
	if uc.cfg.ReferenceYear > 0 {
		return uc.cfg.ReferenceYear
	}
	return uc.now().In(uc.cfg.Location).Year()
}
