package usecase

import (
	"context"
	"time"

	"reservation-agent/internal/reservation/repository"
	"reservation-agent/pkg/gcalendar"
	"reservation-agent/pkg/log"
)

// Calendar is the part of *gcalendar.Client used to mirror reservations.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	DeleteEventsByProperty(ctx context.Context, calendarID, key, value string) (int, error)
}

// Config holds the booking parameters.
type Config struct {
	ReferenceYear int // 0 means the current year in Location
	Location      *time.Location
	Purpose       string

	CalendarID          string
	AppointmentDuration time.Duration
}

// implUseCase is the private implementation of reservation.UseCase.
type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	calendar Calendar // nil disables the calendar mirror
	cfg      Config
	now      func() time.Time
}

// New creates a new reservation UseCase implementation.
func New(l log.Logger, repo repository.Repository, calendar Calendar, cfg Config) *implUseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Purpose == "" {
		cfg.Purpose = "진료"
	}
	if cfg.AppointmentDuration <= 0 {
		cfg.AppointmentDuration = 30 * time.Minute
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		calendar: calendar,
		cfg:      cfg,
		now:      time.Now,
	}
}
