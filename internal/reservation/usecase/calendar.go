package usecase

import (
	"context"
	"fmt"
	"time"

	"reservation-agent/internal/reservation"
	"reservation-agent/pkg/gcalendar"
)

// calendarUserKey is the private extended property linking an event to its user.
const calendarUserKey = "reservation_user_id"

// mirrorCreate copies a reservation into Google Calendar. Failures are logged and swallowed:
// the booking store is the source of truth.
func (uc *implUseCase) mirrorCreate(ctx context.Context, res reservation.Reservation, start time.Time) {
	if uc.calendar == nil {
		return
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:        uc.cfg.CalendarID,
		Summary:           fmt.Sprintf("%s 예약 (%s)", res.Purpose, res.UserID),
		Description:       fmt.Sprintf("reservation %s for user %s", res.ID, res.UserID),
		StartTime:         start,
		EndTime:           start.Add(uc.cfg.AppointmentDuration),
		Timezone:          uc.cfg.Location.String(),
		PrivateProperties: map[string]string{calendarUserKey: res.UserID},
	})
	if err != nil {
		uc.l.Warnf(ctx, "reservation usecase: calendar mirror for user=%s failed (non-fatal): %v", res.UserID, err)
		return
	}
	uc.l.Debugf(ctx, "reservation usecase: calendar event %s created for user=%s", event.ID, res.UserID)
}

func (uc *implUseCase) mirrorCancel(ctx context.Context, userID string) {
	if uc.calendar == nil {
		return
	}

	n, err := uc.calendar.DeleteEventsByProperty(ctx, uc.cfg.CalendarID, calendarUserKey, userID)
	if err != nil {
		uc.l.Warnf(ctx, "reservation usecase: calendar cleanup for user=%s failed after %d deletions (non-fatal): %v", userID, n, err)
		return
	}
	uc.l.Debugf(ctx, "reservation usecase: removed %d calendar events for user=%s", n, userID)
}
