package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"reservation-agent/internal/model"
	"reservation-agent/internal/reservation"
	repo "reservation-agent/internal/reservation/repository"
	"reservation-agent/pkg/datemath"
	"reservation-agent/pkg/gcalendar"
	"reservation-agent/pkg/log"
)

// mock dependencies

type mockRepo struct {
	mu        sync.Mutex
	created   []repo.CreateOptions
	deleted   []string
	createErr error
	deleteErr error
	listErr   error
}

func (m *mockRepo) Create(ctx context.Context, opt repo.CreateOptions) (reservation.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return reservation.Reservation{}, m.createErr
	}
	m.created = append(m.created, opt)
	return reservation.Reservation{
		ID: "r-1", UserID: opt.UserID, Date: opt.Date, Time: opt.Time,
		Purpose: opt.Purpose, Status: reservation.StatusConfirmed,
	}, nil
}

func (m *mockRepo) ListByUser(ctx context.Context, userID string) ([]reservation.Reservation, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []reservation.Reservation
	for _, c := range m.created {
		if c.UserID == userID {
			out = append(out, reservation.Reservation{UserID: c.UserID, Date: c.Date, Time: c.Time, Purpose: c.Purpose})
		}
	}
	return out, nil
}

func (m *mockRepo) DeleteByUser(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, userID)
	return nil
}

type mockCalendar struct {
	createErr error
	deleteErr error
	events    []gcalendar.CreateEventRequest
	swept     []string
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.events = append(m.events, req)
	return &gcalendar.Event{ID: "ev-1"}, nil
}

func (m *mockCalendar) DeleteEventsByProperty(ctx context.Context, calendarID, key, value string) (int, error) {
	if m.deleteErr != nil {
		return 0, m.deleteErr
	}
	m.swept = append(m.swept, key+"="+value)
	return 1, nil
}

func seoul(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func newTestUseCase(t *testing.T, r repo.Repository, cal Calendar, year int) *implUseCase {
	t.Helper()
	return New(log.NewNop(), r, cal, Config{ReferenceYear: year, Location: seoul(t), CalendarID: "clinic"})
}

var user = model.Scope{UserID: "42"}

func TestCreate_Success(t *testing.T) {
	r := &mockRepo{}
	uc := newTestUseCase(t, r, nil, 2025)

	out, err := uc.Create(context.Background(), user, reservation.CreateInput{RawText: "7월 30일 오후 2시에 진료 예약해줘"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := repo.CreateOptions{UserID: "42", Date: "2025-07-30", Time: "14:00", Purpose: "진료"}
	if len(r.created) != 1 || r.created[0] != want {
		t.Fatalf("unexpected repository call: %+v", r.created)
	}
	if out.Message != "2025-07-30 14:00에 '진료' 예약이 완료되었습니다." {
		t.Errorf("unexpected message: %q", out.Message)
	}
}

func TestCreate_ReferenceYearFromClock(t *testing.T) {
	r := &mockRepo{}
	uc := newTestUseCase(t, r, nil, 0)
	// 2026-12-31 20:00 UTC is already 2027 in Seoul.
	uc.now = func() time.Time { return time.Date(2026, 12, 31, 20, 0, 0, 0, time.UTC) }

	if _, err := uc.Create(context.Background(), user, reservation.CreateInput{RawText: "1월 2일 오전 9시"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.created[0].Date != "2027-01-02" || r.created[0].Time != "09:00" {
		t.Errorf("unexpected booking: %+v", r.created[0])
	}
}

func TestCreate_ExtractorFailures(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target error
	}{
		{"no time", "7월30일", datemath.ErrTimeFormat},
		{"no date", "오후2시", datemath.ErrDateFormat},
		{"february 30", "2월 30일 오전 9시", datemath.ErrCalendarConstruction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &mockRepo{}
			uc := newTestUseCase(t, r, nil, 2025)

			_, err := uc.Create(context.Background(), user, reservation.CreateInput{RawText: tt.input})
			if !errors.Is(err, reservation.ErrUnparsableInput) {
				t.Errorf("expected ErrUnparsableInput, got %v", err)
			}
			if !errors.Is(err, tt.target) {
				t.Errorf("expected %v in chain, got %v", tt.target, err)
			}
			if len(r.created) != 0 {
				t.Error("repository must not be called on parse failure")
			}
		})
	}
}

func TestCreate_Conflict(t *testing.T) {
	r := &mockRepo{createErr: &reservation.ConflictError{Message: "이미 예약이 존재합니다."}}
	cal := &mockCalendar{}
	uc := newTestUseCase(t, r, cal, 2025)

	_, err := uc.Create(context.Background(), user, reservation.CreateInput{RawText: "7월 30일 오후 2시"})
	if !errors.Is(err, reservation.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if reservation.CreateFailureMessage(err) != "이미 예약이 존재합니다." {
		t.Errorf("unexpected user message: %q", reservation.CreateFailureMessage(err))
	}
	if len(cal.events) != 0 {
		t.Error("calendar must not be touched when booking fails")
	}
}

func TestCreate_MissingUser(t *testing.T) {
	uc := newTestUseCase(t, &mockRepo{}, nil, 2025)
	if _, err := uc.Create(context.Background(), model.Scope{}, reservation.CreateInput{RawText: "7월 30일 오후 2시"}); !errors.Is(err, reservation.ErrMissingUser) {
		t.Errorf("expected ErrMissingUser, got %v", err)
	}
}

func TestBook_Validation(t *testing.T) {
	uc := newTestUseCase(t, &mockRepo{}, nil, 2025)
	ctx := context.Background()

	if _, err := uc.Book(ctx, user, reservation.BookInput{Date: "2025-07-30"}); !errors.Is(err, reservation.ErrInvalidPayload) {
		t.Errorf("expected ErrInvalidPayload, got %v", err)
	}
	if _, err := uc.Book(ctx, user, reservation.BookInput{Date: "2025-02-30", Time: "09:00"}); !errors.Is(err, reservation.ErrInvalidDateTime) {
		t.Errorf("expected ErrInvalidDateTime, got %v", err)
	}
	if _, err := uc.Book(ctx, user, reservation.BookInput{Date: "2025-07-30", Time: "2pm"}); !errors.Is(err, reservation.ErrInvalidDateTime) {
		t.Errorf("expected ErrInvalidDateTime, got %v", err)
	}

	out, err := uc.Book(ctx, user, reservation.BookInput{Date: "2025-07-30", Time: "14:00", Purpose: "검진"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Reservation.Purpose != "검진" {
		t.Errorf("explicit purpose should be kept, got %q", out.Reservation.Purpose)
	}
}

func TestBook_CalendarMirror(t *testing.T) {
	cal := &mockCalendar{}
	uc := newTestUseCase(t, &mockRepo{}, cal, 2025)

	if _, err := uc.Create(context.Background(), user, reservation.CreateInput{RawText: "7월 30일 오후 2시"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cal.events) != 1 {
		t.Fatalf("expected one calendar event, got %d", len(cal.events))
	}
	ev := cal.events[0]
	if ev.CalendarID != "clinic" || ev.PrivateProperties[calendarUserKey] != "42" {
		t.Errorf("unexpected event: %+v", ev)
	}
	wantStart := time.Date(2025, 7, 30, 14, 0, 0, 0, seoul(t))
	if !ev.StartTime.Equal(wantStart) || ev.EndTime.Sub(ev.StartTime) != 30*time.Minute {
		t.Errorf("unexpected event window: %v - %v", ev.StartTime, ev.EndTime)
	}
}

func TestBook_CalendarFailureIsNonFatal(t *testing.T) {
	uc := newTestUseCase(t, &mockRepo{}, &mockCalendar{createErr: errors.New("quota")}, 2025)

	if _, err := uc.Create(context.Background(), user, reservation.CreateInput{RawText: "7월 30일 오후 2시"}); err != nil {
		t.Fatalf("calendar failure must not fail the booking: %v", err)
	}
}

func TestCancel(t *testing.T) {
	r := &mockRepo{}
	cal := &mockCalendar{deleteErr: errors.New("calendar down")}
	uc := newTestUseCase(t, r, cal, 2025)

	out, err := uc.Cancel(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Message != "42번 사용자의 예약이 모두 취소되었습니다." {
		t.Errorf("unexpected message: %q", out.Message)
	}
	if len(r.deleted) != 1 || r.deleted[0] != "42" {
		t.Errorf("unexpected deletes: %v", r.deleted)
	}
}

func TestCancel_Failure(t *testing.T) {
	uc := newTestUseCase(t, &mockRepo{deleteErr: &reservation.StatusError{Code: 503, Body: "down"}}, nil, 2025)

	_, err := uc.Cancel(context.Background(), user)
	if !errors.Is(err, reservation.ErrBookingService) {
		t.Fatalf("expected booking service error, got %v", err)
	}
	if got := reservation.CancelFailureMessage(err); got != "예약 취소 실패: booking service returned 503: down" {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestListByUser(t *testing.T) {
	r := &mockRepo{}
	uc := newTestUseCase(t, r, nil, 2025)
	ctx := context.Background()

	if _, err := uc.Create(ctx, user, reservation.CreateInput{RawText: "7월 30일 오후 2시"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := uc.ListByUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Reservations) != 1 {
		t.Errorf("expected 1 reservation, got %d", len(out.Reservations))
	}

	r.listErr = errors.New("db down")
	if _, err := uc.ListByUser(ctx, user); err == nil {
		t.Error("expected list error")
	}
}
