package reservation

import (
	"errors"
	"fmt"
	"testing"

	"reservation-agent/pkg/datemath"
)

func TestCreateFailureMessage(t *testing.T) {
	_, calErr := datemath.Extract("2월 30일 오전 9시", 2025)

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "date format",
			err:  fmt.Errorf("%w: %w", ErrUnparsableInput, datemath.ErrDateFormat),
			want: datemath.MsgDateFormat,
		},
		{
			name: "time format",
			err:  fmt.Errorf("%w: %w", ErrUnparsableInput, datemath.ErrTimeFormat),
			want: datemath.MsgTimeFormat,
		},
		{
			name: "calendar construction",
			err:  fmt.Errorf("%w: %w", ErrUnparsableInput, calErr),
			want: "예약 요청 처리 중 오류 발생: 2월 30일 9시는 존재하지 않는 날짜 또는 시간입니다.",
		},
		{
			name: "conflict with server message",
			err:  &ConflictError{Message: "이미 7월 30일에 예약이 있습니다."},
			want: "이미 7월 30일에 예약이 있습니다.",
		},
		{
			name: "conflict without message",
			err:  fmt.Errorf("repo: %w", &ConflictError{}),
			want: DefaultConflictMessage,
		},
		{
			name: "status",
			err:  &StatusError{Code: 500, Body: "Internal Server Error"},
			want: "예약 실패 (서버 오류): 500 - Internal Server Error",
		},
		{
			name: "other",
			err:  errors.New("dial tcp: connection refused"),
			want: "예약 요청 처리 중 오류 발생: dial tcp: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CreateFailureMessage(tt.err); got != tt.want {
				t.Errorf("CreateFailureMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMessages(t *testing.T) {
	r := Reservation{Date: "2025-07-30", Time: "14:00", Purpose: "진료"}
	if got := CreatedMessage(r); got != "2025-07-30 14:00에 '진료' 예약이 완료되었습니다." {
		t.Errorf("CreatedMessage() = %q", got)
	}
	if got := CancelledMessage("42"); got != "42번 사용자의 예약이 모두 취소되었습니다." {
		t.Errorf("CancelledMessage() = %q", got)
	}
	if got := CancelFailureMessage(errors.New("timeout")); got != "예약 취소 실패: timeout" {
		t.Errorf("CancelFailureMessage() = %q", got)
	}
}

func TestErrorKinds(t *testing.T) {
	if !errors.Is(fmt.Errorf("wrap: %w", &ConflictError{}), ErrConflict) {
		t.Error("ConflictError should match ErrConflict")
	}
	if !errors.Is(&StatusError{Code: 502}, ErrBookingService) {
		t.Error("StatusError should match ErrBookingService")
	}
}
