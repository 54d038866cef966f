package reservation

import (
	"errors"
	"fmt"

	"reservation-agent/pkg/datemath"
)

// Messages relayed to the end user. They are returned as-is by the agent tools.

func CreatedMessage(r Reservation) string {
	return fmt.Sprintf("%s %s에 '%s' 예약이 완료되었습니다.", r.Date, r.Time, r.Purpose)
}

func CancelledMessage(userID string) string {
	return fmt.Sprintf("%s번 사용자의 예약이 모두 취소되었습니다.", userID)
}

// CreateFailureMessage maps an error from Create or Book to its Korean explanation.
func CreateFailureMessage(err error) string {
	var (
		calErr      *datemath.CalendarConstructionError
		conflictErr *ConflictError
		statusErr   *StatusError
	)

	switch {
	case errors.Is(err, datemath.ErrDateFormat):
		return datemath.MsgDateFormat
	case errors.Is(err, datemath.ErrTimeFormat):
		return datemath.MsgTimeFormat
	case errors.As(err, &calErr):
		return fmt.Sprintf("예약 요청 처리 중 오류 발생: %d월 %d일 %d시는 존재하지 않는 날짜 또는 시간입니다.",
			calErr.Month, calErr.Day, calErr.Hour)
	case errors.As(err, &conflictErr):
		return conflictErr.Error()
	case errors.As(err, &statusErr):
		return fmt.Sprintf("예약 실패 (서버 오류): %d - %s", statusErr.Code, statusErr.Body)
	default:
		return fmt.Sprintf("예약 요청 처리 중 오류 발생: %v", err)
	}
}

// CancelFailureMessage maps an error from Cancel to its Korean explanation.
func CancelFailureMessage(err error) string {
	return fmt.Sprintf("예약 취소 실패: %v", err)
}
