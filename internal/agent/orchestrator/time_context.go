package orchestrator

import (
	"fmt"
	"time"
)

var koreanWeekdays = [...]string{"일요일", "월요일", "화요일", "수요일", "목요일", "금요일", "토요일"}

// buildTimeContext tells the model what "today" is in the clinic's timezone.
func buildTimeContext(now time.Time, loc *time.Location) string {
	now = now.In(loc)
	return fmt.Sprintf(
		TimeContextTemplate,
		now.Format("2006-01-02"),
		koreanWeekdays[now.Weekday()],
		now.Format("15:04"),
	)
}
