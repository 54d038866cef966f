package datemath_test

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"sync"
	"testing"
	"time"

	"reservation-agent/pkg/datemath"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		year     int
		wantDate string
		wantTime string
		wantErr  error
	}{
		{
			name:     "Afternoon with spaces",
			raw:      "7월 30일 오후 2시에 예약해줘",
			year:     2025,
			wantDate: "2025-07-30",
			wantTime: "14:00",
		},
		{
			name:     "No spaces",
			raw:      "7월30일오후2시",
			year:     2025,
			wantDate: "2025-07-30",
			wantTime: "14:00",
		},
		{
			name:     "Morning",
			raw:      "12월 1일 오전 9시",
			year:     2026,
			wantDate: "2026-12-01",
			wantTime: "09:00",
		},
		{
			name:     "No period keeps hour",
			raw:      "3월 5일 15시",
			year:     2025,
			wantDate: "2025-03-05",
			wantTime: "15:00",
		},
		{
			name:     "Midnight via 오전 12시",
			raw:      "1월 1일 오전 12시",
			year:     2025,
			wantDate: "2025-01-01",
			wantTime: "00:00",
		},
		{
			name:     "Noon via 오후 12시",
			raw:      "1월 1일 오후 12시",
			year:     2025,
			wantDate: "2025-01-01",
			wantTime: "12:00",
		},
		{
			name:     "Punctuation noise",
			raw:      "7월.30일, 오후2시!!",
			year:     2025,
			wantDate: "2025-07-30",
			wantTime: "14:00",
		},
		{
			name:     "Full-width digits",
			raw:      "７월 ３０일 오후 ２시",
			year:     2025,
			wantDate: "2025-07-30",
			wantTime: "14:00",
		},
		{
			name:     "First date match wins",
			raw:      "7월 30일 아니면 8월 1일 오후 3시",
			year:     2025,
			wantDate: "2025-07-30",
			wantTime: "15:00",
		},
		{
			name:     "오전 with hour over 12 passes through",
			raw:      "5월 5일 오전 13시",
			year:     2025,
			wantDate: "2025-05-05",
			wantTime: "13:00",
		},
		{
			name:     "Leap day in leap year",
			raw:      "2월 29일 오전 10시",
			year:     2028,
			wantDate: "2028-02-29",
			wantTime: "10:00",
		},
		{
			name:    "Missing time",
			raw:     "7월30일",
			year:    2025,
			wantErr: datemath.ErrTimeFormat,
		},
		{
			name:    "Missing date",
			raw:     "오후2시",
			year:    2025,
			wantErr: datemath.ErrDateFormat,
		},
		{
			name:    "Empty input",
			raw:     "",
			year:    2025,
			wantErr: datemath.ErrDateFormat,
		},
		{
			name:    "February 30th",
			raw:     "2월 30일 오전 9시",
			year:    2025,
			wantErr: datemath.ErrCalendarConstruction,
		},
		{
			name:    "Leap day in common year",
			raw:     "2월 29일 오전 9시",
			year:    2025,
			wantErr: datemath.ErrCalendarConstruction,
		},
		{
			name:    "Month 13",
			raw:     "13월 1일 오전 9시",
			year:    2025,
			wantErr: datemath.ErrCalendarConstruction,
		},
		{
			name:    "Hour 25",
			raw:     "4월 1일 25시",
			year:    2025,
			wantErr: datemath.ErrCalendarConstruction,
		},
		{
			name:    "Year zero",
			raw:     "4월 1일 오전 9시",
			year:    0,
			wantErr: datemath.ErrCalendarConstruction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := datemath.Extract(tt.raw, tt.year)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Extract(%q) error = %v, want %v", tt.raw, err, tt.wantErr)
				}
				if got != (datemath.NormalizedDateTime{}) {
					t.Errorf("expected zero value on error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Extract(%q) unexpected error: %v", tt.raw, err)
			}
			if got.Date() != tt.wantDate {
				t.Errorf("Date() = %s, want %s", got.Date(), tt.wantDate)
			}
			if got.Time() != tt.wantTime {
				t.Errorf("Time() = %s, want %s", got.Time(), tt.wantTime)
			}
			if got.Minute != 0 {
				t.Errorf("Minute = %d, want 0", got.Minute)
			}
		})
	}
}

func TestExtract_ErrorKindsAreDistinct(t *testing.T) {
	_, err := datemath.Extract("오후2시", 2025)
	if errors.Is(err, datemath.ErrTimeFormat) || errors.Is(err, datemath.ErrCalendarConstruction) {
		t.Errorf("date error must not match other kinds: %v", err)
	}
	if err.Error() != datemath.MsgDateFormat {
		t.Errorf("unexpected message: %s", err.Error())
	}

	_, err = datemath.Extract("7월30일", 2025)
	if err.Error() != datemath.MsgTimeFormat {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestExtract_CalendarConstructionCarriesViolation(t *testing.T) {
	_, err := datemath.Extract("4월 31일 오전 9시", 2025)

	var cErr *datemath.CalendarConstructionError
	if !errors.As(err, &cErr) {
		t.Fatalf("expected *CalendarConstructionError, got %T", err)
	}
	if !errors.Is(err, datemath.ErrDayRange) {
		t.Errorf("expected day violation, got %v", cErr.Err)
	}
	if cErr.Month != 4 || cErr.Day != 31 || cErr.Hour != 9 || cErr.Year != 2025 {
		t.Errorf("unexpected captured fields: %+v", cErr)
	}

	_, err = datemath.Extract("4월 1일 24시", 2025)
	if !errors.Is(err, datemath.ErrHourRange) {
		t.Errorf("expected hour violation, got %v", err)
	}
}

func TestExtract_AfternoonHoursShiftByTwelve(t *testing.T) {
	for month := 1; month <= 12; month++ {
		for day := 1; day <= 28; day++ {
			for hour := 1; hour <= 11; hour++ {
				raw := fmt.Sprintf("%d월 %d일 오후 %d시", month, day, hour)
				got, err := datemath.Extract(raw, 2025)
				if err != nil {
					t.Fatalf("Extract(%q): %v", raw, err)
				}
				if got.Hour != hour+12 {
					t.Fatalf("Extract(%q).Hour = %d, want %d", raw, got.Hour, hour+12)
				}
			}
		}
	}
}

func TestNormalizeHour(t *testing.T) {
	tests := []struct {
		in   datemath.ParsedTime
		want int
	}{
		{datemath.ParsedTime{Period: datemath.PeriodPM, Hour: 1}, 13},
		{datemath.ParsedTime{Period: datemath.PeriodPM, Hour: 11}, 23},
		{datemath.ParsedTime{Period: datemath.PeriodPM, Hour: 12}, 12},
		{datemath.ParsedTime{Period: datemath.PeriodPM, Hour: 15}, 15},
		{datemath.ParsedTime{Period: datemath.PeriodAM, Hour: 12}, 0},
		{datemath.ParsedTime{Period: datemath.PeriodAM, Hour: 7}, 7},
		{datemath.ParsedTime{Period: datemath.PeriodNone, Hour: 12}, 12},
		{datemath.ParsedTime{Period: datemath.PeriodNone, Hour: 0}, 0},
	}

	for _, tt := range tests {
		if got := datemath.NormalizeHour(tt.in); got != tt.want {
			t.Errorf("NormalizeHour(%+v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClean(t *testing.T) {
	inputs := []string{
		"7월.30일, 오후2시!!",
		"「7월 30일」 오후 2시?",
		"\"7월 30일\" - 오후 2시 (진료)",
		"예약: 7월 30일 오후 2시 ~ 3시 😊",
		"７월　３０일",
	}

	for _, in := range inputs {
		once := datemath.Clean(in)
		twice := datemath.Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: %q vs %q", in, once, twice)
		}
	}

	if got := datemath.Clean("7월.30일, 오후2시!!"); got != "7월30일 오후2시" {
		t.Errorf("Clean() = %q, want %q", got, "7월30일 오후2시")
	}
	if got := datemath.Clean("٧월 ٣٠일 오후 ٢시"); got != "7월 30일 오후 2시" {
		t.Errorf("Clean() = %q, want ASCII digits", got)
	}
}

func TestExtract_NonASCIIDigits(t *testing.T) {
	inputs := map[string]string{
		"arabic-indic":  "٧월 ٣٠일 오후 ٢시",
		"devanagari":    "७월 ३०일 오후 २시",
		"math bold":     "𝟕월 𝟑𝟎일 오후 𝟐시",
		"fullwidth mix": "７월 30일 오후 ２시",
	}
	for name, raw := range inputs {
		t.Run(name, func(t *testing.T) {
			got, err := datemath.Extract(raw, 2025)
			if err != nil {
				t.Fatalf("Extract(%q): %v", raw, err)
			}
			if got.Date() != "2025-07-30" || got.Time() != "14:00" {
				t.Errorf("Extract(%q) = %s %s, want 2025-07-30 14:00", raw, got.Date(), got.Time())
			}
		})
	}
}

func TestExtract_PunctuationInvariant(t *testing.T) {
	clean, err := datemath.Extract("7월30일 오후2시", 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	noisy, err := datemath.Extract("7월.30일, 오후2시!!", 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clean != noisy {
		t.Errorf("noisy input parsed differently: %+v vs %+v", noisy, clean)
	}
}

var (
	inverseDate = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	inverseTime = regexp.MustCompile(`^(\d{2}):(\d{2})$`)
)

func TestExtract_FormatRoundTrip(t *testing.T) {
	periods := []datemath.Period{datemath.PeriodNone, datemath.PeriodAM, datemath.PeriodPM}

	for month := 1; month <= 12; month++ {
		for _, day := range []int{1, 9, 10, 28} {
			for _, period := range periods {
				for hour := 1; hour <= 12; hour++ {
					raw := fmt.Sprintf("%d월 %d일 %s %d시", month, day, period, hour)
					got, err := datemath.Extract(raw, 2025)
					if err != nil {
						t.Fatalf("Extract(%q): %v", raw, err)
					}

					d := inverseDate.FindStringSubmatch(got.Date())
					tm := inverseTime.FindStringSubmatch(got.Time())
					if d == nil || tm == nil {
						t.Fatalf("unexpected format %s %s", got.Date(), got.Time())
					}

					wantHour := datemath.NormalizeHour(datemath.ParsedTime{Period: period, Hour: hour})
					if mustAtoi(t, d[1]) != 2025 || mustAtoi(t, d[2]) != month || mustAtoi(t, d[3]) != day {
						t.Errorf("date round trip mismatch for %q: %s", raw, got.Date())
					}
					if mustAtoi(t, tm[1]) != wantHour || mustAtoi(t, tm[2]) != 0 {
						t.Errorf("time round trip mismatch for %q: %s", raw, got.Time())
					}
				}
			}
		}
	}
}

func TestExtract_Concurrent(t *testing.T) {
	inputs := map[string]string{
		"1월 2일 오전 3시":    "2025-01-02 03:00",
		"4월 5일 오후 6시":    "2025-04-05 18:00",
		"7월 8일 9시":       "2025-07-08 09:00",
		"10월 11일 오후 12시": "2025-10-11 12:00",
		"12월 31일 오전 12시": "2025-12-31 00:00",
	}

	var wg sync.WaitGroup
	errs := make(chan string, 1000)
	for i := 0; i < 200; i++ {
		for raw, want := range inputs {
			wg.Add(1)
			go func(raw, want string) {
				defer wg.Done()
				got, err := datemath.Extract(raw, 2025)
				if err != nil {
					errs <- fmt.Sprintf("%q: %v", raw, err)
					return
				}
				if s := got.Date() + " " + got.Time(); s != want {
					errs <- fmt.Sprintf("%q: got %s want %s", raw, s, want)
				}
			}(raw, want)
		}
	}
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Error(e)
	}
}

func TestNormalizedDateTime_In(t *testing.T) {
	n := datemath.NormalizedDateTime{Year: 2025, Month: 7, Day: 30, Hour: 14}
	loc := time.FixedZone("KST", 9*60*60)

	got := n.In(loc)
	want := time.Date(2025, 7, 30, 14, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("In() = %v, want %v", got, want)
	}
	if !n.In(nil).Equal(time.Date(2025, 7, 30, 14, 0, 0, 0, time.UTC)) {
		t.Errorf("In(nil) should use UTC")
	}
}

func mustAtoi(t *testing.T, s string) int {
	t.Helper()
	n, err := strconv.Atoi(s)
	if err != nil {
		t.Fatalf("atoi(%q): %v", s, err)
	}
	return n
}
