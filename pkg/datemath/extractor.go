package datemath

import (
	"regexp"
	"strconv"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/width"
)

const (
	minYear = 1
	maxYear = 9999
)

var (
	// Anything that is neither a word character nor whitespace is noise.
	noisePattern = regexp.MustCompile(`[^\p{L}\p{N}_\s\p{Z}]`)
	datePattern  = regexp.MustCompile(`(\d{1,2})월[\s\p{Z}]*(\d{1,2})일`)
	timePattern  = regexp.MustCompile(`(오전|오후)?[\s\p{Z}]*(\d{1,2})시`)

	asciiDigits = runes.Map(toASCIIDigit)
)

// Extract turns a free-form Korean date/time expression such as
// "7월 30일 오후 2시" into a normalized instant in referenceYear.
//
// Exactly one of a value or an error is produced. Errors match
// ErrDateFormat, ErrTimeFormat or ErrCalendarConstruction via errors.Is.
// Extract is pure and safe for concurrent use.
func Extract(raw string, referenceYear int) (NormalizedDateTime, error) {
	cleaned := Clean(raw)

	date, err := ParseDate(cleaned)
	if err != nil {
		return NormalizedDateTime{}, err
	}

	tm, err := ParseTime(cleaned)
	if err != nil {
		return NormalizedDateTime{}, err
	}

	return Construct(referenceYear, date.Month, date.Day, NormalizeHour(tm))
}

// Clean folds full-width characters to their narrow form, rewrites any
// Unicode decimal digit as its ASCII digit and strips every character that
// is not a word character or whitespace. The 월/일/시/오전/오후 markers
// survive unchanged. Clean is idempotent.
func Clean(raw string) string {
	return noisePattern.ReplaceAllString(asciiDigits.String(width.Fold.String(raw)), "")
}

// toASCIIDigit maps a decimal digit from any script to '0'..'9'. Unicode
// lays every Nd script out as runs of ten starting at zero.
func toASCIIDigit(r rune) rune {
	if r <= '9' || !unicode.IsDigit(r) {
		return r
	}
	zero := r
	for unicode.IsDigit(zero - 1) {
		zero--
	}
	return '0' + (r-zero)%10
}

// ParseDate returns the first "<M>월 <D>일" match in cleaned.
func ParseDate(cleaned string) (ParsedDate, error) {
	m := datePattern.FindStringSubmatch(cleaned)
	if m == nil {
		return ParsedDate{}, ErrDateFormat
	}
	return ParsedDate{Month: atoi(m[1]), Day: atoi(m[2])}, nil
}

// ParseTime returns the first "(오전|오후)? <H>시" match in cleaned.
func ParseTime(cleaned string) (ParsedTime, error) {
	m := timePattern.FindStringSubmatch(cleaned)
	if m == nil {
		return ParsedTime{}, ErrTimeFormat
	}
	return ParsedTime{Period: Period(m[1]), Hour: atoi(m[2])}, nil
}

// NormalizeHour applies the 12h to 24h rule. Hours are not range-checked:
// "오전 13시" stays 13 and an out-of-range hour surfaces at construction.
func NormalizeHour(t ParsedTime) int {
	switch {
	case t.Period == PeriodPM && t.Hour < 12:
		return t.Hour + 12
	case t.Period == PeriodAM && t.Hour == 12:
		return 0
	default:
		return t.Hour
	}
}

// Construct builds the calendar instant. It is the only place calendar
// legality is decided.
func Construct(year, month, day, hour int) (NormalizedDateTime, error) {
	fail := func(violation error) (NormalizedDateTime, error) {
		return NormalizedDateTime{}, &CalendarConstructionError{
			Year: year, Month: month, Day: day, Hour: hour, Err: violation,
		}
	}

	if year < minYear || year > maxYear {
		return fail(ErrYearRange)
	}
	if month < 1 || month > 12 {
		return fail(ErrMonthRange)
	}
	if day < 1 || day > daysIn(year, time.Month(month)) {
		return fail(ErrDayRange)
	}
	if hour < 0 || hour > 23 {
		return fail(ErrHourRange)
	}

	return NormalizedDateTime{Year: year, Month: month, Day: day, Hour: hour}, nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// atoi is only fed \d{1,2} captures, so it cannot fail.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
