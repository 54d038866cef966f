package response

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Details   string `json:"details,omitempty"`
	Data      any    `json:"data,omitempty"`
}

// DateTime is a UTC timestamp that marshals as DateTimeFormat, the shape
// SQLite's CURRENT_TIMESTAMP produces.
type DateTime time.Time

// dateTimeLayouts are tried in order when decoding.
var dateTimeLayouts = []string{
	DateTimeFormat,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
}

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(DateTimeFormat))
}

// UnmarshalJSON accepts DateTimeFormat, RFC 3339, null and "".
// Timestamps without a zone are read as UTC.
func (d *DateTime) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*d = DateTime{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("datetime must be a string: %w", err)
	}
	if s == "" {
		*d = DateTime{}
		return nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*d = DateTime(t.UTC())
			return nil
		}
	}
	return fmt.Errorf("unrecognized datetime %q", s)
}

// Time returns the underlying time.
func (d DateTime) Time() time.Time {
	return time.Time(d)
}
