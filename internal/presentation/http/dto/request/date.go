package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date accepts either a calendar day ("2025-03-14") or an RFC 3339
// timestamp. A bare day is resolved against the business time zone by In.
type Date struct {
	t       time.Time
	dayOnly bool
}

// ParseDate reads the same formats as the JSON codec
func ParseDate(s string) (Date, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return Date{t: t, dayOnly: true}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD or RFC 3339", s)
	}
	return Date{t: t}, nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// In returns the instant, taking a bare day as midnight in loc
func (d Date) In(loc *time.Location) time.Time {
	if d.dayOnly {
		y, m, day := d.t.Date()
		return time.Date(y, m, day, 0, 0, 0, 0, loc)
	}
	return d.t
}

// IsZero reports whether no date was given
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// TimePtr converts an optional Date for a service input
func TimePtr(d *Date, loc *time.Location) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.In(loc)
	return &t
}
