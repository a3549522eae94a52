package model

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for client-facing dates. The downstream
// reservation and payment contracts exchange full RFC 3339 timestamps, so a
// Date is widened to midnight local time on the way out and narrowed back on
// the way in.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time-of-day component. It marshals to
// and from the DateLayout form.
type Date struct {
	time.Time
}

// NewDate builds a Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

// DateOf truncates a backend timestamp to its calendar day.
func DateOf(t time.Time) Date {
	y, m, d := t.Local().Date()
	return NewDate(y, m, d)
}

// Timestamp widens the date to a midnight-local timestamp, the shape the
// reservation and payment services expect.
func (d Date) Timestamp() time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.Local)
}

// MarshalJSON renders the date as a quoted "2006-01-02" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON parses a quoted "2006-01-02" string.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// Nights returns the calendar-day difference between two dates. The
// subtraction runs over UTC midnights: local midnights drift by an hour
// across a DST transition, which would undercount a night spanning it.
// Date ordering is not validated here; the reservation service rejects
// inverted ranges.
func Nights(start, end Date) int {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	from := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	to := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from) / (24 * time.Hour))
}
