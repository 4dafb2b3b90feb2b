// internal/domain/models/date.go
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire and form format for calendar days.
const DateLayout = "2006-01-02"

// naiveLayouts are timestamps without a zone. The backend stores attendance
// days as midnight datetimes and serializes them this way.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// displayLoc is where offset-bearing timestamps are normalized before the
// calendar day is taken.
var displayLoc = time.Local

// SetDisplayLocation sets the zone used to normalize timestamps and to
// compute "today". A nil loc resets to time.Local.
func SetDisplayLocation(loc *time.Location) {
	if loc == nil {
		loc = time.Local
	}
	displayLoc = loc
}

// DisplayLocation returns the zone set by SetDisplayLocation.
func DisplayLocation() *time.Location { return displayLoc }

// Date is a calendar day with no time-of-day component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current calendar day in the display location.
func Today(now time.Time) Date {
	return DateOf(now.In(displayLoc))
}

// ParseDate accepts YYYY-MM-DD, naive ISO timestamps and RFC 3339.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return DateOf(t), nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return DateOf(t.In(displayLoc)), nil
	}
	return Date{}, fmt.Errorf("invalid date %q", s)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.Year == 0 && d.Month == 0 && d.Day == 0 }

// Time returns midnight UTC of d. Useful for weekday and ordering.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(DateLayout)
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool { return d.Time().Before(o.Time()) }

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool { return d.Time().After(o.Time()) }

// Weekday returns the short English weekday name ("Mon").
func (d Date) Weekday() string { return d.Time().Format("Mon") }

// Display formats d for tables ("Jan 15, 2024").
func (d Date) Display() string { return d.Time().Format("Jan 2, 2006") }

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date: %w", err)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
