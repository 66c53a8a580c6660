// Package calendar provides civil (timezone-free) date arithmetic.
//
// A Date is a plain year/month/day triple. It never carries a clock time or an
// offset, so comparisons between server-supplied dates and "today" are not
// shifted by timezone conversion.
package calendar

import (
	"encoding/json"
	"fmt"
	"time"
)

const isoLayout = "2006-01-02"

// Date is a calendar date without time of day or location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the normalized date for the given components.
// Out-of-range values roll over the same way time.Date does (Feb 30 -> Mar 2).
func New(year int, month time.Month, day int) Date {
	return fromUTC(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the civil date of t in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func fromUTC(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Parse reads a date from "YYYY-MM-DD" or from any ISO-8601 timestamp whose
// first ten characters are a date. The time part and offset are ignored.
func Parse(s string) (Date, error) {
	if len(s) < len(isoLayout) {
		return Date{}, fmt.Errorf("calendar: invalid date %q", s)
	}
	t, err := time.Parse(isoLayout, s[:len(isoLayout)])
	if err != nil {
		return Date{}, fmt.Errorf("calendar: invalid date %q: %w", s, err)
	}
	if len(s) > len(isoLayout) && s[len(isoLayout)] != 'T' && s[len(isoLayout)] != ' ' {
		return Date{}, fmt.Errorf("calendar: invalid date %q", s)
	}
	return fromUTC(t), nil
}

// ParseOrZero is Parse with errors mapped to the zero Date.
func ParseOrZero(s string) Date {
	d, err := Parse(s)
	if err != nil {
		return Date{}
	}
	return d
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// String returns d in ISO "YYYY-MM-DD" form, or "" for the zero Date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.utc().Format(isoLayout)
}

func (d Date) utc() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Equal reports whether d and u are the same day.
func (d Date) Equal(u Date) bool {
	return d == u
}

// Before reports whether d is strictly earlier than u.
func (d Date) Before(u Date) bool {
	return d.utc().Before(u.utc())
}

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	return fromUTC(d.utc().AddDate(0, 0, n))
}

// DaysUntil returns the number of whole days from d to u (negative if u is earlier).
func (d Date) DaysUntil(u Date) int {
	return int(u.utc().Sub(d.utc()).Hours() / 24)
}

// SameMonth reports whether d and u fall in the same month of the same year.
func (d Date) SameMonth(u Date) bool {
	return d.Year == u.Year && d.Month == u.Month
}

// InYear returns the anniversary of d in the given year.
// Feb 29 rolls over to Mar 1 in non-leap years.
func (d Date) InYear(year int) Date {
	return New(year, d.Month, d.Day)
}

// NextOccurrence returns the nearest anniversary of d that is not earlier than today:
// this year's when it is still ahead (or today), next year's otherwise.
func (d Date) NextOccurrence(today Date) Date {
	thisYear := d.InYear(today.Year)
	if !thisYear.Before(today) {
		return thisYear
	}
	return d.InYear(today.Year + 1)
}

// MarshalJSON encodes d as an ISO date string, or null for the zero Date.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts an ISO date or timestamp string, or null.
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
