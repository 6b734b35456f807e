// Package date provides a day granularity Date and the ranges used to
// restrict dated list pages (audit log, bank transactions, invoices).
package date

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Format is the ISO-8601 layout used to print dates.
const Format = "2006-01-02"

// readFormat accepts single digit months and days (2025-7-1).
const readFormat = "2006-1-2"

// Date is a calendar day.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns the normalized Date, so that New(2025, 1, 32) is February 1st.
func New(year int, month time.Month, day int) Date {
	y, m, d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	return Date{y, m, d}
}

// Today returns the current date in the local time zone.
func Today() Date { return New(time.Now().Date()) }

func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

func (d Date) Year() int              { return d.y }
func (d Date) Month() time.Month      { return d.m }
func (d Date) Day() int               { return d.d }
func (d Date) Weekday() time.Weekday  { return d.time().Weekday() }
func (d Date) IsZero() bool           { return d == Date{} }
func (d Date) Before(x Date) bool     { return d.time().Before(x.time()) }
func (d Date) After(x Date) bool      { return d.time().After(x.time()) }
func (d Date) Add(days int) Date      { return New(d.y, d.m, d.d+days) }
func (d Date) Format(l string) string { return d.time().Format(l) }

// String formats the date as 2006-01-02, or "" for the zero Date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(Format)
}

var relativeRE = regexp.MustCompile(`^([+-])(\d+)([dwmqy])$`)

// Parse reads a date either in ISO format (lenient: 2025-7-1) or relative to
// today: "0d" is today, "-1d" yesterday, "+2w" in two weeks, "-1m", "-1q",
// "-1y" work with months, quarters and years.
func Parse(str string) (Date, error) {
	str = strings.TrimSpace(str)
	if str == "0d" {
		return Today(), nil
	}
	if m := relativeRE.FindStringSubmatch(str); m != nil {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return Date{}, fmt.Errorf("invalid relative date %q: %w", str, err)
		}
		if m[1] == "-" {
			n = -n
		}
		t := Today()
		switch m[3] {
		case "d":
			return t.Add(n), nil
		case "w":
			return t.Add(7 * n), nil
		case "m":
			return New(t.y, t.m+time.Month(n), t.d), nil
		case "q":
			return New(t.y, t.m+time.Month(3*n), t.d), nil
		case "y":
			return New(t.y+n, t.m, t.d), nil
		}
	}
	on, err := time.Parse(readFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q or a relative date like -1w: %w", str, Format, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error. Meant for tests and seeds.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON reads a date from data files. Relative dates are rejected
// there: a seed must not change meaning with the day it is read.
func (d *Date) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	on, err := time.Parse(readFormat, str)
	if err != nil {
		return fmt.Errorf("invalid date %q in data file, want format %q: %w", str, Format, err)
	}
	*d = New(on.Date())
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }

var _ json.Marshaler = Date{}
var _ json.Unmarshaler = (*Date)(nil)
