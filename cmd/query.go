package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/backoffice/date"
)

// rangeFlags are the flags restricting a dated page to a range of days.
type rangeFlags struct {
	period string
	start  string
	end    string
}

func (r *rangeFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.period, "p", "", "Only list the period (day, week, month, quarter, year) containing the -d date.")
	f.StringVar(&r.start, "s", "", "Only list from this date on. Overrides -p.")
	f.StringVar(&r.end, "d", "", "Only list up to this date, today if -p or -s is set. See 'bo topic dates' for formats.")
}

// Range returns the range of days set by the flags, the zero Range if none
// is set.
func (r *rangeFlags) Range() (date.Range, error) {
	if r.period == "" && r.start == "" && r.end == "" {
		return date.Range{}, nil
	}
	end := date.Today()
	if r.end != "" {
		var err error
		if end, err = date.Parse(r.end); err != nil {
			return date.Range{}, fmt.Errorf("invalid end date: %w", err)
		}
	}
	switch {
	case r.start != "":
		start, err := date.Parse(r.start)
		if err != nil {
			return date.Range{}, fmt.Errorf("invalid start date: %w", err)
		}
		return date.Between(start, end), nil
	case r.period != "":
		p, err := date.ParsePeriod(r.period)
		if err != nil {
			return date.Range{}, err
		}
		return date.NewRange(end, p), nil
	default:
		return date.Range{To: end}, nil
	}
}

// limit keeps the head first then the tail last elements of s, zero means
// no limit.
func limit[T any](s []T, head, tail int) []T {
	if head > 0 && head < len(s) {
		s = s[:head]
	}
	if tail > 0 && tail < len(s) {
		s = s[len(s)-tail:]
	}
	return s
}
