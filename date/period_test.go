package date

import (
	"testing"
	"time"
)

func TestNewRange(t *testing.T) {
	testCases := []struct {
		name   string
		in     Date
		period Period
		want   Range
	}{
		{"day", New(2025, time.September, 8), Daily, Range{New(2025, time.September, 8), New(2025, time.September, 8)}},
		{"a wednesday", New(2025, time.September, 10), Weekly, Range{New(2025, time.September, 8), New(2025, time.September, 14)}},
		{"a sunday", New(2025, time.September, 14), Weekly, Range{New(2025, time.September, 8), New(2025, time.September, 14)}},
		{"leap february", New(2024, time.February, 15), Monthly, Range{New(2024, time.February, 1), New(2024, time.February, 29)}},
		{"Q2", New(2025, time.May, 20), Quarterly, Range{New(2025, time.April, 1), New(2025, time.June, 30)}},
		{"Q4", New(2025, time.December, 31), Quarterly, Range{New(2025, time.October, 1), New(2025, time.December, 31)}},
		{"year", New(2025, time.September, 8), Yearly, Range{New(2025, time.January, 1), New(2025, time.December, 31)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewRange(tc.in, tc.period); got != tc.want {
				t.Errorf("NewRange(%v, %v) = %v, want %v", tc.in, tc.period, got, tc.want)
			}
		})
	}
}

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{"day", Daily, false},
		{"weekly", Weekly, false},
		{"Month", Monthly, false},
		{"quarter", Quarterly, false},
		{"yearly", Yearly, false},
		{"fortnight", Daily, true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePeriod(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParsePeriod(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParsePeriod(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{From: New(2025, time.March, 1), To: New(2025, time.March, 31)}
	for _, tc := range []struct {
		on   Date
		want bool
	}{
		{New(2025, time.February, 28), false},
		{New(2025, time.March, 1), true},
		{New(2025, time.March, 31), true},
		{New(2025, time.April, 1), false},
	} {
		if got := r.Contains(tc.on); got != tc.want {
			t.Errorf("%v.Contains(%v) = %v, want %v", r, tc.on, got, tc.want)
		}
	}

	open := Range{From: New(2025, time.March, 1)}
	if !open.Contains(New(2030, time.January, 1)) {
		t.Errorf("%v should contain any later date", open)
	}
	if !(Range{}).Contains(New(1990, time.January, 1)) {
		t.Error("the zero range should contain every date")
	}
}

func TestBetween(t *testing.T) {
	a, b := New(2025, time.March, 1), New(2025, time.January, 1)
	if got, want := Between(a, b), (Range{From: b, To: a}); got != want {
		t.Errorf("Between(%v, %v) = %v, want %v", a, b, got, want)
	}
	if got, want := Between(a, Date{}), (Range{From: a}); got != want {
		t.Errorf("Between(%v, zero) = %v, want %v", a, got, want)
	}
}
