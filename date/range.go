package date

// Range is an inclusive range of days. A zero bound is open.
type Range struct{ From, To Date }

// NewRange returns the period p containing d.
func NewRange(d Date, p Period) Range { return Range{From: d.StartOf(p), To: d.EndOf(p)} }

// Between returns the range from..to, whatever their order.
func Between(from, to Date) Range {
	if to.Before(from) && !to.IsZero() {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// IsZero reports whether the range is unrestricted.
func (r Range) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

// Contains reports whether d is in the range, bounds included.
func (r Range) Contains(d Date) bool {
	if !r.From.IsZero() && d.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && d.After(r.To) {
		return false
	}
	return true
}

func (r Range) String() string {
	switch {
	case r.IsZero():
		return "all dates"
	case r.From.IsZero():
		return "until " + r.To.String()
	case r.To.IsZero():
		return "since " + r.From.String()
	case r.From == r.To:
		return r.From.String()
	default:
		return r.From.String() + " to " + r.To.String()
	}
}
