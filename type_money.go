package backoffice

import (
	"encoding/json"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an exact amount in a currency, like an invoice total or a bank
// line. The zero value is a zero amount without currency.
type Money struct {
	value decimal.Decimal // in major units
	cur   string
}

// M returns value in currency cur (an ISO 4217 code).
func M[T float64 | int | int64 | decimal.Decimal](value T, cur string) Money {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Money{value: v, cur: cur}
	case float64:
		return Money{value: decimal.NewFromFloat(v), cur: cur}
	case int:
		return Money{value: decimal.NewFromInt(int64(v)), cur: cur}
	case int64:
		return Money{value: decimal.NewFromInt(v), cur: cur}
	default:
		panic(fmt.Sprintf("unsupported money value %T", value))
	}
}

// ParseMoney parses a decimal amount like "-1250.50".
func ParseMoney(amount, cur string) (Money, error) {
	v, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	return Money{value: v, cur: cur}, nil
}

// currency always returns a usable currency, go-money falls back on a
// generic one for unknown codes.
func (m Money) currency() *money.Currency   { return money.New(0, m.cur).Currency() }

// String formats the amount the way the currency is usually written,
// e.g. "$1,250.50" or "1.250,50 €".
func (m Money) String() string {
	cur := m.currency()
	minor := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

func (m Money) Currency() string            { return m.cur }
func (m Money) Decimal() decimal.Decimal    { return m.value }
func (m Money) IsZero() bool                { return m.value.IsZero() }
func (m Money) IsNegative() bool            { return m.value.IsNegative() }
func (m Money) Neg() Money                  { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Equal(n Money) bool          { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) LessThan(n Money) bool       { return m.value.LessThan(n.value) }
func (m Money) Add(n Money) Money           { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money           { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }
func (m Money) Mul(f decimal.Decimal) Money { return Money{value: m.value.Mul(f), cur: m.cur} }

// cur returns the currency of a binary operation. A missing currency takes
// the other operand's one, two different currencies are a programming error.
func cur(a, b Money) string {
	switch {
	case a.cur == "":
		return b.cur
	case b.cur == "" || a.cur == b.cur:
		return a.cur
	default:
		panic("currency mismatch " + a.cur + " != " + b.cur)
	}
}

// MarshalJSON writes {"currency":"EUR","amount":"12.5"}, the amount rounded
// to the currency's minor unit.
func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", m.value.Round(int32(m.currency().Fraction)))
	return w.MarshalJSON()
}

// UnmarshalJSON reads the object written by MarshalJSON. The amount may be a
// JSON string or number.
func (m *Money) UnmarshalJSON(b []byte) error {
	var j struct {
		Currency string          `json:"currency"`
		Amount   decimal.Decimal `json:"amount"`
	}
	if err := json.Unmarshal(b, &j); err != nil {
		return fmt.Errorf("invalid money %s: %w", b, err)
	}
	*m = Money{value: j.Amount, cur: j.Currency}
	return nil
}
