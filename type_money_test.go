package backoffice

import (
	"encoding/json"
	"testing"
)

func TestMoneyString(t *testing.T) {
	testCases := []struct {
		m    Money
		want string
	}{
		{M(1250.5, "USD"), "$1,250.50"},
		{M(-42, "USD"), "-$42.00"},
		{M(0, "USD"), "$0.00"},
		{M(1000, "JPY"), "¥1,000"},
	}
	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.m.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a, b := M(10.25, "EUR"), M(4.75, "EUR")
	if got := a.Add(b); !got.Equal(M(15, "EUR")) {
		t.Errorf("Add = %v, want 15 EUR", got)
	}
	if got := a.Sub(b); !got.Equal(M(5.5, "EUR")) {
		t.Errorf("Sub = %v, want 5.5 EUR", got)
	}
	if got := (Money{}).Add(a); got.Currency() != "EUR" {
		t.Errorf("zero money should adopt the other currency, got %q", got.Currency())
	}

	defer func() {
		if recover() == nil {
			t.Error("adding two currencies should panic")
		}
	}()
	a.Add(M(1, "USD"))
}

func TestMoneyJSON(t *testing.T) {
	b, err := json.Marshal(M(12.345, "EUR"))
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"currency":"EUR","amount":"12.35"}`; string(b) != want {
		t.Errorf("Marshal = %s, want %s", b, want)
	}

	for _, in := range []string{`{"currency":"EUR","amount":"12.35"}`, `{"currency":"EUR","amount":12.35}`} {
		var m Money
		if err := json.Unmarshal([]byte(in), &m); err != nil {
			t.Fatalf("Unmarshal(%s): %v", in, err)
		}
		if !m.Equal(M(12.35, "EUR")) {
			t.Errorf("Unmarshal(%s) = %v, want 12.35 EUR", in, m)
		}
	}
}

func TestParseMoney(t *testing.T) {
	m, err := ParseMoney("-1250.50", "GBP")
	if err != nil {
		t.Fatal(err)
	}
	if !m.Equal(M(-1250.5, "GBP")) {
		t.Errorf("ParseMoney = %v", m)
	}
	if _, err := ParseMoney("12,50", "GBP"); err == nil {
		t.Error("ParseMoney accepted a comma decimal separator")
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(12.5).String(); got != "12.50%" {
		t.Errorf("String() = %q", got)
	}
	p := Plan{Monthly: M(10, "USD"), Yearly: M(96, "USD")}
	if got := p.Discount().String(); got != "20.00%" {
		t.Errorf("Discount() = %q, want 20.00%%", got)
	}
	if got := (Plan{}).Discount(); got != 0 {
		t.Errorf("Discount() of a free plan = %v, want 0", got)
	}
}
