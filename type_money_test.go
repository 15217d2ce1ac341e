package fundora

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoney_Format(t *testing.T) {
	tests := []struct {
		m         Money
		str, whole string
	}{
		{INR(20000), "₹20,000.00", "₹20,000"},
		{INR(1234.5), "₹1,234.50", "₹1,235"},
		{INR(0), "₹0.00", "₹0"},
		{M(99.99, "USD"), "$99.99", "$100"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.str {
			t.Errorf("String() = %q, want %q", got, tt.str)
		}
		if got := tt.m.Whole(); got != tt.whole {
			t.Errorf("Whole() = %q, want %q", got, tt.whole)
		}
	}
}

func TestMoney_Round(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0.5, 1},
		{1.5, 2},
		{2.5, 3},
		{-0.5, -1},
		{4.49, 4},
	}
	for _, tt := range tests {
		if got := INR(tt.in).Round(); !got.Equal(INR(tt.want)) {
			t.Errorf("INR(%v).Round() = %v, want %v", tt.in, got.Decimal(), tt.want)
		}
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	a := INR(100)
	if got := a.Add(INR(50)); !got.Equal(INR(150)) {
		t.Errorf("Add() = %v, want 150", got)
	}
	if got := a.Sub(INR(150)); !got.IsNegative() {
		t.Errorf("Sub() = %v, want negative", got)
	}
	if got := a.Mul(decimal.NewFromFloat(0.075)); !got.Equal(INR(7.5)) {
		t.Errorf("Mul() = %v, want 7.5", got)
	}
	// an empty currency takes the other operand's one
	if got := M(1, "").Add(INR(1)); got.Currency() != "INR" {
		t.Errorf("Add() currency = %q, want INR", got.Currency())
	}
}

func TestMoney_CurrencyMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Add() of INR and EUR did not panic")
		}
	}()
	INR(1).Add(M(1, "EUR"))
}

func TestMoney_MarshalJSON(t *testing.T) {
	got, err := json.Marshal(INR(1234.567))
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	if want := "1234.57"; string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}
