package format

import (
	"math"
	"testing"
)

func TestInt(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{12345, "12 345"},
		{1234567, "1 234 567"},
		{-12345, "-12 345"},
		{2.5, "3"},   // half away from zero
		{-2.5, "-3"}, // half away from zero
		{149.9, "150"},
	}
	for _, c := range cases {
		if got := Int(c.in); got != c.want {
			t.Fatalf("Int(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestIntPlaceholder(t *testing.T) {
	if got := Int(math.NaN()); got != Placeholder {
		t.Fatalf("Int(NaN) = %q, want %q", got, Placeholder)
	}
	if got := Int(math.Inf(1)); got != Placeholder {
		t.Fatalf("Int(+Inf) = %q, want %q", got, Placeholder)
	}
}

func TestDecimal(t *testing.T) {
	cases := []struct {
		in       float64
		decimals int
		want     string
	}{
		{12345.6, 2, "12 345,60"},
		{12345.67, 2, "12 345,67"},
		{3, 2, "3,00"},
		{0.5, 2, "0,50"},
		{1234567.891, 2, "1 234 567,89"},
		{-12345.6, 2, "-12 345,60"},
		{42.123, 0, "42"},
	}
	for _, c := range cases {
		if got := Decimal(c.in, c.decimals); got != c.want {
			t.Fatalf("Decimal(%v, %d) = %q, want %q", c.in, c.decimals, got, c.want)
		}
	}
}

func TestDecimalPlaceholder(t *testing.T) {
	if got := Decimal(math.NaN(), 2); got != Placeholder {
		t.Fatalf("Decimal(NaN) = %q, want %q", got, Placeholder)
	}
}
