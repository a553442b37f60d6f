package utils

import (
	"math"
	"testing"
)

func TestPriceFormat(t *testing.T) {
	t.Run("INR", func(t *testing.T) {
		str := Price(1234567).Format("INR")
		if str != "₹1,234,567" {
			t.Errorf("Expected '₹1,234,567', got '%s'", str)
		}
	})

	t.Run("lowercase code", func(t *testing.T) {
		str := Price(5000).Format("usd")
		if str != "$5,000" {
			t.Errorf("Expected '$5,000', got '%s'", str)
		}
	})

	t.Run("EUR", func(t *testing.T) {
		str := Price(1234567).Format("EUR")
		if str != "€1.234.567" {
			t.Errorf("Expected '€1.234.567', got '%s'", str)
		}
	})

	t.Run("symbol after amount", func(t *testing.T) {
		str := Price(12000).Format("SEK")
		if str != "12 000 kr" {
			t.Errorf("Expected '12 000 kr', got '%s'", str)
		}
	})

	t.Run("unknown code falls back to INR", func(t *testing.T) {
		str := Price(999).Format("XYZ")
		if str != "₹999" {
			t.Errorf("Expected '₹999', got '%s'", str)
		}
	})

	t.Run("negative", func(t *testing.T) {
		str := FormatPrice(-1500, "INR")
		if str != "-₹1,500" {
			t.Errorf("Expected '-₹1,500', got '%s'", str)
		}
	})
}

func TestFormatCount(t *testing.T) {
	cases := map[int64]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		10683:   "10,683",
		-123456: "-123,456",
	}
	for in, want := range cases {
		if got := FormatCount(in); got != want {
			t.Errorf("FormatCount(%d): expected '%s', got '%s'", in, want, got)
		}
	}
}

func TestFormatDecimal(t *testing.T) {
	if got := FormatDecimal(1.666); got != "1.67" {
		t.Errorf("Expected '1.67', got '%s'", got)
	}
	if got := FormatDecimal(math.NaN()); got != "0.00" {
		t.Errorf("Expected '0.00' for NaN, got '%s'", got)
	}
	if got := FormatDecimal(math.Inf(1)); got != "0.00" {
		t.Errorf("Expected '0.00' for Inf, got '%s'", got)
	}
}
