package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// European notation: dots group thousands, comma is the decimal mark.
		{"1.234,56", "1234.56"},
		{"1.000.000,99", "1000000.99"},
		{"€ 1.000,00", "1000.00"},
		// Anglo notation: commas group thousands.
		{"1,234.56", "1234.56"},
		{"12,345,678.90", "12345678.90"},
		// Single separator.
		{"400,50", "400.50"},
		{"400.50", "400.50"},
		{"1500", "1500"},
		// Currency glyph and whitespace.
		{"€400,50", "400.50"},
		{"  250.00 €  ", "250.00"},
		// Missing markers.
		{"", "0"},
		{"   ", "0"},
		{"nan", "0"},
		{"NaN", "0"},
		// Unparseable input fails soft.
		{"abc", "0"},
		{"12x34", "0"},
		{"1,2,3,4", "0"},
	}

	for _, tt := range tests {
		got := Normalize(tt.input)
		assert.True(t, got.Equal(dec(tt.want)), "Normalize(%q) = %s, want %s", tt.input, got, tt.want)
	}
}

func TestShapeOf(t *testing.T) {
	tests := []struct {
		input string
		want  separatorShape
	}{
		{"1500", shapePlain},
		{"400.50", shapePlain},
		{"400,50", shapeCommaOnly},
		{"1.234,56", shapeDotThousands},
		{"1,234.56", shapeCommaGroups},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, shapeOf(tt.input), "shapeOf(%q)", tt.input)
	}
}

func TestNormalize_NegativeAmounts(t *testing.T) {
	// Paid amounts are typically >= 0 but not clamped; a negative value
	// must survive normalization untouched.
	assert.True(t, Normalize("-100,50").Equal(dec("-100.50")))
	assert.True(t, Normalize("-1.000,00").Equal(dec("-1000")))
}

func TestNormalize_OddGrouping(t *testing.T) {
	// Non-standard groupings follow the last-separator rule, which is
	// authoritative even when the grouping looks wrong for either locale.
	assert.True(t, Normalize("1,234.567").Equal(dec("1234.567")))
	assert.True(t, Normalize("1.234,567").Equal(dec("1234.567")))
}
