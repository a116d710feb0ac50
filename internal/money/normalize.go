// Package money parses free-form monetary strings into exact decimals.
//
// Invoice amounts arrive from spreadsheets exported under different regional
// settings, so the same value may appear as "1.234,56" or "1,234.56" (or
// with a stray currency glyph). Normalize recovers the intended amount
// without requiring the caller to declare a locale.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// separatorShape classifies the thousands/decimal separator layout of a
// numeric string. The four cases are disambiguated by which separator, if
// any, occurs last.
type separatorShape int

const (
	shapePlain        separatorShape = iota // only "." or no separator at all
	shapeCommaOnly                          // "," is the decimal separator
	shapeDotThousands                       // both present, "." groups thousands
	shapeCommaGroups                        // both present, "," groups thousands
)

// Normalize parses a monetary string into a decimal amount. It never fails:
// blank input, the literal "nan", and anything unparseable all collapse to
// zero. A leading or trailing euro glyph and surrounding whitespace are
// ignored.
func Normalize(raw string) decimal.Decimal {
	s := strings.ReplaceAll(raw, "€", "")
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(rewriteSeparators(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// shapeOf dispatches on the separator layout of s.
func shapeOf(s string) separatorShape {
	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")

	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastDot < lastComma {
			return shapeDotThousands
		}
		return shapeCommaGroups
	case lastComma >= 0:
		return shapeCommaOnly
	default:
		return shapePlain
	}
}

// rewriteSeparators rewrites s into canonical period-decimal notation.
func rewriteSeparators(s string) string {
	switch shapeOf(s) {
	case shapeDotThousands:
		// "1.234,56": dots group thousands, the comma is the decimal mark.
		s = strings.ReplaceAll(s, ".", "")
		return strings.ReplaceAll(s, ",", ".")
	case shapeCommaGroups:
		// "1,234.56": commas group thousands.
		return strings.ReplaceAll(s, ",", "")
	case shapeCommaOnly:
		// "400,50": a lone comma is a decimal mark.
		return strings.ReplaceAll(s, ",", ".")
	default:
		// A bare "." is already a valid decimal separator.
		return s
	}
}
