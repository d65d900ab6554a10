package extraction

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// amountPattern matches numeric-looking substrings, optionally led
	// by a currency glyph or code.
	amountPattern = regexp.MustCompile(`(?i)(?:₹|\$|€|£|R\$|Rs\.?|INR|USD|EUR|GBP|BRL)?\s*\d[\d.,]*`)

	// currencyMarks strips glyphs and codes before numeric parsing.
	currencyMarks = regexp.MustCompile(`(?i)R\$|₹|\$|€|£|\b(?:RS|INR|USD|EUR|GBP|BRL)\b\.?`)

	// euroDecimal detects the European convention: a trailing comma
	// followed by exactly two digits is the decimal separator.
	euroDecimal = regexp.MustCompile(`,\d{2}$`)
)

// maxPlausibleAmount rejects OCR misreads (barcodes, phone numbers)
// masquerading as amounts.
var maxPlausibleAmount = decimal.NewFromInt(10_000_000)

// ParseAmount normalizes a raw numeric substring into a monetary value.
// Currency glyphs and 3-letter codes are stripped; ambiguous separators
// are resolved by convention (trailing ",dd" means comma-decimal, dot
// thousands; otherwise comma is a thousands separator); a malformed
// multi-dot result keeps only the final dot as the decimal point.
// Values outside (0, 10,000,000] are rejected.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	s := currencyMarks.ReplaceAllString(raw, "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.Trim(s, ".,")
	if s == "" {
		return decimal.Decimal{}, false
	}

	if euroDecimal.MatchString(s) {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}

	// Collapse any remaining multi-dot form, keeping the last dot as
	// the decimal point.
	if strings.Count(s, ".") > 1 {
		last := strings.LastIndex(s, ".")
		s = strings.ReplaceAll(s[:last], ".", "") + s[last:]
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	if !d.IsPositive() || d.GreaterThan(maxPlausibleAmount) {
		return decimal.Decimal{}, false
	}
	return d, true
}

// findAmounts returns every parseable amount in a line. Numeric runs
// glued to a date or time separator are fragments of a date or clock
// time, not amounts.
func findAmounts(line string) []decimal.Decimal {
	var out []decimal.Decimal
	for _, loc := range amountPattern.FindAllStringIndex(line, -1) {
		if dateTimePart(line, loc[0], loc[1]) {
			continue
		}
		if d, ok := ParseAmount(line[loc[0]:loc[1]]); ok {
			out = append(out, d)
		}
	}
	return out
}

func dateTimePart(line string, start, end int) bool {
	if start > 0 && isDateTimeSep(line[start-1]) {
		return true
	}
	if end < len(line) && isDateTimeSep(line[end]) {
		return true
	}
	return false
}

func isDateTimeSep(c byte) bool {
	return c == '/' || c == '-' || c == ':'
}
