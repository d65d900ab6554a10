package extraction

import (
	"strings"

	"github.com/shopspring/decimal"
)

// totalLookahead is how many lines below a keyword line are scanned for
// the amount, covering layouts that print the label and value on
// separate rows.
const totalLookahead = 2

// ExtractTotal finds the most plausible total on the document. Keyword
// lines are tried in priority order; lines carrying an exclusion token
// never supply amounts, and on fuel receipts invoice-number lines are
// skipped too. When no keyword matches, the largest amount anywhere on
// a clean line wins, then the largest amount anywhere at all. Returns
// zero when the document carries no amount.
func ExtractTotal(lines []string, category string, kw *Keywords) decimal.Decimal {
	upper := make([]string, len(lines))
	for i, l := range lines {
		upper[i] = strings.ToUpper(l)
	}

	for _, keyword := range kw.Totals.Priority {
		for i, line := range upper {
			if !strings.Contains(line, keyword) {
				continue
			}
			if containsAny(line, kw.Totals.Exclusions) {
				continue
			}
			if category == CategoryFuel && containsAny(line, kw.Totals.InvoiceLabels) {
				continue
			}
			if total, ok := maxAmountInWindow(lines, i, totalLookahead); ok {
				return total
			}
		}
	}

	if total, ok := maxAmount(lines, upper, kw.Totals.Exclusions); ok {
		return total
	}
	if total, ok := maxAmount(lines, upper, nil); ok {
		return total
	}
	return decimal.Zero
}

// maxAmountInWindow returns the largest amount on line i or the
// lookahead lines below it.
func maxAmountInWindow(lines []string, i, lookahead int) (decimal.Decimal, bool) {
	var best decimal.Decimal
	found := false
	for j := i; j <= i+lookahead && j < len(lines); j++ {
		for _, d := range findAmounts(lines[j]) {
			if !found || d.GreaterThan(best) {
				best = d
				found = true
			}
		}
	}
	return best, found
}

// maxAmount returns the largest amount on any line whose uppercased
// form carries none of the given exclusion tokens.
func maxAmount(lines, upper []string, exclusions []string) (decimal.Decimal, bool) {
	var best decimal.Decimal
	found := false
	for i, line := range lines {
		if len(exclusions) > 0 && containsAny(upper[i], exclusions) {
			continue
		}
		for _, d := range findAmounts(line) {
			if !found || d.GreaterThan(best) {
				best = d
				found = true
			}
		}
	}
	return best, found
}
