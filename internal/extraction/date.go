package extraction

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

// datePatterns pull candidate date substrings out of reconstructed
// lines. Numeric ISO-style dates are tried before day-first numeric
// forms, then month-name forms in either order.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{4}[-/.]\d{1,2}[-/.]\d{1,2}(?:\s+\d{1,2}:\d{2})?`),
	regexp.MustCompile(`\b\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4}(?:\s+\d{1,2}:\d{2})?`),
	regexp.MustCompile(`(?i)\b\d{1,2}[-\s]*(?:JAN|FEB|MAR|APR|MAY|JUN|JUL|AUG|SEP|OCT|NOV|DEC)[A-Z]*[-,\s]+\d{2,4}\b`),
	regexp.MustCompile(`(?i)\b(?:JAN|FEB|MAR|APR|MAY|JUN|JUL|AUG|SEP|OCT|NOV|DEC)[A-Z]*[-\s]+\d{1,2}[,\s]+\d{2,4}\b`),
}

// dateLayouts use non-padded reference forms, which accept both padded
// and unpadded input. Day-first layouts come before month-first ones so
// ambiguous numeric dates like 05/08/2023 read as 5 August.
var dateLayouts = []string{
	"2006-1-2 15:04",
	"2006-1-2",
	"2006/1/2",
	"2006.1.2",
	"2-1-2006 15:04",
	"2/1/2006 15:04",
	"2-1-2006",
	"2/1/2006",
	"2.1.2006",
	"1/2/2006",
	"1-2-2006",
	"2-1-06",
	"2/1/06",
	"2-Jan-2006",
	"2 Jan 2006",
	"2-Jan-06",
	"2 Jan 06",
	"2 January 2006",
	"2-January-2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"January 2, 2006",
	"January 2 2006",
}

// minDateYear bounds candidates below; the upper bound is one year past
// the processing clock. Receipts older than this are treated as OCR
// noise.
const minDateYear = 2010

// ExtractDate scans lines for the transaction date. Lines carrying a
// date label win over unlabeled ones; within a group the first
// parseable candidate is taken. Two-digit and sub-2000 years are
// shifted forward a century before the plausibility window is applied.
// The second return reports whether the matched form carried a
// clock time, the third whether any date was found at all.
func ExtractDate(lines []string, now time.Time, labels []string) (time.Time, bool, bool) {
	type candidate struct {
		t       time.Time
		hasTime bool
	}
	var labeled, unlabeled []candidate

	maxYear := now.Year() + 1
	for _, line := range lines {
		upper := strings.ToUpper(line)
		isLabeled := containsAny(upper, labels)
		for _, pattern := range datePatterns {
			for _, match := range pattern.FindAllString(line, -1) {
				t, hasTime, ok := parseDateCandidate(match)
				if !ok {
					continue
				}
				if t.Year() < 2000 {
					t = t.AddDate(100, 0, 0)
				}
				if t.Year() < minDateYear || t.Year() > maxYear {
					continue
				}
				c := candidate{t: t, hasTime: hasTime}
				if isLabeled {
					labeled = append(labeled, c)
				} else {
					unlabeled = append(unlabeled, c)
				}
			}
		}
	}

	if len(labeled) > 0 {
		return labeled[0].t, labeled[0].hasTime, true
	}
	if len(unlabeled) > 0 {
		return unlabeled[0].t, unlabeled[0].hasTime, true
	}
	return time.Time{}, false, false
}

func parseDateCandidate(raw string) (time.Time, bool, bool) {
	s := normalizeDateCandidate(raw)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return t, strings.Contains(layout, "15:04"), true
	}
	return time.Time{}, false, false
}

// normalizeDateCandidate collapses whitespace, drops the comma into a
// trailing space, and title-cases month names so case-sensitive layout
// parsing accepts forms like "15-AUG-2023".
func normalizeDateCandidate(raw string) string {
	s := strings.Join(strings.Fields(raw), " ")
	s = strings.ReplaceAll(s, ",", ", ")
	s = strings.Join(strings.Fields(s), " ")

	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
