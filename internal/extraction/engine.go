package extraction

import (
	"context"
	"time"
)

// TimeSource provides the current time, injectable for tests.
type TimeSource interface {
	Now() time.Time
}

type systemTime struct{}

func (systemTime) Now() time.Time { return time.Now() }

// Engine is the heuristic extractor. It reconstructs visual lines from
// positioned tokens and runs the keyword-driven field extractors over
// them. It holds no per-document state and is safe for concurrent use.
type Engine struct {
	keywords *Keywords
	clock    TimeSource
}

// NewEngine creates a heuristic extraction engine. A nil keyword table
// selects the embedded defaults.
func NewEngine(kw *Keywords) *Engine {
	return NewEngineWithClock(kw, systemTime{})
}

// NewEngineWithClock creates an engine with an injectable time source.
func NewEngineWithClock(kw *Keywords, clock TimeSource) *Engine {
	if kw == nil {
		kw = DefaultKeywords()
	}
	return &Engine{keywords: kw, clock: clock}
}

// Extract runs the full heuristic pipeline over a parsed document.
// Missing fields fall back to defaults rather than failing: the date
// defaults to the processing date, the total to zero, and the purpose
// to Miscellaneous.
func (e *Engine) Extract(_ context.Context, doc *Document) (*Result, error) {
	lines := ReconstructLines(doc.Words())
	fullText := doc.FullText()

	date, hasTime, found := ExtractDate(lines, e.clock.Now(), e.keywords.DateLabels)
	category := ClassifyCategory(fullText, date, found && hasTime, e.keywords)
	total := ExtractTotal(lines, category, e.keywords)
	lang := DetectLanguage(doc.Text())
	currency := DetectCurrency(fullText, lang)

	if !found {
		date = e.clock.Now()
	}

	return &Result{
		CurrencyCode: currency,
		Total:        total,
		Purpose:      category,
		Date:         date.Format("2006-01-02"),
		Language:     lang,
		Submit:       true,
	}, nil
}

// Close is a no-op; the engine holds no external resources.
func (e *Engine) Close() error { return nil }
