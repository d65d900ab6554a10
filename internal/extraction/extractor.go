package extraction

import (
	"context"

	"github.com/shopspring/decimal"
)

// Result contains the expense fields extracted from one document.
type Result struct {
	CurrencyCode string          `json:"currency_code"`
	Total        decimal.Decimal `json:"total"`
	Purpose      string          `json:"purpose"`
	Date         string          `json:"date"` // YYYY-MM-DD
	Language     string          `json:"language,omitempty"`
	Submit       bool            `json:"submit"`
}

// Extractor defines the interface for expense field extraction. The
// heuristic Engine and the Gemini backend are interchangeable variants.
type Extractor interface {
	// Extract analyzes an OCR document and returns the expense fields
	Extract(ctx context.Context, doc *Document) (*Result, error)
	// Close closes the extractor and releases resources
	Close() error
}
