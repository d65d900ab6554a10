package extraction

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// modelResult is the JSON shape requested from the model.
type modelResult struct {
	Currency string          `json:"currency"`
	Total    decimal.Decimal `json:"total"`
	Purpose  string          `json:"purpose"`
	Date     string          `json:"date"`
	Language string          `json:"language"`
}

// parseResultJSON parses the JSON response from Gemini into a Result,
// applying the same defaults as the heuristic engine for fields the
// model left out or mangled.
func parseResultJSON(text string, now time.Time) (*Result, error) {
	text = strings.TrimSpace(text)

	// Remove markdown code blocks if present
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSpace(text)

	// Find the JSON object boundaries - look for first { and last }
	startIdx := strings.Index(text, "{")
	if startIdx == -1 {
		return nil, fmt.Errorf("no JSON object found in response")
	}

	endIdx := strings.LastIndex(text, "}")
	if endIdx == -1 || endIdx < startIdx {
		return nil, fmt.Errorf("invalid JSON object in response")
	}

	text = text[startIdx : endIdx+1]

	var data modelResult
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return nil, fmt.Errorf("unmarshaling json: %w", err)
	}

	date := now.Format("2006-01-02")
	if data.Date != "" {
		if t, _, ok := parseDateCandidate(data.Date); ok {
			date = t.Format("2006-01-02")
		}
	}

	purpose := strings.TrimSpace(data.Purpose)
	if purpose == "" {
		purpose = CategoryMiscellaneous
	}

	currency := strings.ToUpper(strings.TrimSpace(data.Currency))
	if currency == "" {
		currency = "INR"
	}

	total := data.Total
	if !total.IsPositive() || total.GreaterThan(maxPlausibleAmount) {
		total = decimal.Zero
	}

	return &Result{
		CurrencyCode: currency,
		Total:        total,
		Purpose:      purpose,
		Date:         date,
		Language:     strings.ToLower(strings.TrimSpace(data.Language)),
		Submit:       true,
	}, nil
}
