package expense

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/expensehub/bill-extract/internal/extraction"
)

// ErrDelegate marks a failure to obtain a response from the secondary
// extraction service.
var ErrDelegate = errors.New("delegate extraction failed")

// Delegate forwards a raw document payload to a language-specific
// extraction service.
type Delegate interface {
	Forward(ctx context.Context, payload []byte) (int, []byte, error)
}

// Service routes documents between the local extractor and the
// delegate. Spanish and Portuguese documents go to the delegate when
// one is configured; everything else is extracted locally.
type Service struct {
	extractor     extraction.Extractor
	delegate      Delegate
	delegateLangs map[string]bool
}

// NewService creates an expense extraction service. A nil delegate
// disables forwarding; all documents are then extracted locally.
func NewService(extractor extraction.Extractor, delegate Delegate) *Service {
	return &Service{
		extractor: extractor,
		delegate:  delegate,
		delegateLangs: map[string]bool{
			extraction.LangSpanish:    true,
			extraction.LangPortuguese: true,
		},
	}
}

// Outcome is the result of processing one document: either a locally
// extracted Result, or a relayed delegate response.
type Outcome struct {
	Result  *extraction.Result
	Relayed bool
	Status  int
	Body    []byte
}

// ProcessDocument parses the payload, detects its language, and either
// extracts fields locally or forwards the original payload bytes to the
// delegate. The delegate receives the payload verbatim so both services
// see identical input.
func (s *Service) ProcessDocument(ctx context.Context, payload []byte) (*Outcome, error) {
	doc, err := extraction.ParseDocument(payload)
	if err != nil {
		return nil, err
	}

	lang := extraction.DetectLanguage(doc.Text())

	if s.delegate != nil && s.delegateLangs[lang] {
		slog.Info("Forwarding document to delegate service", "language", lang)
		status, body, err := s.delegate.Forward(ctx, payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDelegate, err)
		}
		return &Outcome{Relayed: true, Status: status, Body: body}, nil
	}

	result, err := s.extractor.Extract(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("extracting expense fields: %w", err)
	}
	if result.Language == "" {
		result.Language = lang
	}

	return &Outcome{Result: result}, nil
}
