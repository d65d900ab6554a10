package expense

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/expensehub/bill-extract/internal/extraction"
)

// maxDocumentSize caps the request body; OCR word lists for even dense
// multi-page invoices stay well under this.
const maxDocumentSize = 10 << 20 // 10MB

// extractResponse is the outbound expense report payload.
type extractResponse struct {
	ReimbursementCurrencyCode string `json:"ReimbursementCurrencyCode"`
	ExpenseReportTotal        string `json:"ExpenseReportTotal"`
	Purpose                   string `json:"Purpose"`
	ExpenseDate               string `json:"ExpenseDate"`
	Language                  string `json:"Language,omitempty"`
	SubmitReport              string `json:"SubmitReport"`
}

// writeError writes a JSON error response with CORS headers set
func (s *Server) writeError(w http.ResponseWriter, message string, code int) {
	s.setCORSHeaders(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// handleExtract accepts an OCR document and returns the extracted
// expense fields, or relays the delegate's response untouched.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDocumentSize))
	if err != nil {
		slog.Error("Error reading request body", "error", err)
		s.writeError(w, "Error reading request body", http.StatusBadRequest)
		return
	}

	outcome, err := s.service.ProcessDocument(r.Context(), body)
	if err != nil {
		switch {
		case errors.Is(err, extraction.ErrInvalidDocument):
			slog.Error("Invalid document", "error", err)
			s.writeError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrDelegate):
			slog.Error("Delegate service unavailable", "error", err)
			s.writeError(w, "Delegate extraction service unavailable", http.StatusBadGateway)
		default:
			slog.Error("Error processing document", "error", err)
			s.writeError(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	if outcome.Relayed {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(outcome.Status)
		if _, err := w.Write(outcome.Body); err != nil {
			slog.Error("Error relaying delegate response", "error", err)
		}
		return
	}

	result := outcome.Result
	resp := extractResponse{
		ReimbursementCurrencyCode: result.CurrencyCode,
		ExpenseReportTotal:        result.Total.StringFixed(2),
		Purpose:                   result.Purpose,
		ExpenseDate:               result.Date,
		Language:                  result.Language,
		SubmitReport:              "Y",
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

// handleHealth reports process liveness
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
