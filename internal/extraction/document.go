package extraction

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrInvalidDocument marks payloads that carry no usable word tokens.
// Callers map it to a client-side error.
var ErrInvalidDocument = fmt.Errorf("invalid document")

// Vertex is a page coordinate normalized to the [0,1] range.
type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// BoundingPolygon is the positional envelope an OCR engine reports for
// a word. Only the first (top-left) vertex matters for line grouping.
type BoundingPolygon struct {
	NormalizedVertices []Vertex `json:"normalizedVertices"`
}

// WordToken is one OCR-recognized text unit. The polygon is optional;
// a token without one is excluded from line reconstruction but still
// contributes to the aggregate document text.
type WordToken struct {
	Text            string           `json:"text"`
	BoundingPolygon *BoundingPolygon `json:"boundingPolygon,omitempty"`
}

// Page holds the word tokens of one scanned page.
type Page struct {
	Words []WordToken
}

// UnmarshalJSON accepts either "words" or "wordList" as the key for the
// page's token list. Both names appear in the wild depending on the OCR
// engine revision that produced the payload.
func (p *Page) UnmarshalJSON(data []byte) error {
	var raw struct {
		Words    []WordToken `json:"words"`
		WordList []WordToken `json:"wordList"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Words = raw.Words
	if len(p.Words) == 0 {
		p.Words = raw.WordList
	}
	return nil
}

// MarshalJSON keeps the canonical "words" key on the way out.
func (p Page) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Words []WordToken `json:"words"`
	}{Words: p.Words})
}

// Document is the inbound OCR payload: one or more pages of word tokens.
type Document struct {
	Pages []Page `json:"pages"`
}

// ParseDocument decodes an OCR payload and validates that at least one
// page carries a word list.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decoding payload: %v", ErrInvalidDocument, err)
	}
	if len(doc.Pages) == 0 {
		return nil, fmt.Errorf("%w: payload has no pages", ErrInvalidDocument)
	}
	if len(doc.Words()) == 0 {
		return nil, fmt.Errorf("%w: no words found on any page", ErrInvalidDocument)
	}
	return &doc, nil
}

// Words returns all tokens across pages in payload order.
func (d *Document) Words() []WordToken {
	var words []WordToken
	for _, page := range d.Pages {
		words = append(words, page.Words...)
	}
	return words
}

// Text returns every token text joined with single spaces, in payload
// order and original casing. Tokens without position data are included.
func (d *Document) Text() string {
	var parts []string
	for _, w := range d.Words() {
		if w.Text != "" {
			parts = append(parts, w.Text)
		}
	}
	return strings.Join(parts, " ")
}

// FullText is Text uppercased, the form the keyword matchers consume.
func (d *Document) FullText() string {
	return strings.ToUpper(d.Text())
}
