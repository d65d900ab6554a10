package extraction

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed keywords.yaml
var defaultKeywordsYAML []byte

// CategoryRule pairs a purpose category with the keyword set that
// selects it.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// TotalRules drive the total extractor: keyword priorities, exclusion
// tokens that mark sub-amount lines, and the invoice-number labels
// skipped for fuel receipts.
type TotalRules struct {
	Priority      []string `yaml:"priority"`
	Exclusions    []string `yaml:"exclusions"`
	InvoiceLabels []string `yaml:"invoice_labels"`
}

// Keywords is the full keyword table. Lists are evaluated strictly in
// file order, which makes extraction precedence data instead of code.
type Keywords struct {
	Totals     TotalRules     `yaml:"totals"`
	DateLabels []string       `yaml:"date_labels"`
	Categories []CategoryRule `yaml:"categories"`
	Meals      []CategoryRule `yaml:"meals"`
}

// DefaultKeywords returns the embedded keyword table.
func DefaultKeywords() *Keywords {
	kw, err := parseKeywords(defaultKeywordsYAML)
	if err != nil {
		// The embedded table is validated by the test suite; a failure
		// here means a broken build, not bad runtime input.
		panic(fmt.Sprintf("embedded keyword table invalid: %v", err))
	}
	return kw
}

// LoadKeywords reads a keyword table from a YAML file.
func LoadKeywords(path string) (*Keywords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keywords file: %w", err)
	}
	return parseKeywords(data)
}

func parseKeywords(data []byte) (*Keywords, error) {
	var kw Keywords
	if err := yaml.Unmarshal(data, &kw); err != nil {
		return nil, fmt.Errorf("decoding keywords: %w", err)
	}
	if len(kw.Totals.Priority) == 0 {
		return nil, fmt.Errorf("keyword table has no total keywords")
	}
	if len(kw.Categories) == 0 {
		return nil, fmt.Errorf("keyword table has no categories")
	}
	kw.normalize()
	return &kw, nil
}

// normalize uppercases every keyword once so matching is a plain
// substring check against uppercased document text.
func (k *Keywords) normalize() {
	upperAll(k.Totals.Priority)
	upperAll(k.Totals.Exclusions)
	upperAll(k.Totals.InvoiceLabels)
	upperAll(k.DateLabels)
	for i := range k.Categories {
		upperAll(k.Categories[i].Keywords)
	}
	for i := range k.Meals {
		upperAll(k.Meals[i].Keywords)
	}
}

func upperAll(words []string) {
	for i, w := range words {
		words[i] = strings.ToUpper(w)
	}
}

// containsAny reports whether text contains any of the given uppercased
// keywords. Text must already be uppercased.
func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
