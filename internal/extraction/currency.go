package extraction

import (
	"regexp"
	"strings"

	"github.com/abadojack/whatlanggo"
)

// Language codes the pipeline distinguishes. Anything else is treated
// as English for routing purposes.
const (
	LangEnglish    = "en"
	LangSpanish    = "es"
	LangPortuguese = "pt"
)

// Lexical overrides for short receipt text, where statistical detection
// is unreliable. All uppercase; matched against uppercased text.
var (
	spanishSignals = []string{"IVA", "FACTURA", "GRACIAS POR SU COMPRA", "IMPORTE", "TOTAL A PAGAR"}

	portugueseSignals = []string{"NOTA FISCAL", "OBRIGADO", "CNPJ", "CUPOM FISCAL"}

	rupeeSignals = []string{"₹", "INR", "RUPEE"}

	// The bare Rs abbreviation needs word boundaries; as a substring it
	// hides inside words like HOURS.
	rupeeAbbrev = regexp.MustCompile(`\bRS\b`)

	gstSignals = []string{"CGST", "SGST", "IGST", "GSTIN", "GST"}

	brazilTaxSignals = []string{"CNPJ", "CPF"}
)

// DetectLanguage classifies document text as English, Spanish, or
// Portuguese. Domain-specific tax and courtesy phrases override the
// statistical detector because receipts are too short and too numeric
// for it to be trusted on its own.
func DetectLanguage(text string) string {
	upper := strings.ToUpper(text)
	if containsAny(upper, portugueseSignals) {
		return LangPortuguese
	}
	if containsAny(upper, spanishSignals) {
		return LangSpanish
	}

	info := whatlanggo.Detect(text)
	if info.IsReliable() {
		switch info.Lang {
		case whatlanggo.Spa:
			return LangSpanish
		case whatlanggo.Por:
			return LangPortuguese
		}
	}
	return LangEnglish
}

// DetectCurrency infers the currency from explicit markers first, then
// language. Indian tax acronyms and Brazilian registry numbers beat
// symbols because $ often appears on the same receipt as ₹ or R$.
// The home default is INR.
func DetectCurrency(fullText, lang string) string {
	if containsAny(fullText, gstSignals) {
		return "INR"
	}
	if containsAny(fullText, brazilTaxSignals) {
		return "BRL"
	}
	if containsAny(fullText, rupeeSignals) || rupeeAbbrev.MatchString(fullText) {
		return "INR"
	}
	switch {
	case strings.Contains(fullText, "€") || strings.Contains(fullText, "EUR"):
		return "EUR"
	case strings.Contains(fullText, "R$"):
		return "BRL"
	case strings.Contains(fullText, "£") || strings.Contains(fullText, "GBP"):
		return "GBP"
	case strings.Contains(fullText, "$") || strings.Contains(fullText, "USD"):
		return "USD"
	}
	switch lang {
	case LangSpanish:
		return "EUR"
	case LangPortuguese:
		return "BRL"
	}
	return "INR"
}
