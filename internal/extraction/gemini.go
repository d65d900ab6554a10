package extraction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const extractPrompt = `Analyze this receipt text and extract expense fields.
Return ONLY a JSON object with these keys:
- "currency": ISO 4217 code (INR, USD, EUR, GBP, BRL)
- "total": the final payable amount as a number
- "purpose": one of Shopping, Flight, Taxi, Fuel, Hotel, Entertainment, Office Supplies, Medical, Breakfast, Lunch, Dinner, Miscellaneous
- "date": transaction date as YYYY-MM-DD
- "language": two-letter code of the receipt language (en, es, pt)

Receipt text:
`

// Gemini implements the Extractor interface using Google Gemini
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
	clock  TimeSource
}

// NewGemini creates a new Gemini Extractor instance
func NewGemini(apiKey string, modelName string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if modelName == "" {
		modelName = "gemini-2.5-pro"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)

	return &Gemini{
		client: client,
		model:  model,
		clock:  systemTime{},
	}, nil
}

// Extract sends the reconstructed receipt text to Gemini and parses the
// structured response.
func (g *Gemini) Extract(ctx context.Context, doc *Document) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	lines := ReconstructLines(doc.Words())
	text := strings.Join(lines, "\n")
	if text == "" {
		// Tokens without positions still carry text worth sending.
		text = doc.Text()
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(extractPrompt+text))
	if err != nil {
		return nil, fmt.Errorf("generating content: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			responseText.WriteString(string(t))
		}
	}

	result, err := parseResultJSON(responseText.String(), g.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("parsing extraction result: %w", err)
	}

	return result, nil
}

// Close closes the Gemini client
func (g *Gemini) Close() error {
	return g.client.Close()
}
