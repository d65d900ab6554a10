package extraction

import (
	"math"
	"sort"
	"strings"
)

// rowTolerance is the rounded-Y delta below which two tokens are
// considered part of the same visual line.
const rowTolerance = 0.01

type placedToken struct {
	text string
	x    float64
	y    float64 // rounded to two decimals
}

// ReconstructLines groups unordered word tokens into visual lines.
// Tokens without bounding data are skipped. The rest are ordered
// top-to-bottom then left-to-right and partitioned whenever the rounded
// Y coordinate moves by rowTolerance or more. The result is independent
// of the input token order.
func ReconstructLines(words []WordToken) []string {
	tokens := make([]placedToken, 0, len(words))
	for _, w := range words {
		if w.BoundingPolygon == nil || len(w.BoundingPolygon.NormalizedVertices) == 0 {
			continue
		}
		v := w.BoundingPolygon.NormalizedVertices[0]
		tokens = append(tokens, placedToken{text: w.Text, x: v.X, y: roundY(v.Y)})
	}

	sort.SliceStable(tokens, func(i, j int) bool {
		if tokens[i].y != tokens[j].y {
			return tokens[i].y < tokens[j].y
		}
		if tokens[i].x != tokens[j].x {
			return tokens[i].x < tokens[j].x
		}
		// Coincident tokens order by text so the result does not
		// depend on input order.
		return tokens[i].text < tokens[j].text
	})

	var lines []string
	var current []string
	prevY := math.NaN()
	for _, t := range tokens {
		if !math.IsNaN(prevY) && math.Abs(t.y-prevY) >= rowTolerance {
			lines = append(lines, strings.Join(current, " "))
			current = nil
		}
		current = append(current, t.text)
		prevY = t.y
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}

func roundY(y float64) float64 {
	return math.Round(y*100) / 100
}
