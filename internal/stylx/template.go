package stylx

import (
	"encoding/json"
	"fmt"

	"github.com/trentschlar/DigitalAccessibility/internal/colour"
)

// ReplaceColours rewrites every CIMRGBColor in a template symbol so the
// symbol renders with an accessible colour pair: fill layers take the
// primary colour, stroke layers the secondary. Alpha values are preserved.
// This lets a hand-designed template symbol be cloned once per pair.
func ReplaceColours(symbolJSON string, primary, secondary colour.RGB) (string, error) {
	var symbol any
	if err := json.Unmarshal([]byte(symbolJSON), &symbol); err != nil {
		return "", fmt.Errorf("failed to parse template symbol: %w", err)
	}

	replaceColoursIn(symbol, primary, secondary, false)

	data, err := json.Marshal(symbol)
	if err != nil {
		return "", fmt.Errorf("failed to encode recoloured symbol: %w", err)
	}
	return string(data), nil
}

// replaceColoursIn walks the decoded symbol graph. inStroke tracks whether
// the walk is inside a CIMSolidStroke layer, which takes the secondary
// colour.
func replaceColoursIn(node any, primary, secondary colour.RGB, inStroke bool) {
	switch v := node.(type) {
	case map[string]any:
		if t, ok := v["type"].(string); ok && t == "CIMSolidStroke" {
			inStroke = true
		}

		if isRGBColor(v) {
			values := v["values"].([]any)
			c := primary
			if inStroke {
				c = secondary
			}
			// Keep the template's alpha.
			v["values"] = []any{float64(c.R), float64(c.G), float64(c.B), values[3]}
			return
		}

		for _, child := range v {
			replaceColoursIn(child, primary, secondary, inStroke)
		}
	case []any:
		for _, child := range v {
			replaceColoursIn(child, primary, secondary, inStroke)
		}
	}
}

// isRGBColor reports whether a decoded map is a CIMRGBColor with RGBA
// values.
func isRGBColor(m map[string]any) bool {
	t, ok := m["type"].(string)
	if !ok || t != "CIMRGBColor" {
		return false
	}
	values, ok := m["values"].([]any)
	return ok && len(values) == 4
}
