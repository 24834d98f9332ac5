// Package palette provides named colour palettes: builtin accessible
// palettes and palettes loaded from JSON or text files.
package palette

import (
	"encoding/json"
	"fmt"

	"github.com/trentschlar/DigitalAccessibility/internal/colour"
)

// Palette is an ordered collection of named swatches.
type Palette struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Swatches    []colour.Swatch `json:"colours"`
}

// Len returns the number of swatches in the palette.
func (p Palette) Len() int {
	return len(p.Swatches)
}

// Encode serialises the palette as indented JSON, the format accepted by
// Load and produced by the extract command.
func (p Palette) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode palette: %w", err)
	}
	return data, nil
}

// String returns a human-readable listing of the palette.
func (p Palette) String() string {
	if len(p.Swatches) == 0 {
		return "Empty palette"
	}

	result := fmt.Sprintf("%s (%d colours):\n", p.Name, len(p.Swatches))
	for i, s := range p.Swatches {
		result += fmt.Sprintf("  %2d: %s  %s\n", i+1, s.Colour.Hex(), s.Name)
	}
	return result
}
