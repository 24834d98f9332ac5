// Package report renders palette analysis results into JSON, CSV, and HTML.
// The analysis itself performs no I/O; everything here is derived from the
// colour.Report structure without recomputation.
package report

import (
	"encoding/json"
	"fmt"

	"github.com/trentschlar/DigitalAccessibility/internal/colour"
)

// reportJSON is the serialised shape of a full analysis report.
type reportJSON struct {
	PaletteName  string          `json:"palette_name,omitempty"`
	Palette      []colour.Swatch `json:"palette"`
	MinRating    colour.Rating   `json:"min_rating"`
	CVDThreshold float64         `json:"cvd_threshold"`

	// Matrix entries are null on the diagonal (self pair, undefined).
	Matrix [][]*float64 `json:"matrix"`

	Pairs           []colour.PairAnalysis `json:"pairs"`
	Accessible      []colour.PairAnalysis `json:"accessible_pairs"`
	AccessibleToAll []colour.PairAnalysis `json:"accessible_to_all"`

	Summary colour.Summary `json:"summary"`
}

// RenderJSON serialises a report as indented JSON.
func RenderJSON(name string, r *colour.Report) ([]byte, error) {
	matrix := make([][]*float64, len(r.Matrix))
	for i, row := range r.Matrix {
		matrix[i] = make([]*float64, len(row))
		for j := range row {
			if i == j {
				continue
			}
			ratio := row[j]
			matrix[i][j] = &ratio
		}
	}

	out := reportJSON{
		PaletteName:     name,
		Palette:         r.Palette,
		MinRating:       r.Options.MinRating,
		CVDThreshold:    r.Options.CVDThreshold,
		Matrix:          matrix,
		Pairs:           r.Pairs,
		Accessible:      r.Accessible,
		AccessibleToAll: r.AccessibleToAll,
		Summary:         r.Summary,
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return data, nil
}
