package colour

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Swatch is a named palette colour.
type Swatch struct {
	Name   string
	Colour RGB
}

// Hex returns the swatch colour as a lowercase hex string.
func (s Swatch) Hex() string {
	return s.Colour.Hex()
}

// swatchJSON is the serialised form of a Swatch.
type swatchJSON struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
	RGB  RGB    `json:"rgb"`
}

// MarshalJSON implements json.Marshaler.
func (s Swatch) MarshalJSON() ([]byte, error) {
	return json.Marshal(swatchJSON{
		Name: s.Name,
		Hex:  s.Colour.Hex(),
		RGB:  s.Colour,
	})
}

// UnmarshalJSON implements json.Unmarshaler. The hex field is authoritative;
// a malformed hex string fails the whole decode rather than defaulting.
func (s *Swatch) UnmarshalJSON(data []byte) error {
	var raw swatchJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	rgb, err := ParseHex(raw.Hex)
	if err != nil {
		return fmt.Errorf("swatch %q: %w", raw.Name, err)
	}

	s.Name = raw.Name
	s.Colour = rgb
	return nil
}

// DeficiencyCheck records the simulated contrast of a pair under one
// deficiency type and whether it meets the pass threshold.
type DeficiencyCheck struct {
	Deficiency Deficiency `json:"deficiency"`
	Ratio      float64    `json:"ratio"`
	Pass       bool       `json:"pass"`
}

// PairAnalysis binds two palette swatches to their normal-vision contrast
// ratio and rating, and optionally to the simulated contrast under each
// deficiency type.
type PairAnalysis struct {
	I int `json:"i"`
	J int `json:"j"`

	A Swatch `json:"a"`
	B Swatch `json:"b"`

	Ratio  float64 `json:"ratio"`
	Rating Rating  `json:"rating"`

	Deficiencies          []DeficiencyCheck `json:"deficiencies,omitempty"`
	PassesAllDeficiencies bool              `json:"passes_all_deficiencies"`
}

// Summary holds the aggregate counts of a palette analysis. Percentages are
// nil for palettes with fewer than two colours, where they are undefined.
type Summary struct {
	TotalPairs             int      `json:"total_pairs"`
	PassingNormal          int      `json:"passing_normal"`
	PassingAllDeficiencies int      `json:"passing_all_deficiencies"`
	PercentNormal          *float64 `json:"percent_normal"`
	PercentAllDeficiencies *float64 `json:"percent_all_deficiencies"`
}

// Options configures a palette analysis.
type Options struct {
	// MinRating is the minimum normal-vision rating for a pair to be
	// considered accessible.
	MinRating Rating
	// CVDThreshold is the raw contrast ratio a pair must keep under every
	// simulated deficiency. Deficiency checks are boolean against this
	// value, not a rating band.
	CVDThreshold float64
}

// DefaultOptions returns the standard thresholds for graphical objects:
// AA18 (3.0) for normal vision and 3.0 under simulated deficiencies.
func DefaultOptions() Options {
	return Options{
		MinRating:    RatingAA18,
		CVDThreshold: ThresholdAA18,
	}
}

// Report is the complete result of analysing a palette. It is a pure
// function of the input palette and thresholds; renderers consume it
// without recomputation.
type Report struct {
	Palette []Swatch
	Options Options

	// Matrix is the full N×N contrast matrix. Diagonal entries are 0,
	// marking the undefined self pair (a valid ratio is always >= 1).
	Matrix [][]float64

	// Pairs lists every unordered pair (i<j) in enumeration order.
	Pairs []PairAnalysis
	// Accessible lists the pairs meeting MinRating, sorted by descending
	// ratio (stable on ties).
	Accessible []PairAnalysis
	// AccessibleToAll is the subsequence of Accessible that keeps
	// CVDThreshold under every simulated deficiency.
	AccessibleToAll []PairAnalysis

	Summary Summary
}

// BuildMatrix computes the full pairwise contrast matrix for a palette.
// Each ratio is computed once and mirrored, so the matrix is exactly
// symmetric. Diagonal entries are 0 (self pair, undefined).
func BuildMatrix(palette []Swatch) [][]float64 {
	n := len(palette)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ratio := ContrastRatio(palette[i].Colour, palette[j].Colour)
			matrix[i][j] = ratio
			matrix[j][i] = ratio
		}
	}

	return matrix
}

// AccessiblePairs enumerates the unordered pairs (i<j) whose rating meets
// minRating, sorted by descending contrast ratio. Ties keep the original
// (i, j) enumeration order.
func AccessiblePairs(palette []Swatch, matrix [][]float64, minRating Rating) []PairAnalysis {
	pairs := make([]PairAnalysis, 0)

	for i := 0; i < len(palette); i++ {
		for j := i + 1; j < len(palette); j++ {
			ratio := matrix[i][j]
			rating := Classify(ratio)
			if rating < minRating {
				continue
			}
			pairs = append(pairs, PairAnalysis{
				I:      i,
				J:      j,
				A:      palette[i],
				B:      palette[j],
				Ratio:  ratio,
				Rating: rating,
			})
		}
	}

	sort.SliceStable(pairs, func(a, b int) bool {
		return pairs[a].Ratio > pairs[b].Ratio
	})

	return pairs
}

// DeficiencyFilter simulates every pair under each deficiency type and
// checks the resulting contrast against threshold. It returns the pairs
// that pass under all deficiencies (input order preserved) alongside the
// full per-pair analysis.
func DeficiencyFilter(pairs []PairAnalysis, threshold float64) (accessibleToAll, full []PairAnalysis) {
	full = make([]PairAnalysis, len(pairs))
	accessibleToAll = make([]PairAnalysis, 0)

	for idx, pair := range pairs {
		checks := make([]DeficiencyCheck, 0, len(Deficiencies()))
		passesAll := true

		for _, d := range Deficiencies() {
			ratio := SimulatedContrastRatio(pair.A.Colour, pair.B.Colour, d)
			pass := ratio >= threshold
			if !pass {
				passesAll = false
			}
			checks = append(checks, DeficiencyCheck{
				Deficiency: d,
				Ratio:      ratio,
				Pass:       pass,
			})
		}

		pair.Deficiencies = checks
		pair.PassesAllDeficiencies = passesAll
		full[idx] = pair

		if passesAll {
			accessibleToAll = append(accessibleToAll, pair)
		}
	}

	return accessibleToAll, full
}

// Summarise computes the aggregate counts for a palette analysis. The pairs
// argument must cover every unordered pair of the palette. For palettes
// with fewer than two colours the percentages are undefined and left nil.
func Summarise(palette []Swatch, pairs []PairAnalysis) Summary {
	n := len(palette)
	summary := Summary{
		TotalPairs: n * (n - 1) / 2,
	}

	for _, pair := range pairs {
		if pair.Rating >= RatingAA18 {
			summary.PassingNormal++
		}
		if pair.PassesAllDeficiencies {
			summary.PassingAllDeficiencies++
		}
	}

	if summary.TotalPairs > 0 {
		normal := float64(summary.PassingNormal) / float64(summary.TotalPairs) * 100
		all := float64(summary.PassingAllDeficiencies) / float64(summary.TotalPairs) * 100
		summary.PercentNormal = &normal
		summary.PercentAllDeficiencies = &all
	}

	return summary
}

// Analyse runs the complete palette analysis: contrast matrix, pair
// enumeration, accessibility filtering, deficiency simulation, and summary
// statistics. Palettes with fewer than two colours yield an empty (but
// valid) report.
func Analyse(palette []Swatch, opts Options) *Report {
	matrix := BuildMatrix(palette)

	// Every pair, enumeration order, with deficiency analysis attached.
	_, allPairs := DeficiencyFilter(AccessiblePairs(palette, matrix, RatingFail), opts.CVDThreshold)
	sort.SliceStable(allPairs, func(a, b int) bool {
		if allPairs[a].I != allPairs[b].I {
			return allPairs[a].I < allPairs[b].I
		}
		return allPairs[a].J < allPairs[b].J
	})

	accessible := AccessiblePairs(palette, matrix, opts.MinRating)
	accessibleToAll, accessible := DeficiencyFilter(accessible, opts.CVDThreshold)

	return &Report{
		Palette:         palette,
		Options:         opts,
		Matrix:          matrix,
		Pairs:           allPairs,
		Accessible:      accessible,
		AccessibleToAll: accessibleToAll,
		Summary:         Summarise(palette, allPairs),
	}
}
