package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/trentschlar/DigitalAccessibility/internal/colour"
)

// csvHeader is the column layout for pair rows. One row per unordered pair,
// with the simulated ratio under each deficiency type.
var csvHeader = []string{
	"colour_1", "hex_1",
	"colour_2", "hex_2",
	"ratio", "rating",
	"deuteranopia_ratio", "deuteranopia_pass",
	"protanopia_ratio", "protanopia_pass",
	"tritanopia_ratio", "tritanopia_pass",
	"passes_all_deficiencies",
}

// RenderCSV serialises every pair of the report as CSV, in pair
// enumeration order.
func RenderCSV(r *colour.Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, pair := range r.Pairs {
		row := []string{
			pair.A.Name, pair.A.Colour.Hex(),
			pair.B.Name, pair.B.Colour.Hex(),
			formatRatio(pair.Ratio), pair.Rating.String(),
		}

		for _, check := range pair.Deficiencies {
			row = append(row, formatRatio(check.Ratio), strconv.FormatBool(check.Pass))
		}

		row = append(row, strconv.FormatBool(pair.PassesAllDeficiencies))

		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return buf.Bytes(), nil
}

// formatRatio renders a contrast ratio with two decimal places, the
// precision used throughout the reports.
func formatRatio(ratio float64) string {
	return strconv.FormatFloat(ratio, 'f', 2, 64)
}
