// Package cli provides the command-line interface for mapcontrast.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/trentschlar/DigitalAccessibility/internal/colour"
	"github.com/trentschlar/DigitalAccessibility/internal/palette"
	"github.com/trentschlar/DigitalAccessibility/internal/report"
)

var (
	// Analyse command flags
	analyseFormat  string
	analyseOutput  string
	analyseMatrix  bool
	analysePreview bool
)

// analyseCmd represents the analyse command
var analyseCmd = &cobra.Command{
	Use:   "analyse <palette>",
	Short: "Analyse a palette for WCAG contrast accessibility",
	Long: `Analyse all colour pairs of a palette for WCAG contrast accessibility.

The palette argument is either the name of a built-in palette or the
path to a palette file (JSON or text). Every pair of colours is rated
against the WCAG thresholds for graphical objects and checked under
simulated deuteranopia, protanopia, and tritanopia.

Examples:
  # Analyse a built-in palette
  mapcontrast analyse visiondeficient24

  # Analyse a palette file, show the full contrast matrix
  mapcontrast analyse --matrix theme.json

  # Only report pairs rated AA or better
  mapcontrast analyse --min-rating AA okabe-ito

  # Write an HTML report
  mapcontrast analyse --format html --output report.html visiondeficient24

  # Machine-readable output
  mapcontrast analyse --format json visiondeficient24
  mapcontrast analyse --format csv --output pairs.csv visiondeficient24`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyse,
}

func init() {
	analyseCmd.Flags().StringVarP(&analyseFormat, "format", "f", "table", "output format (table, json, csv, html)")
	analyseCmd.Flags().StringVarP(&analyseOutput, "output", "o", "", "output file (default: stdout)")
	analyseCmd.Flags().BoolVar(&analyseMatrix, "matrix", false, "include the full contrast ratio matrix in table output")
	analyseCmd.Flags().BoolVar(&analysePreview, "preview", false, "show colour previews in table output")
	registerAnalysisFlags(analyseCmd.Flags())
}

// registerAnalysisFlags adds the shared analysis tuning flags to a flag set.
func registerAnalysisFlags(fs *pflag.FlagSet) {
	defaults := colour.DefaultOptions()
	fs.String("min-rating", defaults.MinRating.String(), "minimum WCAG rating for accessible pairs (AA18, AA, AAA)")
	fs.Float64("cvd-threshold", defaults.CVDThreshold, "minimum ratio a pair must keep under simulated deficiencies")
}

// analysisOptions reads the shared analysis tuning flags back out of a flag set.
func analysisOptions(fs *pflag.FlagSet) (colour.Options, error) {
	opts := colour.DefaultOptions()

	name, err := fs.GetString("min-rating")
	if err != nil {
		return opts, err
	}
	rating, err := colour.ParseRating(name)
	if err != nil {
		return opts, err
	}
	if rating == colour.RatingFail {
		return opts, fmt.Errorf("min-rating must be AA18 or better")
	}
	opts.MinRating = rating

	threshold, err := fs.GetFloat64("cvd-threshold")
	if err != nil {
		return opts, err
	}
	if threshold < 1.0 {
		return opts, fmt.Errorf("cvd-threshold must be at least 1.0, got %g", threshold)
	}
	opts.CVDThreshold = threshold

	return opts, nil
}

// runAnalyse executes the analyse command.
func runAnalyse(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	opts, err := analysisOptions(cmd.Flags())
	if err != nil {
		return fmt.Errorf("invalid analysis options: %w", err)
	}

	p, err := palette.Resolve(args[0])
	if err != nil {
		return fmt.Errorf("failed to load palette: %w", err)
	}
	logger.Debug("palette loaded", "name", p.Name, "colours", p.Len())

	result := colour.Analyse(p.Swatches, opts)
	logger.Debug("analysis complete",
		"pairs", result.Summary.TotalPairs,
		"accessible", len(result.Accessible),
		"cvd_safe", len(result.AccessibleToAll))

	var data []byte
	switch analyseFormat {
	case "table":
		data = []byte(renderAnalysisTable(p, result))
	case "json":
		data, err = report.RenderJSON(p.Name, result)
	case "csv":
		data, err = report.RenderCSV(result)
	case "html":
		data, err = report.RenderHTML(p.Name, result)
	default:
		return fmt.Errorf("unsupported format: %s (supported: table, json, csv, html)", analyseFormat)
	}
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	return writeOutput(analyseOutput, data)
}

// renderAnalysisTable renders the terminal report: optional matrix, the
// accessible pairings, and the summary.
func renderAnalysisTable(p palette.Palette, r *colour.Report) string {
	var out strings.Builder

	fmt.Fprintf(&out, "Palette: %s (%d colours)\n\n", p.Name, p.Len())

	if analyseMatrix {
		out.WriteString("Contrast ratio matrix:\n")
		out.WriteString(renderMatrixTable(r))
		out.WriteString("\n")
	}

	fmt.Fprintf(&out, "Accessible pairs (%s or better):\n", r.Options.MinRating)
	if len(r.Accessible) == 0 {
		out.WriteString("  none\n")
	} else {
		out.WriteString(renderPairsTable(r.Accessible))
	}
	out.WriteString("\n")

	out.WriteString(renderSummary(r))
	return out.String()
}

// renderMatrixTable renders the N by N ratio matrix with rating markers.
func renderMatrixTable(r *colour.Report) string {
	headers := make([]string, 0, len(r.Palette)+1)
	headers = append(headers, "")
	for _, s := range r.Palette {
		headers = append(headers, s.Name)
	}

	table := NewTable(headers)
	for i, s := range r.Palette {
		row := make([]string, 0, len(r.Palette)+1)
		row = append(row, swatchCell(s))
		for j := range r.Palette {
			if i == j {
				row = append(row, "-")
				continue
			}
			ratio := r.Matrix[i][j]
			row = append(row, fmt.Sprintf("%.2f %s", ratio, colour.Classify(ratio)))
		}
		table.AddRow(row)
	}
	return table.Render()
}

// renderPairsTable renders accessible pairs with per-deficiency ratios.
func renderPairsTable(pairs []colour.PairAnalysis) string {
	headers := []string{"Colour 1", "Colour 2", "Ratio", "Rating"}
	for _, d := range colour.Deficiencies() {
		headers = append(headers, titleCase(d.String()))
	}
	headers = append(headers, "CVD safe")

	table := NewTable(headers)
	for _, pair := range pairs {
		row := []string{
			swatchCell(pair.A),
			swatchCell(pair.B),
			strconv.FormatFloat(pair.Ratio, 'f', 2, 64),
			pair.Rating.String(),
		}
		for _, check := range pair.Deficiencies {
			cell := strconv.FormatFloat(check.Ratio, 'f', 2, 64)
			if !check.Pass {
				cell += " !"
			}
			row = append(row, cell)
		}
		if pair.PassesAllDeficiencies {
			row = append(row, "yes")
		} else {
			row = append(row, "no")
		}
		table.AddRow(row)
	}
	return table.Render()
}

// renderSummary renders the summary statistics block.
func renderSummary(r *colour.Report) string {
	var out strings.Builder
	fmt.Fprintf(&out, "Total pairs: %d\n", r.Summary.TotalPairs)
	fmt.Fprintf(&out, "Passing AA18 or better: %d (%s)\n",
		r.Summary.PassingNormal, formatPercent(r.Summary.PercentNormal))
	fmt.Fprintf(&out, "Keeping %.1f:1 under all deficiencies: %d (%s)\n",
		r.Options.CVDThreshold, r.Summary.PassingAllDeficiencies, formatPercent(r.Summary.PercentAllDeficiencies))
	return out.String()
}

// swatchCell formats a swatch for a table cell, with an optional preview.
func swatchCell(s colour.Swatch) string {
	if analysePreview {
		return fmt.Sprintf("%s %s %s", colour.Preview(s.Colour, 2), s.Name, s.Hex())
	}
	return fmt.Sprintf("%s %s", s.Name, s.Hex())
}

// formatPercent renders a summary percentage, or N/A when the palette has
// fewer than two colours.
func formatPercent(p *float64) string {
	if p == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", *p)
}
