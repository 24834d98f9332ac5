package report

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/trentschlar/DigitalAccessibility/internal/colour"
)

// matrixCell is one entry of the rendered contrast matrix.
type matrixCell struct {
	Self   bool
	Ratio  float64
	Rating string
}

// matrixRow pairs a swatch with its row of matrix cells.
type matrixRow struct {
	Swatch colour.Swatch
	Cells  []matrixCell
}

// htmlData is the template context for the HTML report.
type htmlData struct {
	Title   string
	Palette []colour.Swatch
	Rows    []matrixRow

	Pairings        []colour.PairAnalysis
	AccessibleToAll []colour.PairAnalysis

	Summary            colour.Summary
	PercentNormal      string
	PercentAllPassing  string
	MinRating          string
	CVDThresholdString string
}

// RenderHTML renders the full visual report: rating legend, contrast
// matrix, recommended pairings, and summary statistics.
func RenderHTML(name string, r *colour.Report) ([]byte, error) {
	rows := make([]matrixRow, len(r.Palette))
	for i, swatch := range r.Palette {
		cells := make([]matrixCell, len(r.Palette))
		for j := range r.Palette {
			if i == j {
				cells[j] = matrixCell{Self: true}
				continue
			}
			ratio := r.Matrix[i][j]
			cells[j] = matrixCell{
				Ratio:  ratio,
				Rating: colour.Classify(ratio).String(),
			}
		}
		rows[i] = matrixRow{Swatch: swatch, Cells: cells}
	}

	data := htmlData{
		Title:              fmt.Sprintf("%s - Contrast Analysis", name),
		Palette:            r.Palette,
		Rows:               rows,
		Pairings:           r.Accessible,
		AccessibleToAll:    r.AccessibleToAll,
		Summary:            r.Summary,
		PercentNormal:      formatPercent(r.Summary.PercentNormal),
		PercentAllPassing:  formatPercent(r.Summary.PercentAllDeficiencies),
		MinRating:          r.Options.MinRating.String(),
		CVDThresholdString: formatRatio(r.Options.CVDThreshold),
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render HTML report: %w", err)
	}
	return buf.Bytes(), nil
}

// formatPercent renders a summary percentage, or N/A when undefined
// (palettes with fewer than two colours).
func formatPercent(p *float64) string {
	if p == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", *p)
}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; background-color: #f5f5f5; }
        h1, h2 { color: #333; }
        .container { background: white; padding: 20px; margin: 20px 0; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        .matrix-container { overflow-x: auto; }
        table { border-collapse: collapse; font-size: 11px; }
        th, td { border: 1px solid #ddd; padding: 8px; text-align: center; min-width: 60px; }
        th { background-color: #333; color: white; font-weight: bold; position: sticky; top: 0; }
        th.row-header { text-align: left; position: sticky; left: 0; }
        td.same-colour { background-color: #e0e0e0; color: #999; }
        .rating-AAA { background-color: #4CAF50; color: white; }
        .rating-AA { background-color: #8BC34A; color: white; }
        .rating-AA18 { background-color: #FFC107; color: black; }
        .rating-Fail { background-color: #F44336; color: white; }
        .swatch { display: inline-block; width: 20px; height: 20px; border: 1px solid #000; margin-right: 8px; vertical-align: middle; }
        .pairing { margin: 10px 0; padding: 10px; border-left: 4px solid #4CAF50; background-color: #f9f9f9; }
        .pairing-colours { display: flex; align-items: center; margin: 5px 0; }
        .legend-item { display: inline-block; margin-right: 20px; padding: 5px 10px; border-radius: 3px; }
        .badge { padding: 2px 6px; border-radius: 3px; }
    </style>
</head>
<body>
    <h1>{{.Title}}</h1>

    <div class="container">
        <h3>WCAG Ratings for Graphical Objects (Non-Text)</h3>
        <span class="legend-item rating-AAA">AAA: &ge;7.0 (Excellent)</span>
        <span class="legend-item rating-AA">AA: &ge;4.5 (Very Good)</span>
        <span class="legend-item rating-AA18">AA18: &ge;3.0 (Good - Minimum)</span>
        <span class="legend-item rating-Fail">Fail: &lt;3.0 (Insufficient)</span>
    </div>

    <div class="container matrix-container">
        <h2>Contrast Ratio Matrix</h2>
        <p>Each cell shows the contrast ratio between the row colour and column colour.</p>
        <table>
            <thead>
                <tr>
                    <th class="row-header">&nbsp;</th>
                    {{- range .Palette}}
                    <th><div class="swatch" style="background-color: {{.Hex}};"></div>{{.Name}}</th>
                    {{- end}}
                </tr>
            </thead>
            <tbody>
                {{- range .Rows}}
                <tr>
                    <th class="row-header"><div class="swatch" style="background-color: {{.Swatch.Hex}};"></div>{{.Swatch.Name}}</th>
                    {{- range .Cells}}
                    {{- if .Self}}
                    <td class="same-colour">&mdash;</td>
                    {{- else}}
                    <td class="rating-{{.Rating}}">{{printf "%.2f" .Ratio}}<br><small>{{.Rating}}</small></td>
                    {{- end}}
                    {{- end}}
                </tr>
                {{- end}}
            </tbody>
        </table>
    </div>

    <div class="container">
        <h2>Recommended Colour Pairings</h2>
        <p>All colour combinations meeting {{.MinRating}} or better under normal vision:</p>
        {{- range .Pairings}}
        <div class="pairing">
            <div class="pairing-colours">
                <div class="swatch" style="background-color: {{.A.Hex}};"></div>
                <strong>{{.A.Name}}</strong> ({{.A.Hex}})
                <span style="margin: 0 10px;">&harr;</span>
                <div class="swatch" style="background-color: {{.B.Hex}};"></div>
                <strong>{{.B.Name}}</strong> ({{.B.Hex}})
            </div>
            <div>Contrast Ratio: <strong>{{printf "%.2f" .Ratio}}:1</strong> |
                Rating: <span class="badge rating-{{.Rating}}">{{.Rating}}</span> |
                Colour-vision safe: <strong>{{if .PassesAllDeficiencies}}yes{{else}}no{{end}}</strong></div>
            <div><small>
                {{- range $i, $check := .Deficiencies}}{{if $i}} | {{end}}{{$check.Deficiency}}: {{printf "%.2f" $check.Ratio}}{{if not $check.Pass}} (fail){{end}}{{end -}}
            </small></div>
        </div>
        {{- end}}
    </div>

    <div class="container">
        <h3>Summary Statistics</h3>
        <p>Total colour pairs analysed: {{.Summary.TotalPairs}}</p>
        <p>Pairs meeting AA18 or better: {{.Summary.PassingNormal}} ({{.PercentNormal}})</p>
        <p>Pairs keeping {{.CVDThresholdString}}:1 under all simulated deficiencies: {{.Summary.PassingAllDeficiencies}} ({{.PercentAllPassing}})</p>
    </div>

</body>
</html>
`))
