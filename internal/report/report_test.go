package report

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/trentschlar/DigitalAccessibility/internal/colour"
)

func testReport(t *testing.T) *colour.Report {
	t.Helper()

	entries := [][2]string{
		{"#000000", "Black"},
		{"#FFFFFF", "White"},
		{"#FF0000", "Red"},
	}

	palette := make([]colour.Swatch, 0, len(entries))
	for _, entry := range entries {
		rgb, err := colour.ParseHex(entry[0])
		if err != nil {
			t.Fatalf("ParseHex(%q) error = %v", entry[0], err)
		}
		palette = append(palette, colour.Swatch{Name: entry[1], Colour: rgb})
	}

	return colour.Analyse(palette, colour.DefaultOptions())
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON("test palette", testReport(t))
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var decoded struct {
		PaletteName string            `json:"palette_name"`
		Matrix      [][]*float64      `json:"matrix"`
		Pairs       []json.RawMessage `json:"pairs"`
		Summary     struct {
			TotalPairs    int      `json:"total_pairs"`
			PercentNormal *float64 `json:"percent_normal"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.PaletteName != "test palette" {
		t.Errorf("palette_name = %q", decoded.PaletteName)
	}
	if len(decoded.Matrix) != 3 {
		t.Fatalf("matrix has %d rows, want 3", len(decoded.Matrix))
	}
	// Diagonal serialises as null, off-diagonal as numbers.
	for i := range decoded.Matrix {
		for j := range decoded.Matrix[i] {
			if i == j && decoded.Matrix[i][j] != nil {
				t.Errorf("matrix[%d][%d] = %v, want null", i, j, *decoded.Matrix[i][j])
			}
			if i != j && decoded.Matrix[i][j] == nil {
				t.Errorf("matrix[%d][%d] is null, want ratio", i, j)
			}
		}
	}
	if len(decoded.Pairs) != 3 {
		t.Errorf("pairs has %d entries, want 3", len(decoded.Pairs))
	}
	if decoded.Summary.TotalPairs != 3 {
		t.Errorf("summary.total_pairs = %d, want 3", decoded.Summary.TotalPairs)
	}
	if decoded.Summary.PercentNormal == nil {
		t.Error("summary.percent_normal is null, want value")
	}
}

func TestRenderJSONEmptyPalette(t *testing.T) {
	report := colour.Analyse(nil, colour.DefaultOptions())

	data, err := RenderJSON("empty", report)
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	// Undefined percentages serialise as null, never as zero.
	if !strings.Contains(string(data), `"percent_normal": null`) {
		t.Errorf("output missing null percent_normal:\n%s", data)
	}
}

func TestRenderCSV(t *testing.T) {
	data, err := RenderCSV(testReport(t))
	if err != nil {
		t.Fatalf("RenderCSV() error = %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	// Header plus one row per pair.
	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}
	if records[0][0] != "colour_1" || records[0][len(records[0])-1] != "passes_all_deficiencies" {
		t.Errorf("unexpected header: %v", records[0])
	}

	for i, row := range records[1:] {
		if len(row) != len(csvHeader) {
			t.Errorf("row %d has %d fields, want %d", i, len(row), len(csvHeader))
		}
	}

	// Black/White pair is enumerated first with its exact ratio.
	if records[1][0] != "Black" || records[1][2] != "White" || records[1][4] != "21.00" {
		t.Errorf("first pair row = %v", records[1])
	}
}

func TestRenderHTML(t *testing.T) {
	data, err := RenderHTML("test palette", testReport(t))
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}

	html := string(data)
	for _, want := range []string{
		"test palette - Contrast Analysis",
		"Contrast Ratio Matrix",
		"21.00",
		`class="same-colour"`,
		"Recommended Colour Pairings",
		"Summary Statistics",
		"#ff0000",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML output missing %q", want)
		}
	}
}

func TestRenderHTMLSingleColour(t *testing.T) {
	rgb, err := colour.ParseHex("#00735C")
	if err != nil {
		t.Fatalf("ParseHex() error = %v", err)
	}
	report := colour.Analyse([]colour.Swatch{{Name: "Teal", Colour: rgb}}, colour.DefaultOptions())

	data, err := RenderHTML("single", report)
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}

	// Percentages render as N/A rather than dividing by zero.
	if !strings.Contains(string(data), "N/A") {
		t.Error("HTML output missing N/A percentages for single-colour palette")
	}
}
