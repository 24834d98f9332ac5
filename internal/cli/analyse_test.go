package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/trentschlar/DigitalAccessibility/internal/colour"
)

func testFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	registerAnalysisFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}
	return fs
}

func TestAnalysisOptionsDefaults(t *testing.T) {
	opts, err := analysisOptions(testFlagSet(t))
	if err != nil {
		t.Fatalf("analysisOptions() error = %v", err)
	}
	if opts.MinRating != colour.RatingAA18 {
		t.Errorf("MinRating = %v, want AA18", opts.MinRating)
	}
	if opts.CVDThreshold != 3.0 {
		t.Errorf("CVDThreshold = %v, want 3.0", opts.CVDThreshold)
	}
}

func TestAnalysisOptionsOverrides(t *testing.T) {
	opts, err := analysisOptions(testFlagSet(t, "--min-rating", "AAA", "--cvd-threshold", "4.5"))
	if err != nil {
		t.Fatalf("analysisOptions() error = %v", err)
	}
	if opts.MinRating != colour.RatingAAA {
		t.Errorf("MinRating = %v, want AAA", opts.MinRating)
	}
	if opts.CVDThreshold != 4.5 {
		t.Errorf("CVDThreshold = %v, want 4.5", opts.CVDThreshold)
	}
}

func TestAnalysisOptionsRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown rating", []string{"--min-rating", "AAAA"}},
		{"fail rating", []string{"--min-rating", "Fail"}},
		{"threshold below one", []string{"--cvd-threshold", "0.5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := analysisOptions(testFlagSet(t, tt.args...)); err == nil {
				t.Errorf("analysisOptions(%v) succeeded, want error", tt.args)
			}
		})
	}
}

func testAnalysisReport(t *testing.T) *colour.Report {
	t.Helper()

	entries := [][2]string{
		{"#000000", "Black"},
		{"#FFFFFF", "White"},
		{"#FF0000", "Red"},
	}

	swatches := make([]colour.Swatch, 0, len(entries))
	for _, entry := range entries {
		rgb, err := colour.ParseHex(entry[0])
		if err != nil {
			t.Fatalf("ParseHex(%q) error = %v", entry[0], err)
		}
		swatches = append(swatches, colour.Swatch{Name: entry[1], Colour: rgb})
	}
	return colour.Analyse(swatches, colour.DefaultOptions())
}

func TestRenderPairsTable(t *testing.T) {
	r := testAnalysisReport(t)

	output := renderPairsTable(r.Accessible)

	// The strongest pair leads and every deficiency gets a column.
	lines := strings.Split(output, "\n")
	if !strings.Contains(lines[0], "Deuteranopia") || !strings.Contains(lines[0], "Tritanopia") {
		t.Errorf("header missing deficiency columns: %q", lines[0])
	}
	if !strings.Contains(lines[2], "Black") || !strings.Contains(lines[2], "White") || !strings.Contains(lines[2], "21.00") {
		t.Errorf("first data row = %q, want Black/White at 21.00", lines[2])
	}
}

func TestRenderSummaryNA(t *testing.T) {
	r := colour.Analyse(nil, colour.DefaultOptions())

	output := renderSummary(r)
	if !strings.Contains(output, "N/A") {
		t.Errorf("summary for empty palette missing N/A:\n%s", output)
	}
}
