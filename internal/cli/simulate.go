// Package cli provides the command-line interface for mapcontrast.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trentschlar/DigitalAccessibility/internal/colour"
	"github.com/trentschlar/DigitalAccessibility/internal/palette"
)

var (
	// Simulate command flags
	simulateDeficiency string
	simulatePreview    bool
)

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:   "simulate <palette>",
	Short: "Simulate how a palette appears under colour-vision deficiencies",
	Long: `Simulate how each colour of a palette appears to colour-blind viewers.

Every swatch is transformed through the dichromacy model for
deuteranopia, protanopia, and tritanopia, showing the perceived
colour alongside the original.

Examples:
  # Simulate all deficiencies with terminal previews
  mapcontrast simulate --preview visiondeficient24

  # Only deuteranopia
  mapcontrast simulate --deficiency deuteranopia theme.json`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVarP(&simulateDeficiency, "deficiency", "d", "all", "deficiency to simulate (deuteranopia, protanopia, tritanopia, all)")
	simulateCmd.Flags().BoolVar(&simulatePreview, "preview", false, "show colour previews in terminal output")
}

// runSimulate executes the simulate command.
func runSimulate(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	deficiencies, err := selectDeficiencies(simulateDeficiency)
	if err != nil {
		return err
	}

	p, err := palette.Resolve(args[0])
	if err != nil {
		return fmt.Errorf("failed to load palette: %w", err)
	}
	logger.Debug("palette loaded", "name", p.Name, "colours", p.Len())

	headers := []string{"Colour", "Normal"}
	for _, d := range deficiencies {
		headers = append(headers, titleCase(d.String()))
	}

	table := NewTable(headers)
	for _, s := range p.Swatches {
		row := []string{s.Name, simulatedCell(s.Colour)}
		for _, d := range deficiencies {
			row = append(row, simulatedCell(colour.Simulate(s.Colour, d)))
		}
		table.AddRow(row)
	}

	var out strings.Builder
	fmt.Fprintf(&out, "Palette: %s (%d colours)\n\n", p.Name, p.Len())
	out.WriteString(table.Render())

	fmt.Print(out.String())
	return nil
}

// selectDeficiencies resolves the --deficiency flag into a deficiency list.
func selectDeficiencies(name string) ([]colour.Deficiency, error) {
	if name == "all" {
		return colour.Deficiencies(), nil
	}
	d, err := colour.ParseDeficiency(name)
	if err != nil {
		return nil, err
	}
	return []colour.Deficiency{d}, nil
}

// simulatedCell formats a colour for a simulation table cell. Previews
// overlay the hex code on the swatch itself so the perceived colour and its
// value read as one unit.
func simulatedCell(c colour.RGB) string {
	if simulatePreview {
		return colour.PreviewWithText(c, c.Hex(), 9)
	}
	return c.Hex()
}
