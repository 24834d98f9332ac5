// Package cli provides the command-line interface for mapcontrast.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trentschlar/DigitalAccessibility/internal/colour"
	"github.com/trentschlar/DigitalAccessibility/internal/palette"
)

var palettesPreview bool

// palettesCmd represents the palettes command
var palettesCmd = &cobra.Command{
	Use:   "palettes [name]",
	Short: "List built-in palettes or show a palette's colours",
	Long: `List the built-in colour-blind friendly palettes.

With a palette name, the palette's swatches are shown instead.

Examples:
  mapcontrast palettes
  mapcontrast palettes --preview visiondeficient24`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPalettes,
}

func init() {
	palettesCmd.Flags().BoolVar(&palettesPreview, "preview", false, "show colour previews")
}

// runPalettes executes the palettes command.
func runPalettes(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return showPalette(args[0])
	}

	table := NewTable([]string{"Name", "Colours", "Description"})
	for _, name := range palette.BuiltinNames() {
		p, err := palette.Builtin(name)
		if err != nil {
			return err
		}
		table.AddRow([]string{name, fmt.Sprintf("%d", p.Len()), p.Description})
	}
	fmt.Print(table.Render())
	return nil
}

// showPalette prints the swatches of a single palette.
func showPalette(name string) error {
	p, err := palette.Resolve(name)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%d colours)\n", p.Name, p.Len())
	if p.Description != "" {
		fmt.Println(p.Description)
	}
	fmt.Println()

	for _, s := range p.Swatches {
		if palettesPreview {
			fmt.Println(colour.FormatSwatch(s, 4))
		} else {
			fmt.Printf("%-20s %s\n", s.Name, s.Hex())
		}
	}
	return nil
}
