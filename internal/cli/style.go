// Package cli provides the command-line interface for mapcontrast.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trentschlar/DigitalAccessibility/internal/colour"
	"github.com/trentschlar/DigitalAccessibility/internal/palette"
	"github.com/trentschlar/DigitalAccessibility/internal/stylx"
)

var (
	// Style command flags
	styleOutput        string
	styleCategory      string
	styleRequireCVD    bool
	styleKeepExisting  bool
	styleTemplate      string
	styleTemplateName  string
	styleTemplateClass int
)

// styleCmd represents the style command
var styleCmd = &cobra.Command{
	Use:   "style <palette>",
	Short: "Build an ArcGIS .stylx style file from a palette",
	Long: `Build an ArcGIS Pro style file (.stylx) from a palette.

The style contains one point symbol per palette colour plus point,
line, and polygon symbols for every accessible colour pair, so map
authors can pick combinations that stay readable. A .stylx file is
a SQLite database; the output can be added to an ArcGIS Pro project
directly.

With --template, a CIM symbol JSON file is cloned once per pair with
its fill and stroke colours replaced by the pair's colours.

Examples:
  # Build a style from the built-in palette
  mapcontrast style --output vision.stylx visiondeficient24

  # Only include pairs that survive colour-vision simulation
  mapcontrast style --output vision.stylx --require-cvd visiondeficient24

  # Require AA contrast and clone a hatch template per pair
  mapcontrast style --output vision.stylx --min-rating AA \
    --template hatch.json --template-class 5 visiondeficient24`,
	Args: cobra.ExactArgs(1),
	RunE: runStyle,
}

func init() {
	styleCmd.Flags().StringVarP(&styleOutput, "output", "o", "", "output .stylx file (required)")
	styleCmd.Flags().StringVar(&styleCategory, "category", "Accessible Pairs", "item category for pair symbols")
	styleCmd.Flags().BoolVar(&styleRequireCVD, "require-cvd", false, "only include pairs that keep the threshold under all deficiencies")
	styleCmd.Flags().BoolVar(&styleKeepExisting, "keep-existing", false, "keep items already present in the style file")
	styleCmd.Flags().StringVar(&styleTemplate, "template", "", "CIM symbol JSON file to clone per accessible pair")
	styleCmd.Flags().StringVar(&styleTemplateName, "template-name", "Template", "item name prefix for template clones")
	styleCmd.Flags().IntVar(&styleTemplateClass, "template-class", stylx.ClassPolygon, "item class for template clones (3=point, 4=line, 5=polygon)")
	registerAnalysisFlags(styleCmd.Flags())
	styleCmd.MarkFlagRequired("output")
}

// runStyle executes the style command.
func runStyle(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	opts, err := analysisOptions(cmd.Flags())
	if err != nil {
		return fmt.Errorf("invalid analysis options: %w", err)
	}

	p, err := palette.Resolve(args[0])
	if err != nil {
		return fmt.Errorf("failed to load palette: %w", err)
	}

	result := colour.Analyse(p.Swatches, opts)
	pairs := result.Accessible
	if styleRequireCVD {
		pairs = result.AccessibleToAll
	}
	logger.Info("palette analysed", "name", p.Name, "colours", p.Len(), "pairs", len(pairs))

	writer, err := stylx.NewWriter(styleOutput, logger.Named("stylx"))
	if err != nil {
		return err
	}
	defer writer.Close()

	if !styleKeepExisting {
		if err := writer.Clear(); err != nil {
			return err
		}
	}

	colours, err := writer.WriteColours(p)
	if err != nil {
		return fmt.Errorf("failed to write colour symbols: %w", err)
	}

	symbols, err := writer.WritePairs(styleCategory, pairs)
	if err != nil {
		return fmt.Errorf("failed to write pair symbols: %w", err)
	}

	clones := 0
	if styleTemplate != "" {
		templateJSON, err := os.ReadFile(styleTemplate)
		if err != nil {
			return fmt.Errorf("failed to read template symbol: %w", err)
		}
		clones, err = writer.WriteTemplatePairs(styleCategory, styleTemplateName, string(templateJSON), styleTemplateClass, pairs)
		if err != nil {
			return fmt.Errorf("failed to write template clones: %w", err)
		}
	}

	logger.Info("style written",
		"path", styleOutput,
		"colour_symbols", colours,
		"pair_symbols", symbols,
		"template_clones", clones)

	if !flagQuiet {
		fmt.Printf("Wrote %d symbols to %s (%d colours, %d accessible pairs)\n",
			colours+symbols+clones, styleOutput, p.Len(), len(pairs))
	}
	return nil
}
