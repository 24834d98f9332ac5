// Package cli provides the command-line interface for mapcontrast.
package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trentschlar/DigitalAccessibility/internal/colour"
	"github.com/trentschlar/DigitalAccessibility/internal/image"
	"github.com/trentschlar/DigitalAccessibility/internal/palette"
)

var (
	// Extract command flags
	extractColours int
	extractName    string
	extractFormat  string
	extractOutput  string
	extractPreview bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract a colour palette from an image",
	Long: `Extract a colour palette from an image for contrast analysis.

Dominant colours are found with k-means clustering and named by
prominence. The resulting palette can be saved and fed back into
the analyse, simulate, and style commands.

Supported image formats: JPEG, PNG, GIF, WebP. The image argument
may also be an HTTP(S) URL.

Examples:
  # Extract 8 colours (default) from a map legend screenshot
  mapcontrast extract legend.png

  # Extract 12 colours and save as a palette file
  mapcontrast extract --colours 12 --format json --output legend.json legend.png

  # Extract from a remote image with previews
  mapcontrast extract --preview https://example.com/basemap.png`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().IntVarP(&extractColours, "colours", "c", 8, "number of colours to extract (1-256)")
	extractCmd.Flags().StringVar(&extractName, "name", "", "palette name (default: image file name)")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "text", "output format (text, json)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (default: stdout)")
	extractCmd.Flags().BoolVar(&extractPreview, "preview", false, "show colour previews in text output")
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	imagePath := args[0]

	if extractColours < 1 || extractColours > 256 {
		return fmt.Errorf("colour count must be between 1 and 256, got %d", extractColours)
	}
	if err := image.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	logger.Debug("loading image", "path", imagePath)
	loader := image.NewSmartLoader()
	img, err := loader.Load(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	bounds := img.Bounds()
	logger.Debug("image loaded", "width", bounds.Dx(), "height", bounds.Dy())

	extractor := colour.NewKMeansExtractor()
	swatches, err := extractor.Extract(img, extractColours)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}
	logger.Debug("extraction complete", "colours", len(swatches))

	p := palette.Palette{
		Name:        paletteName(imagePath),
		Description: fmt.Sprintf("Extracted from %s", imagePath),
		Swatches:    swatches,
	}
	if extractName != "" {
		p.Name = extractName
	}

	var data []byte
	switch extractFormat {
	case "text":
		data = []byte(formatExtractedText(p))
	case "json":
		data, err = p.Encode()
		if err != nil {
			return fmt.Errorf("failed to encode palette: %w", err)
		}
		data = append(data, '\n')
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", extractFormat)
	}

	return writeOutput(extractOutput, data)
}

// formatExtractedText formats an extracted palette in the text palette
// format, one "RRGGBB Name" line per colour.
func formatExtractedText(p palette.Palette) string {
	out := ""
	for _, s := range p.Swatches {
		line := fmt.Sprintf("%s %s", s.Hex(), s.Name)
		if extractPreview {
			line = fmt.Sprintf("%s  %s", colour.Preview(s.Colour, 4), line)
		}
		out += line + "\n"
	}
	return out
}

// paletteName derives a palette name from an image path or URL.
func paletteName(imagePath string) string {
	name := imagePath
	if idx := strings.LastIndexAny(name, "/\\"); idx >= 0 {
		name = name[idx+1:]
	}
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if name == "" {
		return "extracted"
	}
	return name
}
