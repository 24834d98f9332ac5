// Package cli provides the command-line interface for mapcontrast.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/trentschlar/DigitalAccessibility/internal/colour"
	"github.com/trentschlar/DigitalAccessibility/internal/version"
)

var (
	flagVerbose  bool
	flagQuiet    bool
	flagNoColour bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "mapcontrast",
		Short: "WCAG contrast analysis for colour palettes",
		Long: `Mapcontrast analyses colour palettes for WCAG contrast accessibility.

It computes pairwise contrast ratios, rates them against the WCAG
thresholds for graphical objects, and simulates how each pair appears
under deuteranopia, protanopia, and tritanopia so palettes stay
distinguishable for colour-blind readers.

Palettes can come from built-in sets, palette files, or extraction
from an image. Results render as terminal tables, JSON, CSV, HTML
reports, or ArcGIS .stylx style files.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagNoColour || !term.IsTerminal(int(os.Stdout.Fd())) {
				colour.DisableColourOutput = true
			}
		},
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColour, "no-colour", false, "disable colour previews in terminal output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(analyseCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(styleCmd)
	rootCmd.AddCommand(palettesCmd)
}

// newLogger builds the command logger from the global verbosity flags.
func newLogger() hclog.Logger {
	level := hclog.Info
	output := io.Writer(os.Stderr)

	switch {
	case flagVerbose:
		level = hclog.Debug
	case flagQuiet:
		level = hclog.Error
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "mapcontrast",
		Output: output,
		Level:  level,
	})
}

// writeOutput writes rendered output to path, or stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
