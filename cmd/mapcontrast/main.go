// Mapcontrast - WCAG contrast analysis for colour palettes
//
// Mapcontrast rates colour pairs against the WCAG contrast thresholds,
// simulates colour-vision deficiencies, and builds accessible map styles.
package main

import (
	"github.com/trentschlar/DigitalAccessibility/internal/cli"
)

func main() {
	cli.Execute()
}
