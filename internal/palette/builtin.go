package palette

import (
	"fmt"
	"sort"

	"github.com/trentschlar/DigitalAccessibility/internal/colour"
)

// builtins holds the palettes shipped with the tool, keyed by name.
// These are configuration data handed to the analyzer, never read by the
// colour package itself.
var builtins = map[string]Palette{
	"visiondeficient24": {
		Name:        "visiondeficient24",
		Description: "24-colour map palette designed for colour-vision deficiency, plus black and white",
		Swatches: []colour.Swatch{
			// Teals.
			{Name: "Dark Teal 1", Colour: colour.RGB{R: 0x00, G: 0x3D, B: 0x30}},
			{Name: "Dark Teal 2", Colour: colour.RGB{R: 0x00, G: 0x57, B: 0x45}},
			{Name: "Medium Teal 1", Colour: colour.RGB{R: 0x00, G: 0x73, B: 0x5C}},
			{Name: "Medium Teal 2", Colour: colour.RGB{R: 0x00, G: 0x91, B: 0x75}},
			// Pinks.
			{Name: "Magenta 1", Colour: colour.RGB{R: 0xEF, G: 0x00, B: 0x96}},
			{Name: "Pink 1", Colour: colour.RGB{R: 0xFF, G: 0x5A, B: 0xAF}},
			{Name: "Pink 2", Colour: colour.RGB{R: 0xFF, G: 0x9D, B: 0xC8}},
			{Name: "Light Pink", Colour: colour.RGB{R: 0xFF, G: 0xCF, B: 0xE2}},
			// Purples.
			{Name: "Dark Purple 1", Colour: colour.RGB{R: 0x45, G: 0x02, B: 0x70}},
			{Name: "Dark Purple 2", Colour: colour.RGB{R: 0x65, G: 0x01, B: 0x9F}},
			{Name: "Purple 1", Colour: colour.RGB{R: 0x84, G: 0x00, B: 0xCD}},
			{Name: "Purple 2", Colour: colour.RGB{R: 0xA7, G: 0x00, B: 0xFC}},
			// Cyans.
			{Name: "Cyan 1", Colour: colour.RGB{R: 0x00, G: 0x9F, B: 0xFA}},
			{Name: "Cyan 2", Colour: colour.RGB{R: 0x00, G: 0xC2, B: 0xF9}},
			{Name: "Cyan 3", Colour: colour.RGB{R: 0x00, G: 0xE5, B: 0xF8}},
			{Name: "Light Cyan", Colour: colour.RGB{R: 0x7C, G: 0xFF, B: 0xFA}},
			// Reds.
			{Name: "Dark Red 1", Colour: colour.RGB{R: 0x5A, G: 0x00, B: 0x0F}},
			{Name: "Dark Red 2", Colour: colour.RGB{R: 0x7E, G: 0x00, B: 0x18}},
			{Name: "Red 1", Colour: colour.RGB{R: 0xA4, G: 0x01, B: 0x22}},
			{Name: "Red 2", Colour: colour.RGB{R: 0xCD, G: 0x02, B: 0x2D}},
			// Greens.
			{Name: "Green 1", Colour: colour.RGB{R: 0x00, G: 0xB4, B: 0x08}},
			{Name: "Green 2", Colour: colour.RGB{R: 0x00, G: 0xD3, B: 0x02}},
			{Name: "Green 3", Colour: colour.RGB{R: 0x00, G: 0xF4, B: 0x07}},
			{Name: "Light Green", Colour: colour.RGB{R: 0xAF, G: 0xFF, B: 0x2A}},
			// Anchors.
			{Name: "Black", Colour: colour.RGB{R: 0x00, G: 0x00, B: 0x00}},
			{Name: "White", Colour: colour.RGB{R: 0xFF, G: 0xFF, B: 0xFF}},
		},
	},
	"okabe-ito": {
		Name:        "okabe-ito",
		Description: "Okabe-Ito eight-colour palette, a common colour-blind-safe reference",
		Swatches: []colour.Swatch{
			{Name: "Black", Colour: colour.RGB{R: 0x00, G: 0x00, B: 0x00}},
			{Name: "Orange", Colour: colour.RGB{R: 0xE6, G: 0x9F, B: 0x00}},
			{Name: "Sky Blue", Colour: colour.RGB{R: 0x56, G: 0xB4, B: 0xE9}},
			{Name: "Bluish Green", Colour: colour.RGB{R: 0x00, G: 0x9E, B: 0x73}},
			{Name: "Yellow", Colour: colour.RGB{R: 0xF0, G: 0xE4, B: 0x42}},
			{Name: "Blue", Colour: colour.RGB{R: 0x00, G: 0x72, B: 0xB2}},
			{Name: "Vermillion", Colour: colour.RGB{R: 0xD5, G: 0x5E, B: 0x00}},
			{Name: "Reddish Purple", Colour: colour.RGB{R: 0xCC, G: 0x79, B: 0xA7}},
		},
	},
}

// Builtin returns the builtin palette with the given name.
func Builtin(name string) (Palette, error) {
	p, ok := builtins[name]
	if !ok {
		return Palette{}, fmt.Errorf("unknown builtin palette %q (available: %v)", name, BuiltinNames())
	}
	return p, nil
}

// BuiltinNames returns the names of all builtin palettes, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
