package colour

import "fmt"

// Deficiency identifies a type of dichromatic colour vision deficiency.
// Normal vision is the absence of simulation, not a member of this set.
type Deficiency int

const (
	// Deuteranopia is the absence of green cone cells (most common).
	Deuteranopia Deficiency = iota
	// Protanopia is the absence of red cone cells.
	Protanopia
	// Tritanopia is the absence of blue cone cells (rare).
	Tritanopia
)

// Deficiencies returns all simulated deficiency types in canonical order.
func Deficiencies() []Deficiency {
	return []Deficiency{Deuteranopia, Protanopia, Tritanopia}
}

// String returns the display name of the deficiency.
func (d Deficiency) String() string {
	switch d {
	case Deuteranopia:
		return "deuteranopia"
	case Protanopia:
		return "protanopia"
	case Tritanopia:
		return "tritanopia"
	default:
		return fmt.Sprintf("deficiency(%d)", int(d))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Deficiency) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ParseDeficiency parses a deficiency name as used on the command line.
func ParseDeficiency(name string) (Deficiency, error) {
	switch name {
	case "deuteranopia":
		return Deuteranopia, nil
	case "protanopia":
		return Protanopia, nil
	case "tritanopia":
		return Tritanopia, nil
	default:
		return 0, fmt.Errorf("unknown deficiency %q (valid: deuteranopia, protanopia, tritanopia)", name)
	}
}

// Dichromacy transform matrices applied to normalised RGB channels, one row
// per output channel (R', G', B'). These are linear design-time
// approximations of dichromatic perception, not physiological models.
// Each row sums to at most 1.0, so no channel is amplified.
var dichromacyTransforms = [...][3][3]float64{
	Deuteranopia: {
		{0.625, 0.375, 0.0},
		{0.7, 0.3, 0.0},
		{0.0, 0.3, 0.7},
	},
	Protanopia: {
		{0.567, 0.433, 0.0},
		{0.558, 0.442, 0.0},
		{0.0, 0.242, 0.758},
	},
	Tritanopia: {
		{0.95, 0.05, 0.0},
		{0.0, 0.433, 0.567},
		{0.0, 0.475, 0.525},
	},
}

// Simulate applies the dichromacy transform for the given deficiency to a
// colour. Channels are normalised to [0,1], transformed, clamped, and
// denormalised by truncation back to [0,255].
func Simulate(rgb RGB, d Deficiency) RGB {
	m := dichromacyTransforms[d]

	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	return RGB{
		R: denormalise(m[0][0]*r + m[0][1]*g + m[0][2]*b),
		G: denormalise(m[1][0]*r + m[1][1]*g + m[1][2]*b),
		B: denormalise(m[2][0]*r + m[2][1]*g + m[2][2]*b),
	}
}

// SimulatedContrastRatio calculates the WCAG contrast ratio between two
// colours as perceived under the given deficiency. The same contrast engine
// is applied to the simulated pair.
func SimulatedContrastRatio(c1, c2 RGB, d Deficiency) float64 {
	return ContrastRatio(Simulate(c1, d), Simulate(c2, d))
}

// denormalise converts a normalised channel back to [0,255], truncating.
func denormalise(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
