// Package colour provides WCAG contrast analysis and colour-vision
// deficiency simulation for map colour palettes.
package colour

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// FormatError describes a malformed hex colour string.
type FormatError struct {
	Input  string
	Reason string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid hex colour %q: %s", e.Input, e.Reason)
}

// ParseHex parses a hex colour string into an RGB struct.
// Accepts #RRGGBB or RRGGBB; anything else is a *FormatError.
// Malformed input is never substituted with a default colour.
func ParseHex(hex string) (RGB, error) {
	s := strings.TrimPrefix(hex, "#")

	if len(s) != 6 {
		return RGB{}, &FormatError{
			Input:  hex,
			Reason: fmt.Sprintf("expected 6 hex digits, got %d", len(s)),
		}
	}

	r, err := strconv.ParseUint(s[0:2], 16, 8)
	if err != nil {
		return RGB{}, &FormatError{Input: hex, Reason: "invalid red component"}
	}

	g, err := strconv.ParseUint(s[2:4], 16, 8)
	if err != nil {
		return RGB{}, &FormatError{Input: hex, Reason: "invalid green component"}
	}

	b, err := strconv.ParseUint(s[4:6], 16, 8)
	if err != nil {
		return RGB{}, &FormatError{Input: hex, Reason: "invalid blue component"}
	}

	return RGB{
		R: uint8(r),
		G: uint8(g),
		B: uint8(b),
	}, nil
}
