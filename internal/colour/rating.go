package colour

import "fmt"

// Rating classifies a contrast ratio against the WCAG thresholds for
// graphical (non-text) objects. Ratings are ordered: Fail < AA18 < AA < AAA.
type Rating int

const (
	// RatingFail indicates the ratio is below the 3.0 graphical minimum.
	RatingFail Rating = iota
	// RatingAA18 meets the WCAG minimum for graphical objects (3.0).
	RatingAA18
	// RatingAA also meets the regular-text requirement (4.5).
	RatingAA
	// RatingAAA exceeds all requirements (7.0).
	RatingAAA
)

// Rating thresholds. Each band is inclusive on its lower bound.
const (
	ThresholdAA18 = 3.0
	ThresholdAA   = 4.5
	ThresholdAAA  = 7.0
)

// Classify maps a contrast ratio to its WCAG rating for graphical objects.
func Classify(ratio float64) Rating {
	switch {
	case ratio >= ThresholdAAA:
		return RatingAAA
	case ratio >= ThresholdAA:
		return RatingAA
	case ratio >= ThresholdAA18:
		return RatingAA18
	default:
		return RatingFail
	}
}

// String returns the display name of the rating.
func (r Rating) String() string {
	switch r {
	case RatingAAA:
		return "AAA"
	case RatingAA:
		return "AA"
	case RatingAA18:
		return "AA18"
	default:
		return "Fail"
	}
}

// MarshalText implements encoding.TextMarshaler so ratings serialise as
// their display names in JSON and CSV output.
func (r Rating) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rating) UnmarshalText(text []byte) error {
	parsed, err := ParseRating(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseRating parses a rating name as used on the command line.
func ParseRating(name string) (Rating, error) {
	switch name {
	case "AAA", "aaa":
		return RatingAAA, nil
	case "AA", "aa":
		return RatingAA, nil
	case "AA18", "aa18":
		return RatingAA18, nil
	case "Fail", "fail":
		return RatingFail, nil
	default:
		return RatingFail, fmt.Errorf("unknown rating %q (valid: AA18, AA, AAA)", name)
	}
}
