package colour

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{
			name:  "black with hash",
			input: "#000000",
			want:  RGB{R: 0, G: 0, B: 0},
		},
		{
			name:  "white without hash",
			input: "FFFFFF",
			want:  RGB{R: 255, G: 255, B: 255},
		},
		{
			name:  "lowercase",
			input: "#a40122",
			want:  RGB{R: 164, G: 1, B: 34},
		},
		{
			name:  "mixed case",
			input: "#Ff5aAf",
			want:  RGB{R: 255, G: 90, B: 175},
		},
		{
			name:    "too short",
			input:   "#FFF",
			wantErr: true,
		},
		{
			name:    "too long",
			input:   "#FFFFFF00",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "non-hex characters",
			input:   "#GG0000",
			wantErr: true,
		},
		{
			name:    "non-hex in blue group",
			input:   "#0000zz",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				var formatErr *FormatError
				if !errors.As(err, &formatErr) {
					t.Errorf("ParseHex(%q) error is not a *FormatError: %v", tt.input, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHexRoundTrip(t *testing.T) {
	inputs := []string{"#003D30", "#EF0096", "#a700fc", "#7CFFFA", "#000000", "#ffffff"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			rgb, err := ParseHex(input)
			if err != nil {
				t.Fatalf("ParseHex(%q) error = %v", input, err)
			}

			// Re-encoding must produce the canonical lowercase form.
			reparsed, err := ParseHex(rgb.Hex())
			if err != nil {
				t.Fatalf("ParseHex(%q) error = %v", rgb.Hex(), err)
			}
			if reparsed != rgb {
				t.Errorf("round trip %q -> %q -> %+v, want %+v", input, rgb.Hex(), reparsed, rgb)
			}
		})
	}
}

func TestLuminance(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want float64
	}{
		{
			name: "black",
			rgb:  RGB{0, 0, 0},
			want: 0.0,
		},
		{
			name: "white",
			rgb:  RGB{255, 255, 255},
			want: 1.0,
		},
		{
			name: "red",
			rgb:  RGB{255, 0, 0},
			want: 0.2126,
		},
		{
			name: "green",
			rgb:  RGB{0, 255, 0},
			want: 0.7152,
		},
		{
			name: "blue",
			rgb:  RGB{0, 0, 255},
			want: 0.0722,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Luminance(tt.rgb)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("Luminance(%+v) = %v, want %v", tt.rgb, got, tt.want)
			}
		})
	}
}

func TestContrastRatioBlackWhite(t *testing.T) {
	black := RGB{0, 0, 0}
	white := RGB{255, 255, 255}

	got := ContrastRatio(black, white)
	if math.Abs(got-21.0) > epsilon {
		t.Errorf("ContrastRatio(black, white) = %v, want 21.0", got)
	}
}

func TestContrastRatioSymmetry(t *testing.T) {
	colours := []RGB{
		{0, 0, 0},
		{255, 255, 255},
		{164, 1, 34},
		{0, 211, 2},
		{124, 255, 250},
	}

	for _, a := range colours {
		for _, b := range colours {
			if got, rev := ContrastRatio(a, b), ContrastRatio(b, a); got != rev {
				t.Errorf("ContrastRatio(%v, %v) = %v, reversed = %v", a, b, got, rev)
			}
		}
	}
}

func TestContrastRatioSelf(t *testing.T) {
	colours := []RGB{{0, 0, 0}, {255, 255, 255}, {239, 0, 150}, {0, 159, 250}}

	for _, c := range colours {
		if got := ContrastRatio(c, c); got != 1.0 {
			t.Errorf("ContrastRatio(%v, %v) = %v, want 1.0", c, c, got)
		}
	}
}

func TestContrastRatioReferenceValues(t *testing.T) {
	tests := []struct {
		name string
		a, b RGB
		want float64
	}{
		{
			name: "black vs red",
			a:    RGB{0, 0, 0},
			b:    RGB{255, 0, 0},
			want: 5.252,
		},
		{
			name: "white vs red",
			a:    RGB{255, 255, 255},
			b:    RGB{255, 0, 0},
			want: 3.9984767707539985,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContrastRatio(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("ContrastRatio() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  Rating
	}{
		{"maximum contrast", 21.0, RatingAAA},
		{"AAA lower bound", 7.0, RatingAAA},
		{"just below AAA", 6.999, RatingAA},
		{"AA lower bound", 4.5, RatingAA},
		{"just below AA", 4.499, RatingAA18},
		{"AA18 lower bound", 3.0, RatingAA18},
		{"just below AA18", 2.99, RatingFail},
		{"identity ratio", 1.0, RatingFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.ratio); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.ratio, got, tt.want)
			}
		})
	}
}

func TestRatingOrdering(t *testing.T) {
	if !(RatingFail < RatingAA18 && RatingAA18 < RatingAA && RatingAA < RatingAAA) {
		t.Error("ratings are not ordered Fail < AA18 < AA < AAA")
	}
}

func TestParseRating(t *testing.T) {
	tests := []struct {
		input   string
		want    Rating
		wantErr bool
	}{
		{input: "AAA", want: RatingAAA},
		{input: "aa", want: RatingAA},
		{input: "AA18", want: RatingAA18},
		{input: "fail", want: RatingFail},
		{input: "bogus", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRating(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRating(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseRating(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
