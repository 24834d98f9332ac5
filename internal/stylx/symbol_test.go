package stylx

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/trentschlar/DigitalAccessibility/internal/colour"
)

func TestPointSymbolJSON(t *testing.T) {
	fill := colour.RGB{R: 0, G: 115, B: 92}
	outline := colour.RGB{R: 255, G: 255, B: 255}

	got, err := PointSymbolJSON(fill, &outline)
	if err != nil {
		t.Fatalf("PointSymbolJSON() error = %v", err)
	}

	var symbol map[string]any
	if err := json.Unmarshal([]byte(got), &symbol); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if symbol["type"] != "CIMPointSymbol" {
		t.Errorf("type = %v, want CIMPointSymbol", symbol["type"])
	}

	// Fill and outline colours both appear in the layer tree.
	for _, want := range []string{"CIMSolidFill", "CIMSolidStroke", "CIMVectorMarker"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestPointSymbolJSONNoOutline(t *testing.T) {
	got, err := PointSymbolJSON(colour.RGB{R: 217, G: 33, B: 32}, nil)
	if err != nil {
		t.Fatalf("PointSymbolJSON() error = %v", err)
	}
	if strings.Contains(got, "CIMSolidStroke") {
		t.Error("outline-free point symbol contains a stroke layer")
	}
}

func TestLineSymbolJSON(t *testing.T) {
	got, err := LineSymbolJSON(colour.RGB{R: 0, G: 0, B: 0})
	if err != nil {
		t.Fatalf("LineSymbolJSON() error = %v", err)
	}

	var symbol struct {
		Type         string `json:"type"`
		SymbolLayers []struct {
			Type  string  `json:"type"`
			Width float64 `json:"width"`
		} `json:"symbolLayers"`
	}
	if err := json.Unmarshal([]byte(got), &symbol); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if symbol.Type != "CIMLineSymbol" {
		t.Errorf("type = %q, want CIMLineSymbol", symbol.Type)
	}
	if len(symbol.SymbolLayers) != 1 || symbol.SymbolLayers[0].Width != 2.0 {
		t.Errorf("unexpected symbol layers: %+v", symbol.SymbolLayers)
	}
}

func TestPolygonSymbolJSON(t *testing.T) {
	got, err := PolygonSymbolJSON(colour.RGB{R: 0, G: 61, B: 48}, colour.RGB{R: 255, G: 255, B: 255})
	if err != nil {
		t.Fatalf("PolygonSymbolJSON() error = %v", err)
	}

	var symbol struct {
		Type         string `json:"type"`
		SymbolLayers []struct {
			Type   string `json:"type"`
			Color  cimColor
			Enable bool `json:"enable"`
		} `json:"symbolLayers"`
	}
	if err := json.Unmarshal([]byte(got), &symbol); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if symbol.Type != "CIMPolygonSymbol" {
		t.Errorf("type = %q, want CIMPolygonSymbol", symbol.Type)
	}
	if len(symbol.SymbolLayers) != 2 {
		t.Fatalf("got %d symbol layers, want 2", len(symbol.SymbolLayers))
	}
	if symbol.SymbolLayers[0].Type != "CIMSolidFill" || symbol.SymbolLayers[1].Type != "CIMSolidStroke" {
		t.Errorf("unexpected layer order: %q then %q", symbol.SymbolLayers[0].Type, symbol.SymbolLayers[1].Type)
	}
}

func TestRGBColorValues(t *testing.T) {
	c := rgbColor(colour.RGB{R: 230, G: 159, B: 0})
	want := []float64{230, 159, 0, 100}
	if len(c.Values) != 4 {
		t.Fatalf("got %d values, want 4", len(c.Values))
	}
	for i := range want {
		if c.Values[i] != want[i] {
			t.Errorf("values[%d] = %v, want %v", i, c.Values[i], want[i])
		}
	}
}
