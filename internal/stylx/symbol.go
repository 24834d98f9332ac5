// Package stylx writes ArcGIS-compatible style databases (.stylx) containing
// CIM symbol definitions for palette colours and accessible colour pairs.
// A .stylx file is a SQLite database with an ITEMS table of symbol JSON.
package stylx

import (
	"encoding/json"
	"fmt"

	"github.com/trentschlar/DigitalAccessibility/internal/colour"
)

// Symbol classes used by the ITEMS table.
const (
	ClassPoint   = 3
	ClassLine    = 4
	ClassPolygon = 5
)

// cimColor is an RGBA colour reference. Values are 0-255 channels plus
// alpha as a 0-100 percentage.
type cimColor struct {
	Type   string    `json:"type"`
	Values []float64 `json:"values"`
}

func rgbColor(c colour.RGB) cimColor {
	return cimColor{
		Type:   "CIMRGBColor",
		Values: []float64{float64(c.R), float64(c.G), float64(c.B), 100},
	}
}

// cimSolidFill is a solid fill symbol layer.
type cimSolidFill struct {
	Type   string   `json:"type"`
	Enable bool     `json:"enable"`
	Color  cimColor `json:"color"`
}

// cimSolidStroke is a solid stroke symbol layer.
type cimSolidStroke struct {
	Type   string   `json:"type"`
	Enable bool     `json:"enable"`
	Width  float64  `json:"width"`
	Color  cimColor `json:"color"`
}

func solidFill(c colour.RGB) cimSolidFill {
	return cimSolidFill{Type: "CIMSolidFill", Enable: true, Color: rgbColor(c)}
}

func solidStroke(c colour.RGB, width float64) cimSolidStroke {
	return cimSolidStroke{Type: "CIMSolidStroke", Enable: true, Width: width, Color: rgbColor(c)}
}

// PointSymbolJSON builds a CIM point symbol: a 10pt square vector marker
// with the given fill and an optional 1pt outline.
func PointSymbolJSON(fill colour.RGB, outline *colour.RGB) (string, error) {
	markerLayers := []any{solidFill(fill)}
	if outline != nil {
		markerLayers = append(markerLayers, solidStroke(*outline, 1.0))
	}

	symbol := map[string]any{
		"type": "CIMPointSymbol",
		"symbolLayers": []any{
			map[string]any{
				"type":   "CIMVectorMarker",
				"enable": true,
				"size":   10.0,
				"frame":  map[string]float64{"xmin": -5, "ymin": -5, "xmax": 5, "ymax": 5},
				"markerGraphics": []any{
					map[string]any{
						"type": "CIMMarkerGraphic",
						"geometry": map[string]any{
							"rings": [][][2]float64{{{-5, -5}, {-5, 5}, {5, 5}, {5, -5}, {-5, -5}}},
						},
						"symbol": map[string]any{
							"type":         "CIMPolygonSymbol",
							"symbolLayers": markerLayers,
						},
					},
				},
			},
		},
	}

	return marshalSymbol(symbol)
}

// LineSymbolJSON builds a CIM line symbol: a 2pt solid stroke.
func LineSymbolJSON(c colour.RGB) (string, error) {
	symbol := map[string]any{
		"type":         "CIMLineSymbol",
		"symbolLayers": []any{solidStroke(c, 2.0)},
	}
	return marshalSymbol(symbol)
}

// PolygonSymbolJSON builds a CIM polygon symbol: solid fill with a 1pt
// outline.
func PolygonSymbolJSON(fill, outline colour.RGB) (string, error) {
	symbol := map[string]any{
		"type":         "CIMPolygonSymbol",
		"symbolLayers": []any{solidFill(fill), solidStroke(outline, 1.0)},
	}
	return marshalSymbol(symbol)
}

func marshalSymbol(symbol any) (string, error) {
	data, err := json.Marshal(symbol)
	if err != nil {
		return "", fmt.Errorf("failed to encode symbol: %w", err)
	}
	return string(data), nil
}
