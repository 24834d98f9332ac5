package stylx

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/trentschlar/DigitalAccessibility/internal/colour"
	"github.com/trentschlar/DigitalAccessibility/internal/palette"
)

func testWriter(t *testing.T) (*Writer, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.stylx")
	w, err := NewWriter(path, nil)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	t.Cleanup(func() { w.Close() })
	return w, path
}

func mustHex(t *testing.T, hex string) colour.RGB {
	t.Helper()
	rgb, err := colour.ParseHex(hex)
	if err != nil {
		t.Fatalf("ParseHex(%q) error = %v", hex, err)
	}
	return rgb
}

func TestWriteColours(t *testing.T) {
	w, path := testWriter(t)

	p := palette.Palette{
		Name: "test",
		Swatches: []colour.Swatch{
			{Name: "Dark Teal 1", Colour: mustHex(t, "#003D30")},
			{Name: "White", Colour: mustHex(t, "#FFFFFF")},
		},
	}

	n, err := w.WriteColours(p)
	if err != nil {
		t.Fatalf("WriteColours() error = %v", err)
	}
	if n != 2 {
		t.Errorf("WriteColours() wrote %d items, want 2", n)
	}

	count, err := w.ItemCount()
	if err != nil {
		t.Fatalf("ItemCount() error = %v", err)
	}
	if count != 2 {
		t.Errorf("ItemCount() = %d, want 2", count)
	}

	// Verify the rows directly so schema and key format stay stable.
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to reopen database: %v", err)
	}
	defer db.Close()

	var class int
	var name, key, content string
	row := db.QueryRow("SELECT CLASS, NAME, KEY, CONTENT FROM ITEMS WHERE KEY = ?", "COLOR_003D30")
	if err := row.Scan(&class, &name, &key, &content); err != nil {
		t.Fatalf("colour item not found: %v", err)
	}
	if class != ClassPoint {
		t.Errorf("CLASS = %d, want %d", class, ClassPoint)
	}
	if name != "Color_Dark_Teal_1" {
		t.Errorf("NAME = %q, want Color_Dark_Teal_1", name)
	}
	if !strings.Contains(content, "CIMPointSymbol") {
		t.Errorf("CONTENT is not a point symbol: %s", content)
	}
}

func TestWritePairs(t *testing.T) {
	w, path := testWriter(t)

	pairs := []colour.PairAnalysis{
		{
			A:     colour.Swatch{Name: "Black", Colour: mustHex(t, "#000000")},
			B:     colour.Swatch{Name: "White", Colour: mustHex(t, "#FFFFFF")},
			Ratio: 21.0,
		},
	}

	n, err := w.WritePairs("Accessible Pairs", pairs)
	if err != nil {
		t.Fatalf("WritePairs() error = %v", err)
	}
	if n != 3 {
		t.Errorf("WritePairs() wrote %d items, want 3 per pair", n)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to reopen database: %v", err)
	}
	defer db.Close()

	tests := []struct {
		key   string
		class int
	}{
		{"POINT_000000_FFFFFF", ClassPoint},
		{"LINE_000000_FFFFFF", ClassLine},
		{"POLYGON_000000_FFFFFF", ClassPolygon},
	}
	for _, tt := range tests {
		var class int
		var category string
		row := db.QueryRow("SELECT CLASS, CATEGORY FROM ITEMS WHERE KEY = ?", tt.key)
		if err := row.Scan(&class, &category); err != nil {
			t.Errorf("item %s not found: %v", tt.key, err)
			continue
		}
		if class != tt.class {
			t.Errorf("item %s CLASS = %d, want %d", tt.key, class, tt.class)
		}
		if category != "Accessible Pairs" {
			t.Errorf("item %s CATEGORY = %q", tt.key, category)
		}
	}
}

func TestWriteTemplatePairs(t *testing.T) {
	w, _ := testWriter(t)

	template := `{"type": "CIMPolygonSymbol", "symbolLayers": [
		{"type": "CIMSolidFill", "color": {"type": "CIMRGBColor", "values": [1, 2, 3, 100]}}
	]}`

	pairs := []colour.PairAnalysis{
		{
			A: colour.Swatch{Name: "Teal", Colour: mustHex(t, "#00735C")},
			B: colour.Swatch{Name: "White", Colour: mustHex(t, "#FFFFFF")},
		},
	}

	n, err := w.WriteTemplatePairs("Templates", "Hatch", template, ClassPolygon, pairs)
	if err != nil {
		t.Fatalf("WriteTemplatePairs() error = %v", err)
	}
	if n != 1 {
		t.Errorf("WriteTemplatePairs() wrote %d items, want 1", n)
	}

	count, err := w.ItemCount()
	if err != nil {
		t.Fatalf("ItemCount() error = %v", err)
	}
	if count != 1 {
		t.Errorf("ItemCount() = %d, want 1", count)
	}
}

func TestClear(t *testing.T) {
	w, _ := testWriter(t)

	p := palette.Palette{Swatches: []colour.Swatch{{Name: "Black", Colour: colour.RGB{}}}}
	if _, err := w.WriteColours(p); err != nil {
		t.Fatalf("WriteColours() error = %v", err)
	}

	if err := w.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	count, err := w.ItemCount()
	if err != nil {
		t.Fatalf("ItemCount() error = %v", err)
	}
	if count != 0 {
		t.Errorf("ItemCount() after Clear = %d, want 0", count)
	}
}

func TestDuplicateKeysRejected(t *testing.T) {
	w, _ := testWriter(t)

	p := palette.Palette{Swatches: []colour.Swatch{
		{Name: "First", Colour: mustHex(t, "#AABBCC")},
		{Name: "Second", Colour: mustHex(t, "#AABBCC")},
	}}

	// Two swatches with the same colour collide on KEY.
	if _, err := w.WriteColours(p); err == nil {
		t.Error("WriteColours() with duplicate colours succeeded, want unique-key error")
	}
}
