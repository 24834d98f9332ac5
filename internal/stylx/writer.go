package stylx

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/trentschlar/DigitalAccessibility/internal/colour"
	"github.com/trentschlar/DigitalAccessibility/internal/palette"
)

// Writer adds symbol items to a .stylx style database.
type Writer struct {
	db  *sql.DB
	log hclog.Logger
}

// NewWriter opens (or creates) a style database at path and ensures the
// ITEMS table exists.
func NewWriter(path string, logger hclog.Logger) (*Writer, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open style database: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS ITEMS (
		ID INTEGER PRIMARY KEY AUTOINCREMENT,
		CLASS INTEGER NOT NULL,
		CATEGORY TEXT,
		NAME TEXT,
		TAGS TEXT,
		CONTENT TEXT,
		KEY TEXT UNIQUE
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create ITEMS table: %w", err)
	}

	return &Writer{db: db, log: logger}, nil
}

// Close closes the underlying database.
func (w *Writer) Close() error {
	return w.db.Close()
}

// Clear removes all existing items from the style.
func (w *Writer) Clear() error {
	if _, err := w.db.Exec("DELETE FROM ITEMS"); err != nil {
		return fmt.Errorf("failed to clear style items: %w", err)
	}
	w.log.Debug("cleared existing style items")
	return nil
}

// ItemCount returns the number of items currently in the style.
func (w *Writer) ItemCount() (int, error) {
	var count int
	if err := w.db.QueryRow("SELECT COUNT(*) FROM ITEMS").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count style items: %w", err)
	}
	return count, nil
}

const insertItem = `INSERT INTO ITEMS (CLASS, CATEGORY, NAME, TAGS, CONTENT, KEY)
	VALUES (?, ?, ?, ?, ?, ?)`

// WriteColours adds one point symbol per palette colour under the "Colors"
// category. Returns the number of items written.
func (w *Writer) WriteColours(p palette.Palette) (int, error) {
	tx, err := w.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	written := 0
	for _, swatch := range p.Swatches {
		content, err := PointSymbolJSON(swatch.Colour, nil)
		if err != nil {
			return written, err
		}

		name := fmt.Sprintf("Color_%s", itemName(swatch.Name))
		key := fmt.Sprintf("COLOR_%s", hexKey(swatch.Colour))

		if _, err := tx.Exec(insertItem, ClassPoint, "Colors", name, "color;palette;vision", content, key); err != nil {
			return written, fmt.Errorf("failed to insert colour %s: %w", swatch.Name, err)
		}

		w.log.Debug("added colour symbol", "name", name, "key", key)
		written++
	}

	if err := tx.Commit(); err != nil {
		return written, fmt.Errorf("failed to commit colours: %w", err)
	}
	return written, nil
}

// WritePairs adds point, line, and polygon symbols for each accessible
// colour pair under the given category. Returns the number of items
// written (three per pair).
func (w *Writer) WritePairs(category string, pairs []colour.PairAnalysis) (int, error) {
	tx, err := w.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	written := 0
	for _, pair := range pairs {
		baseName := fmt.Sprintf("%s_%s", itemName(pair.A.Name), itemName(pair.B.Name))
		baseKey := fmt.Sprintf("%s_%s", hexKey(pair.A.Colour), hexKey(pair.B.Colour))

		outline := pair.B.Colour
		pointJSON, err := PointSymbolJSON(pair.A.Colour, &outline)
		if err != nil {
			return written, err
		}
		lineJSON, err := LineSymbolJSON(pair.A.Colour)
		if err != nil {
			return written, err
		}
		polyJSON, err := PolygonSymbolJSON(pair.A.Colour, pair.B.Colour)
		if err != nil {
			return written, err
		}

		items := []struct {
			class   int
			kind    string
			tags    string
			content string
		}{
			{ClassPoint, "Point", "accessible;contrast;point", pointJSON},
			{ClassLine, "Line", "accessible;contrast;line", lineJSON},
			{ClassPolygon, "Polygon", "accessible;contrast;polygon", polyJSON},
		}

		for _, item := range items {
			name := fmt.Sprintf("%s_%s", item.kind, baseName)
			key := fmt.Sprintf("%s_%s", strings.ToUpper(item.kind), baseKey)

			if _, err := tx.Exec(insertItem, item.class, category, name, item.tags, item.content, key); err != nil {
				return written, fmt.Errorf("failed to insert pair %s/%s: %w", pair.A.Name, pair.B.Name, err)
			}
			written++
		}

		w.log.Debug("added pair symbols", "pair", baseName, "ratio", pair.Ratio)
	}

	if err := tx.Commit(); err != nil {
		return written, fmt.Errorf("failed to commit pairs: %w", err)
	}
	return written, nil
}

// WriteTemplatePairs clones a template symbol once per pair, recolouring
// it with the pair's colours.
func (w *Writer) WriteTemplatePairs(category, templateName, templateJSON string, class int, pairs []colour.PairAnalysis) (int, error) {
	tx, err := w.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	written := 0
	for _, pair := range pairs {
		content, err := ReplaceColours(templateJSON, pair.A.Colour, pair.B.Colour)
		if err != nil {
			return written, fmt.Errorf("pair %s/%s: %w", pair.A.Name, pair.B.Name, err)
		}

		name := fmt.Sprintf("%s_%s_%s", templateName, itemName(pair.A.Name), itemName(pair.B.Name))
		key := fmt.Sprintf("%s_%s_%s", strings.ToUpper(templateName), hexKey(pair.A.Colour), hexKey(pair.B.Colour))

		if _, err := tx.Exec(insertItem, class, category, name, "accessible;contrast;template", content, key); err != nil {
			return written, fmt.Errorf("failed to insert template clone %s: %w", name, err)
		}
		written++
	}

	if err := tx.Commit(); err != nil {
		return written, fmt.Errorf("failed to commit template clones: %w", err)
	}
	return written, nil
}

// itemName turns a display name into a style item name.
func itemName(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
}

// hexKey returns the uppercase hex form used in item keys.
func hexKey(c colour.RGB) string {
	return strings.ToUpper(strings.TrimPrefix(c.Hex(), "#"))
}
