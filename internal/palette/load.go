package palette

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/trentschlar/DigitalAccessibility/internal/colour"
)

// Load reads a palette from a file. JSON files (a palette object or a bare
// swatch array) and simple text files are accepted. A malformed colour
// anywhere in the file fails the whole load; colours are never silently
// skipped or defaulted.
func Load(path string) (Palette, error) {
	data, err := os.ReadFile(path) // #nosec G304 - User-specified palette file, intended to be read
	if err != nil {
		return Palette{}, fmt.Errorf("failed to read palette file: %w", err)
	}

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return parseJSON(path, data)
	}

	return parseText(path, trimmed)
}

// parseJSON parses a palette object or a bare array of swatches.
func parseJSON(path string, data []byte) (Palette, error) {
	var p Palette
	if err := json.Unmarshal(data, &p); err == nil && len(p.Swatches) > 0 {
		if p.Name == "" {
			p.Name = baseName(path)
		}
		return p, nil
	}

	var swatches []colour.Swatch
	if err := json.Unmarshal(data, &swatches); err != nil {
		return Palette{}, fmt.Errorf("failed to parse palette JSON: %w", err)
	}

	return Palette{Name: baseName(path), Swatches: swatches}, nil
}

// parseText parses the simple text format: one colour per line as
// "RRGGBB Name" (leading # on the colour optional, name optional, comma or
// whitespace separated). Lines starting with "//" are comments.
func parseText(path, content string) (Palette, error) {
	swatches := make([]colour.Swatch, 0)

	for lineNum, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		hex, name, _ := strings.Cut(strings.Replace(line, ",", " ", 1), " ")
		name = strings.TrimSpace(name)

		rgb, err := colour.ParseHex(hex)
		if err != nil {
			return Palette{}, fmt.Errorf("line %d: %w", lineNum+1, err)
		}

		if name == "" {
			name = fmt.Sprintf("Colour %d", len(swatches)+1)
		}

		swatches = append(swatches, colour.Swatch{Name: name, Colour: rgb})
	}

	if len(swatches) == 0 {
		return Palette{}, fmt.Errorf("palette file %s contains no colours", path)
	}

	return Palette{Name: baseName(path), Swatches: swatches}, nil
}

// Resolve loads a palette by builtin name or, failing that, file path.
func Resolve(nameOrPath string) (Palette, error) {
	if p, err := Builtin(nameOrPath); err == nil {
		return p, nil
	}

	if _, err := os.Stat(nameOrPath); err != nil {
		return Palette{}, fmt.Errorf("%q is neither a builtin palette (%v) nor a readable file", nameOrPath, BuiltinNames())
	}

	return Load(nameOrPath)
}

// baseName derives a palette name from a file path.
func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
