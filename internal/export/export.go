// Package export renders scales and swatches as CSS custom properties, a
// Tailwind theme extension, or JSON.
package export

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/samber/lo"
)

//go:embed templates/*.tmpl
var templates embed.FS

// Format is an export target.
type Format string

// Export formats.
const (
	FormatCSS      Format = "css"
	FormatTailwind Format = "tailwind"
	FormatJSON     Format = "json"
)

// DefaultName is used when no name is given.
const DefaultName = "color"

// Formats returns the supported export formats.
func Formats() []Format {
	return []Format{FormatCSS, FormatTailwind, FormatJSON}
}

// ParseFormat parses an export format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !lo.Contains(Formats(), f) {
		return "", fmt.Errorf("invalid export format: %s (must be one of %s)", s,
			strings.Join(lo.Map(Formats(), func(f Format, _ int) string { return string(f) }), ", "))
	}
	return f, nil
}

type data struct {
	Name   string        `json:"name"`
	Shades colour.Shades `json:"shades"`
}

// Render writes shades under name in the given format. Names are kebab-cased.
func Render(name string, shades colour.Shades, format Format) ([]byte, error) {
	if len(shades) == 0 {
		return nil, fmt.Errorf("no shades to export")
	}
	d := data{Name: Slug(name), Shades: shades}

	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}
		return append(out, '\n'), nil
	case FormatCSS, FormatTailwind:
		return execute(string(format), d)
	}
	return nil, fmt.Errorf("invalid export format: %s", format)
}

func execute(name string, d data) ([]byte, error) {
	content, err := templates.ReadFile("templates/" + name + ".tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to read %s template: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, d); err != nil {
		return nil, fmt.Errorf("failed to execute %s template: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Slug returns name as a kebab-case identifier, or DefaultName when nothing is left.
func Slug(name string) string {
	if s := lo.KebabCase(name); s != "" {
		return s
	}
	return DefaultName
}
