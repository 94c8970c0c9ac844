package colour

import (
	"strconv"
	"strings"
)

// FormatOptions controls CSS serialization.
type FormatOptions struct {
	// Model is the output model. The zero value is ModelHex.
	Model Model
	// Precision is the number of decimals for non-integer fields; zero means DefaultPrecision.
	Precision int
	// Separator joins rgb/hsl components; empty means a single space.
	// oklab and oklch always use a single space.
	Separator string
	// Alpha overrides the value's own alpha when set.
	Alpha Alpha
}

func (o FormatOptions) precision() int {
	if o.Precision <= 0 {
		return DefaultPrecision
	}
	return o.Precision
}

// Format renders v as canonical CSS text in opts.Model.
//
// Values are pivoted through HSL unless they are already in the target model.
// An alpha of 1 is never rendered.
func Format(v Value, opts FormatOptions) (string, error) {
	if opts.Precision > MaxPrecision {
		return "", precisionError(opts.Precision)
	}
	if !opts.Model.Valid() {
		return "", newError(ErrInvalidInput, "unknown output model "+opts.Model.String())
	}
	n, err := normalizeValue(v)
	if err != nil {
		return "", err
	}

	precision := opts.precision()
	alpha := opts.Alpha.Or(n.Opacity()).normalized()

	out := n
	if n.Model() != opts.Model {
		out = convertValue(toHSL(n, precision), opts.Model, precision)
	}

	sep := opts.Separator
	if sep == "" {
		sep = " "
	}

	var prefix string
	var params []string
	switch c := out.(type) {
	case Hex:
		rgb := hexToRGB(c)
		rgb.Alpha = alpha
		return string(rgbToHex(rgb)), nil
	case RGB:
		prefix = "rgb"
		params = []string{strconv.Itoa(c.R), strconv.Itoa(c.G), strconv.Itoa(c.B)}
	case HSL:
		prefix = "hsl"
		params = []string{
			formatHue(c.H, precision),
			formatNumber(c.S, precision) + "%",
			formatNumber(c.L, precision) + "%",
		}
	case OkLab:
		prefix, sep = "oklab", " "
		params = []string{
			formatNumber(c.L*100, precision) + "%",
			formatNumber(c.A, precision),
			formatNumber(c.B, precision),
		}
	case OkLCH:
		prefix, sep = "oklch", " "
		params = []string{
			formatNumber(c.L*100, precision) + "%",
			formatNumber(c.C, precision),
			formatHue(c.H, precision),
		}
	}

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteByte('(')
	b.WriteString(strings.Join(params, sep))
	if alpha.Translucent() {
		a, _ := alpha.Value()
		b.WriteString(" / ")
		b.WriteString(formatNumber(a*100, 2))
		b.WriteByte('%')
	}
	b.WriteByte(')')
	return b.String(), nil
}

// Convert parses text and formats it in the target model.
func Convert(text string, target Model) (string, error) {
	return ConvertWith(text, FormatOptions{Model: target})
}

// ConvertWith parses text and formats it with opts.
func ConvertWith(text string, opts FormatOptions) (string, error) {
	if opts.Precision > MaxPrecision {
		return "", precisionError(opts.Precision)
	}
	v, err := parse(text, opts.precision())
	if err != nil {
		return "", err
	}
	return Format(v, opts)
}

// formatHue rounds before wrapping so 359.9999 prints as 0, not 360.
func formatHue(h float64, precision int) string {
	return formatNumber(NormalizeHue(Round(h, precision)), precision)
}

func formatNumber(v float64, precision int) string {
	return strconv.FormatFloat(Round(v, precision), 'f', -1, 64)
}
