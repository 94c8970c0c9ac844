package colour

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const cssNumber = `([-+]?(?:\d+(?:\.\d*)?|\.\d+)(?:e[-+]?\d+)?(?:%|deg)?)`

var (
	hexPattern = regexp.MustCompile(`^#(?:[0-9a-f]{3,4}|[0-9a-f]{6}|[0-9a-f]{8})$`)

	// Components are separated by commas (legacy) or whitespace (modern); the
	// optional alpha by a comma, a slash or whitespace.
	functionPattern = regexp.MustCompile(`^(rgb|hsl|oklab|oklch)a?\(\s*` +
		cssNumber + `(?:\s*,\s*|\s+)` +
		cssNumber + `(?:\s*,\s*|\s+)` +
		cssNumber +
		`(?:(?:\s*[,/]\s*|\s+)` + cssNumber + `)?\s*\)$`)
)

// Percentages of the OkLab a/b axes and OkLCH chroma are relative to 0.4.
const okPercentReference = 0.4

// Parse reads a hex, named or functional CSS colour and returns it in the model it was written in.
// Named colours are returned as Hex.
func Parse(text string) (Value, error) {
	return parse(text, DefaultPrecision)
}

// ParseAs parses text and converts the result to target.
func ParseAs(text string, target Model) (Value, error) {
	return parseAs(text, target, DefaultPrecision)
}

func parseAs(text string, target Model, precision int) (Value, error) {
	if !target.Valid() {
		return nil, newError(ErrInvalidInput, fmt.Sprintf("unknown target model %s", target))
	}
	v, err := parse(text, precision)
	if err != nil {
		return nil, err
	}
	if v.Model() == target {
		return v, nil
	}
	return convertValue(v, target, precision), nil
}

// DetectModel returns the model text is written in.
func DetectModel(text string) (Model, error) {
	v, err := Parse(text)
	if err != nil {
		return 0, err
	}
	return v.Model(), nil
}

// IsValidColor reports whether text parses as a colour.
func IsValidColor(text string) bool {
	_, err := Parse(text)
	return err == nil
}

func parse(text string, precision int) (Value, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return nil, newError(ErrInvalidInput, "colour text is empty")
	}

	if h, ok := LookupName(s); ok {
		return h, nil
	}

	if hexPattern.MatchString(s) {
		h, err := hexInput(s)
		if err != nil {
			return nil, err
		}
		return h, nil
	}

	m := functionPattern.FindStringSubmatch(s)
	if m == nil {
		return nil, cssError(text)
	}

	model, err := ParseModel(m[1])
	if err != nil {
		return nil, err
	}

	var parts [3]cssComponent
	for i := range parts {
		if parts[i], err = parseComponent(m[2+i]); err != nil {
			return nil, cssError(text)
		}
	}

	var alpha Alpha
	if m[5] != "" {
		a, err := parseComponent(m[5])
		if err != nil {
			return nil, cssError(text)
		}
		v := a.value
		if a.percent || v > 1 {
			v /= 100
		}
		alpha = Opacity(Round(v, precision)).normalized()
	}

	v, err := componentsToValue(model, parts)
	if err != nil {
		return nil, err
	}
	return withAlpha(v, alpha), nil
}

type cssComponent struct {
	value   float64
	percent bool
}

func parseComponent(s string) (cssComponent, error) {
	var c cssComponent
	switch {
	case strings.HasSuffix(s, "%"):
		c.percent = true
		s = strings.TrimSuffix(s, "%")
	case strings.HasSuffix(s, "deg"):
		s = strings.TrimSuffix(s, "deg")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return c, err
	}
	c.value = v
	return c, nil
}

// okLightness accepts 0.63, 63 or 63%.
func okLightness(c cssComponent) float64 {
	if c.percent {
		return c.value / 100
	}
	return percentLightness(c.value)
}

func okAxis(c cssComponent) float64 {
	if c.percent {
		return c.value / 100 * okPercentReference
	}
	return c.value
}

func componentsToValue(model Model, p [3]cssComponent) (Value, error) {
	switch model {
	case ModelRGB:
		var t Tuple
		for i, c := range p {
			t[i] = c.value
			if c.percent {
				t[i] = c.value * 255 / 100
			}
		}
		return rgbInput(t)
	case ModelHSL:
		return hslInput(Tuple{NormalizeHue(p[0].value), p[1].value, p[2].value})
	case ModelOkLab:
		return okLabInput(Tuple{okLightness(p[0]), okAxis(p[1]), okAxis(p[2])})
	case ModelOkLCH:
		return okLCHInput(Tuple{okLightness(p[0]), okAxis(p[1]), NormalizeHue(p[2].value)})
	}
	return nil, newError(ErrInvalidInput, fmt.Sprintf("unsupported model %s", model))
}
