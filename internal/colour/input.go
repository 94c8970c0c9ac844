package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Input adapters normalize a record or a Tuple into a validated record so the
// converters only ever see one shape.

func rgbInput(in any) (RGB, error) {
	switch c := in.(type) {
	case RGB:
		for i, v := range []int{c.R, c.G, c.B} {
			if v < 0 || v > 255 {
				return RGB{}, modelError(ModelRGB, "rgb"[i:i+1], float64(v), 0, 255)
			}
		}
		c.Alpha = c.Alpha.normalized()
		return c, nil
	case Tuple:
		var out [3]int
		for i, v := range c {
			if math.IsNaN(v) || v < 0 || v > 255 {
				return RGB{}, modelError(ModelRGB, "rgb"[i:i+1], v, 0, 255)
			}
			out[i] = int(math.Round(v))
		}
		return RGB{R: out[0], G: out[1], B: out[2]}, nil
	}
	return RGB{}, newError(ErrInvalidInput, fmt.Sprintf("expected RGB or [r,g,b], got %T", in))
}

func hslInput(in any) (HSL, error) {
	var c HSL
	switch v := in.(type) {
	case HSL:
		c = v
	case Tuple:
		c = HSL{H: v[0], S: v[1], L: v[2]}
	default:
		return HSL{}, newError(ErrInvalidInput, fmt.Sprintf("expected HSL or [h,s,l], got %T", in))
	}

	if math.IsNaN(c.H) || c.H < 0 || c.H > 360 {
		return HSL{}, modelError(ModelHSL, "h", c.H, 0, 360)
	}
	if math.IsNaN(c.S) || c.S < 0 || c.S > 100 {
		return HSL{}, modelError(ModelHSL, "s", c.S, 0, 100)
	}
	if math.IsNaN(c.L) || c.L < 0 || c.L > 100 {
		return HSL{}, modelError(ModelHSL, "l", c.L, 0, 100)
	}
	c.H = NormalizeHue(c.H)
	c.Alpha = c.Alpha.normalized()
	return c, nil
}

// percentLightness treats a lightness above 1 as a percentage.
// TODO: a deliberately out-of-range lightness such as 1.2 is silently read as 1.2%; surface a warning once callers can receive one.
func percentLightness(l float64) float64 {
	if l > 1 && l <= 100 {
		return l / 100
	}
	return l
}

func okLabInput(in any) (OkLab, error) {
	var c OkLab
	switch v := in.(type) {
	case OkLab:
		c = v
	case Tuple:
		c = OkLab{L: v[0], A: v[1], B: v[2]}
	default:
		return OkLab{}, newError(ErrInvalidInput, fmt.Sprintf("expected OkLab or [l,a,b], got %T", in))
	}

	c.L = percentLightness(c.L)
	if math.IsNaN(c.L) || c.L < 0 || c.L > 1 {
		return OkLab{}, modelError(ModelOkLab, "l", c.L, 0, 1)
	}
	if math.IsNaN(c.A) || c.A < -1 || c.A > 1 {
		return OkLab{}, modelError(ModelOkLab, "a", c.A, -1, 1)
	}
	if math.IsNaN(c.B) || c.B < -1 || c.B > 1 {
		return OkLab{}, modelError(ModelOkLab, "b", c.B, -1, 1)
	}
	c.Alpha = c.Alpha.normalized()
	return c, nil
}

func okLCHInput(in any) (OkLCH, error) {
	var c OkLCH
	switch v := in.(type) {
	case OkLCH:
		c = v
	case Tuple:
		c = OkLCH{L: v[0], C: v[1], H: v[2]}
	default:
		return OkLCH{}, newError(ErrInvalidInput, fmt.Sprintf("expected OkLCH or [l,c,h], got %T", in))
	}

	if math.IsNaN(c.H) {
		c.H = 0
	}
	c.L = percentLightness(c.L)
	if math.IsNaN(c.L) || c.L < 0 || c.L > 1 {
		return OkLCH{}, modelError(ModelOkLCH, "l", c.L, 0, 1)
	}
	if math.IsNaN(c.C) || c.C < 0 || c.C > 1 {
		return OkLCH{}, modelError(ModelOkLCH, "c", c.C, 0, 1)
	}
	if c.H < 0 || c.H > 360 {
		return OkLCH{}, modelError(ModelOkLCH, "h", c.H, 0, 360)
	}
	c.H = NormalizeHue(c.H)
	c.Alpha = c.Alpha.normalized()
	return c, nil
}

// hexInput validates and normalizes a hex string to lowercase "#rrggbb[aa]".
// Shorthand forms are expanded and an alpha pair of "ff" is dropped.
func hexInput(s string) (Hex, error) {
	h := strings.ToLower(strings.TrimSpace(s))
	h = strings.TrimPrefix(h, "#")

	switch len(h) {
	case 3, 4:
		var b strings.Builder
		for i := 0; i < len(h); i++ {
			b.WriteByte(h[i])
			b.WriteByte(h[i])
		}
		h = b.String()
	case 6, 8:
	default:
		return "", newError(ErrInvalidInput, fmt.Sprintf("invalid hex colour %q: expected 3, 4, 6 or 8 digits", s))
	}

	for i := 0; i < len(h); i++ {
		if !isHexDigit(h[i]) {
			return "", newError(ErrInvalidInput, fmt.Sprintf("invalid hex colour %q: %q is not a hex digit", s, h[i]))
		}
	}
	if len(h) == 8 && h[6:] == "ff" {
		h = h[:6]
	}
	return Hex("#" + h), nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func parseHexByte(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, err
	}
	return uint8(v), nil
}

// normalizeValue validates any Value and returns its canonical record.
func normalizeValue(v Value) (Value, error) {
	switch c := v.(type) {
	case Hex:
		return hexInput(string(c))
	case RGB:
		return rgbInput(c)
	case HSL:
		return hslInput(c)
	case OkLab:
		return okLabInput(c)
	case OkLCH:
		return okLCHInput(c)
	case nil:
		return nil, newError(ErrInvalidInput, "colour value is nil")
	}
	return nil, newError(ErrInvalidInput, fmt.Sprintf("expected a hex string or a colour record, got %T", v))
}
