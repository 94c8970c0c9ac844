package colour

import (
	"fmt"
	"strings"
)

// AdjustOptions holds amount expressions applied in HSL space (see EvalAmount).
// Empty fields leave the component unchanged.
type AdjustOptions struct {
	Hue        string
	Saturation string
	Lightness  string
	Alpha      string
	// Format is the output model name; empty means the input's own model.
	Format string
}

// Adjust applies amount expressions to a colour. Hue wraps; saturation and
// lightness clamp to [0,100]; alpha clamps to [0,1].
func Adjust(text string, opts AdjustOptions) (string, error) {
	v, err := Parse(text)
	if err != nil {
		return "", err
	}
	model, err := outputModel(opts.Format, v)
	if err != nil {
		return "", err
	}

	hsl := toHSL(v, DefaultPrecision)
	if hsl.H, err = EvalAmount(opts.Hue, hsl.H); err != nil {
		return "", fmt.Errorf("hue: %w", err)
	}
	if hsl.S, err = EvalAmount(opts.Saturation, hsl.S); err != nil {
		return "", fmt.Errorf("saturation: %w", err)
	}
	if hsl.L, err = EvalAmount(opts.Lightness, hsl.L); err != nil {
		return "", fmt.Errorf("lightness: %w", err)
	}
	hsl.H = NormalizeHue(hsl.H)
	hsl.S = Clamp(hsl.S, 0, 100)
	hsl.L = Clamp(hsl.L, 0, 100)

	if opts.Alpha != "" {
		current, ok := v.Opacity().Value()
		if !ok {
			current = 1
		}
		a, err := EvalAmount(opts.Alpha, current)
		if err != nil {
			return "", fmt.Errorf("alpha: %w", err)
		}
		hsl.Alpha = Opacity(a).normalized()
	}

	return Format(hsl, FormatOptions{Model: model})
}

func amount(v float64) string {
	return fmt.Sprintf("(%g)", v)
}

// Lighten raises HSL lightness by amount percentage points.
func Lighten(text string, amt float64) (string, error) {
	return Adjust(text, AdjustOptions{Lightness: amount(amt)})
}

// Darken lowers HSL lightness by amount percentage points.
func Darken(text string, amt float64) (string, error) {
	return Adjust(text, AdjustOptions{Lightness: "-" + amount(amt)})
}

// Saturate raises HSL saturation by amount percentage points.
func Saturate(text string, amt float64) (string, error) {
	return Adjust(text, AdjustOptions{Saturation: amount(amt)})
}

// Desaturate lowers HSL saturation by amount percentage points.
func Desaturate(text string, amt float64) (string, error) {
	return Adjust(text, AdjustOptions{Saturation: "-" + amount(amt)})
}

// Rotate turns the hue by degrees.
func Rotate(text string, degrees float64) (string, error) {
	return Adjust(text, AdjustOptions{Hue: amount(degrees)})
}

// Opacify sets the alpha.
func Opacify(text string, alpha float64) (string, error) {
	return Adjust(text, AdjustOptions{Alpha: "=" + amount(alpha)})
}

// Transparentize lowers the alpha by amount.
func Transparentize(text string, amt float64) (string, error) {
	return Adjust(text, AdjustOptions{Alpha: "-" + amount(amt)})
}

// Invert returns the RGB complement, keeping alpha and the input's model.
func Invert(text string) (string, error) {
	v, err := Parse(text)
	if err != nil {
		return "", err
	}
	rgb := toRGB(v, DefaultPrecision)
	rgb.R, rgb.G, rgb.B = 255-rgb.R, 255-rgb.G, 255-rgb.B
	return Format(rgb, FormatOptions{Model: v.Model()})
}

// Grayscale drops the OkLCH chroma, keeping perceived lightness.
func Grayscale(text string) (string, error) {
	v, err := Parse(text)
	if err != nil {
		return "", err
	}
	lch := toOkLCH(v, DefaultPrecision)
	lch.C, lch.H = 0, 0
	return Format(lch, FormatOptions{Model: v.Model()})
}

// Mix interpolates from a toward b in OkLab; ratio 0 returns a, 1 returns b.
// The result is in a's model.
func Mix(a, b string, ratio float64) (string, error) {
	if ratio < 0 || ratio > 1 {
		return "", rangeError("ratio", ratio, "within [0, 1]")
	}
	va, err := Parse(a)
	if err != nil {
		return "", err
	}
	vb, err := Parse(b)
	if err != nil {
		return "", err
	}

	la := toOkLab(va, DefaultPrecision)
	lb := toOkLab(vb, DefaultPrecision)
	mixed := OkLab{
		L: Lerp(la.L, lb.L, ratio),
		A: Lerp(la.A, lb.A, ratio),
		B: Lerp(la.B, lb.B, ratio),
	}

	aa, aok := va.Opacity().Value()
	ab, bok := vb.Opacity().Value()
	if aok || bok {
		if !aok {
			aa = 1
		}
		if !bok {
			ab = 1
		}
		mixed.Alpha = Opacity(Lerp(aa, ab, ratio)).normalized()
	}
	return Format(mixed, FormatOptions{Model: va.Model()})
}

// Harmony names a hue rotation scheme.
type Harmony string

// Harmony schemes.
const (
	HarmonyAnalogous     Harmony = "analogous"
	HarmonyComplementary Harmony = "complementary"
	HarmonySplit         Harmony = "split"
	HarmonySquare        Harmony = "square"
	HarmonyTetradic      Harmony = "tetradic"
	HarmonyTriadic       Harmony = "triadic"
)

var harmonyOffsets = map[Harmony][]float64{
	HarmonyAnalogous:     {0, -30, 30},
	HarmonyComplementary: {0, 180},
	HarmonySplit:         {0, 150, 210},
	HarmonySquare:        {0, 90, 180, 270},
	HarmonyTetradic:      {0, 60, 180, 240},
	HarmonyTriadic:       {0, 120, 240},
}

// Harmonies returns the supported schemes.
func Harmonies() []Harmony {
	return []Harmony{HarmonyAnalogous, HarmonyComplementary, HarmonySplit, HarmonySquare, HarmonyTetradic, HarmonyTriadic}
}

// Palette rotates the seed's OkLCH hue by the scheme's offsets. The first entry is the seed.
func Palette(seed string, kind Harmony) ([]string, error) {
	offsets, ok := harmonyOffsets[Harmony(strings.ToLower(string(kind)))]
	if !ok {
		return nil, newError(ErrInvalidInput, fmt.Sprintf("unknown harmony %q", kind))
	}
	v, err := Parse(seed)
	if err != nil {
		return nil, err
	}
	lch := toOkLCH(v, DefaultPrecision)
	opts := FormatOptions{Model: v.Model()}

	out := make([]string, len(offsets))
	for i, off := range offsets {
		c := v
		if off != 0 {
			rotated := lch
			rotated.H = NormalizeHue(lch.H + off)
			c = rotated
		}
		if out[i], err = Format(c, opts); err != nil {
			return nil, err
		}
	}
	return out, nil
}
