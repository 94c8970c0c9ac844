// Package colour converts colours between hex, RGB, HSL, OkLab and OkLCH, parses and
// formats CSS colour strings, and derives gamut limits, tonal scales and swatches.
package colour

import (
	"fmt"
	"strings"
)

// Model identifies a colour representation.
type Model int

// Supported colour models.
const (
	ModelHex Model = iota
	ModelRGB
	ModelHSL
	ModelOkLab
	ModelOkLCH

	modelCount
)

var modelNames = [modelCount]string{"hex", "rgb", "hsl", "oklab", "oklch"}

// String returns the lowercase CSS name of the model.
func (m Model) String() string {
	if m < 0 || m >= modelCount {
		return fmt.Sprintf("Model(%d)", int(m))
	}
	return modelNames[m]
}

// Valid reports whether m is one of the supported models.
func (m Model) Valid() bool {
	return m >= 0 && m < modelCount
}

// Models returns all supported models in declaration order.
func Models() []Model {
	return []Model{ModelHex, ModelRGB, ModelHSL, ModelOkLab, ModelOkLCH}
}

// ParseModel parses a model name such as "oklch" or "HSL".
// The legacy "rgba" and "hsla" spellings are accepted.
func ParseModel(name string) (Model, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "hex", "#":
		return ModelHex, nil
	case "rgb", "rgba":
		return ModelRGB, nil
	case "hsl", "hsla":
		return ModelHSL, nil
	case "oklab":
		return ModelOkLab, nil
	case "oklch":
		return ModelOkLCH, nil
	}
	return 0, newError(ErrInvalidInput, fmt.Sprintf("unknown colour model %q (valid: %s)", name, strings.Join(modelNames[:], ", ")))
}

// Alpha is an optional opacity in [0,1]. The zero value means no alpha was given.
type Alpha struct {
	value float64
	set   bool
}

// Opacity returns an Alpha holding v clamped to [0,1].
func Opacity(v float64) Alpha {
	return Alpha{value: Clamp(v, 0, 1), set: true}
}

// Value returns the opacity and whether it was set.
func (a Alpha) Value() (float64, bool) {
	return a.value, a.set
}

// Set reports whether an opacity was given.
func (a Alpha) Set() bool {
	return a.set
}

// Translucent reports whether the alpha is set and below 1.
func (a Alpha) Translucent() bool {
	return a.set && a.value != 1
}

// Or returns a if it is set, otherwise fallback.
func (a Alpha) Or(fallback Alpha) Alpha {
	if a.set {
		return a
	}
	return fallback
}

// normalized drops an alpha of exactly 1.
func (a Alpha) normalized() Alpha {
	if a.set && a.value == 1 {
		return Alpha{}
	}
	return a
}

// Value is a colour in one of the supported models: Hex, RGB, HSL, OkLab or OkLCH.
type Value interface {
	Model() Model
	Opacity() Alpha
	isValue()
}

// Hex is a normalized lowercase "#rrggbb" or "#rrggbbaa" string.
type Hex string

// RGB holds 8-bit channels in [0,255].
type RGB struct {
	R, G, B int
	Alpha   Alpha
}

// HSL holds hue in [0,360) and saturation/lightness in [0,100].
type HSL struct {
	H, S, L float64
	Alpha   Alpha
}

// OkLab holds perceptual lightness in [0,1] and the a/b opponent axes.
type OkLab struct {
	L, A, B float64
	Alpha   Alpha
}

// OkLCH is the polar form of OkLab: lightness, chroma and hue in degrees.
type OkLCH struct {
	L, C, H float64
	Alpha   Alpha
}

// Tuple is an ordered component triple: [h,s,l], [r,g,b], [l,a,b] or [l,c,h].
type Tuple [3]float64

func (Hex) Model() Model   { return ModelHex }
func (RGB) Model() Model   { return ModelRGB }
func (HSL) Model() Model   { return ModelHSL }
func (OkLab) Model() Model { return ModelOkLab }
func (OkLCH) Model() Model { return ModelOkLCH }

// Opacity decodes the alpha pair of an 8 digit hex string.
func (h Hex) Opacity() Alpha {
	s := string(h)
	if len(s) != 9 {
		return Alpha{}
	}
	v, err := parseHexByte(s[7:9])
	if err != nil {
		return Alpha{}
	}
	return Opacity(Round(float64(v)/255, DefaultPrecision)).normalized()
}

func (c RGB) Opacity() Alpha   { return c.Alpha }
func (c HSL) Opacity() Alpha   { return c.Alpha }
func (c OkLab) Opacity() Alpha { return c.Alpha }
func (c OkLCH) Opacity() Alpha { return c.Alpha }

func (Hex) isValue()   {}
func (RGB) isValue()   {}
func (HSL) isValue()   {}
func (OkLab) isValue() {}
func (OkLCH) isValue() {}

// String returns the hex string.
func (h Hex) String() string { return string(h) }

// Tuple returns the channels as [r,g,b].
func (c RGB) Tuple() Tuple { return Tuple{float64(c.R), float64(c.G), float64(c.B)} }

// Tuple returns the components as [h,s,l].
func (c HSL) Tuple() Tuple { return Tuple{c.H, c.S, c.L} }

// Tuple returns the components as [l,a,b].
func (c OkLab) Tuple() Tuple { return Tuple{c.L, c.A, c.B} }

// Tuple returns the components as [l,c,h].
func (c OkLCH) Tuple() Tuple { return Tuple{c.L, c.C, c.H} }

// withAlpha returns v carrying alpha a.
func withAlpha(v Value, a Alpha) Value {
	a = a.normalized()
	switch c := v.(type) {
	case Hex:
		rgb := hexToRGB(c)
		rgb.Alpha = a
		return rgbToHex(rgb)
	case RGB:
		c.Alpha = a
		return c
	case HSL:
		c.Alpha = a
		return c
	case OkLab:
		c.Alpha = a
		return c
	case OkLCH:
		c.Alpha = a
		return c
	}
	return v
}
