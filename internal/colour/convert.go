package colour

import (
	"fmt"
	"math"
	"strings"
)

// OkLab matrices (Björn Ottosson), D65 white point.
var (
	rgbToLMS = [3][3]float64{
		{0.4122214694707629, 0.5363325372617349, 0.0514459932675022},
		{0.2119034958178251, 0.6806995506452344, 0.1073969535369406},
		{0.0883024591900564, 0.2817188391361215, 0.6299787016738222},
	}
	lmsToLab = [3][3]float64{
		{0.210454268309314, 0.7936177747023054, -0.0040720430116193},
		{1.9779985324311684, -2.4285922420485799, 0.450593709617411},
		{0.0259040424655478, 0.7827717124575296, -0.8086757549230774},
	}
	labToLMS = [3][3]float64{
		{1, 0.3963377773761749, 0.2158037573099136},
		{1, -0.1055613458156586, -0.0638541728258133},
		{1, -0.0894841775298119, -1.2914855480194092},
	}
	lmsToRGB = [3][3]float64{
		{4.076741636075958, -3.307711539258063, 0.2309699031821043},
		{-1.2684379732850315, 2.609757349287688, -0.341319376002657},
		{-0.0041960761386756, -0.7034186179359362, 1.7076146940746117},
	}
)

func mul(m [3][3]float64, v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// srgbToLinear decodes a gamma-encoded channel in [0,1], keeping the sign of negative excursions.
func srgbToLinear(c float64) float64 {
	abs := math.Abs(c)
	if abs <= 0.04045 {
		return c / 12.92
	}
	return math.Copysign(math.Pow((abs+0.055)/1.055, 2.4), c)
}

// linearToSRGB is the inverse of srgbToLinear.
func linearToSRGB(c float64) float64 {
	abs := math.Abs(c)
	if abs <= 0.0031308 {
		return c * 12.92
	}
	return math.Copysign(1.055*math.Pow(abs, 1/2.4)-0.055, c)
}

func channel(v float64) int {
	return int(Clamp(math.Round(v), 0, 255))
}

func rgbToHex(c RGB) Hex {
	var b strings.Builder
	fmt.Fprintf(&b, "#%02x%02x%02x", channel(float64(c.R)), channel(float64(c.G)), channel(float64(c.B)))
	if c.Alpha.Translucent() {
		a, _ := c.Alpha.Value()
		fmt.Fprintf(&b, "%02x", channel(a*255))
	}
	return Hex(b.String())
}

// hexToRGB expects a normalized hex string.
func hexToRGB(h Hex) RGB {
	s := string(h)
	var v [3]uint8
	for i := range v {
		v[i], _ = parseHexByte(s[1+i*2 : 3+i*2])
	}
	return RGB{R: int(v[0]), G: int(v[1]), B: int(v[2]), Alpha: h.Opacity()}
}

func rgbToHSL(c RGB) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2
	var h, s float64

	if delta != 0 {
		if l < 0.5 {
			s = delta / (maxVal + minVal)
		} else {
			s = delta / (2 - maxVal - minVal)
		}

		switch maxVal {
		case r:
			h = (g - b) / delta
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/delta + 2
		case b:
			h = (r-g)/delta + 4
		}
		h *= 60
	}

	return HSL{
		H:     NormalizeHue(Round(h, 2)),
		S:     Round(s*100, 2),
		L:     Round(l*100, 2),
		Alpha: c.Alpha,
	}
}

func hslToRGB(c HSL) RGB {
	h := NormalizeHue(c.H) / 360
	s := c.S / 100
	l := c.L / 100

	if s == 0 {
		v := channel(l * 255)
		return RGB{R: v, G: v, B: v, Alpha: c.Alpha}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R:     channel(hueToChannel(p, q, h+1.0/3) * 255),
		G:     channel(hueToChannel(p, q, h) * 255),
		B:     channel(hueToChannel(p, q, h-1.0/3) * 255),
		Alpha: c.Alpha,
	}
}

// hueToChannel evaluates one channel of the six-sector HSL formula; t is in turns.
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

func linearRGBToOkLab(lin [3]float64) [3]float64 {
	lms := mul(rgbToLMS, lin)
	for i := range lms {
		lms[i] = math.Cbrt(lms[i])
	}
	return mul(lmsToLab, lms)
}

func okLabToLinearRGB(l, a, b float64) [3]float64 {
	lms := mul(labToLMS, [3]float64{l, a, b})
	for i := range lms {
		lms[i] = lms[i] * lms[i] * lms[i]
	}
	return mul(lmsToRGB, lms)
}

func rgbToOkLab(c RGB, precision int) OkLab {
	lab := linearRGBToOkLab([3]float64{
		srgbToLinear(float64(c.R) / 255),
		srgbToLinear(float64(c.G) / 255),
		srgbToLinear(float64(c.B) / 255),
	})
	return OkLab{
		L:     Round(lab[0], precision),
		A:     Round(lab[1], precision),
		B:     Round(lab[2], precision),
		Alpha: c.Alpha,
	}
}

// okLabToRGB clips out-of-gamut values to [0,255] per channel.
func okLabToRGB(c OkLab) RGB {
	lin := okLabToLinearRGB(c.L, c.A, c.B)
	return RGB{
		R:     channel(255 * linearToSRGB(lin[0])),
		G:     channel(255 * linearToSRGB(lin[1])),
		B:     channel(255 * linearToSRGB(lin[2])),
		Alpha: c.Alpha,
	}
}

func okLabToOkLCH(c OkLab, precision int) OkLCH {
	chroma := math.Sqrt(c.A*c.A + c.B*c.B)
	hue := NormalizeHue(math.Atan2(c.B, c.A) * 180 / math.Pi)
	if Round(chroma, 4) == 0 {
		hue = 0
	}
	return OkLCH{
		L:     Round(c.L, precision),
		C:     Round(chroma, precision),
		H:     NormalizeHue(Round(hue, precision)),
		Alpha: c.Alpha,
	}
}

func okLCHToOkLab(c OkLCH, precision int) OkLab {
	h := c.H
	if math.IsNaN(h) || h < 0 {
		h = 0
	}
	rad := h * math.Pi / 180
	return OkLab{
		L:     Round(c.L, precision),
		A:     Round(c.C*math.Cos(rad), precision),
		B:     Round(c.C*math.Sin(rad), precision),
		Alpha: c.Alpha,
	}
}

// Dispatch over the model enum. Values must already be normalized.

func toRGB(v Value, precision int) RGB {
	switch c := v.(type) {
	case Hex:
		return hexToRGB(c)
	case RGB:
		return c
	case HSL:
		return hslToRGB(c)
	case OkLab:
		return okLabToRGB(c)
	case OkLCH:
		return okLabToRGB(okLCHToOkLab(c, precision))
	}
	panic(fmt.Sprintf("colour: unhandled value %T", v))
}

func toHSL(v Value, precision int) HSL {
	if c, ok := v.(HSL); ok {
		return c
	}
	return rgbToHSL(toRGB(v, precision))
}

func toOkLab(v Value, precision int) OkLab {
	switch c := v.(type) {
	case OkLab:
		return c
	case OkLCH:
		return okLCHToOkLab(c, precision)
	}
	return rgbToOkLab(toRGB(v, precision), precision)
}

func toOkLCH(v Value, precision int) OkLCH {
	if c, ok := v.(OkLCH); ok {
		return c
	}
	return okLabToOkLCH(toOkLab(v, precision), precision)
}

func convertValue(v Value, to Model, precision int) Value {
	switch to {
	case ModelHex:
		if c, ok := v.(Hex); ok {
			return c
		}
		return rgbToHex(toRGB(v, precision))
	case ModelRGB:
		return toRGB(v, precision)
	case ModelHSL:
		return toHSL(v, precision)
	case ModelOkLab:
		return toOkLab(v, precision)
	case ModelOkLCH:
		return toOkLCH(v, precision)
	}
	panic(fmt.Sprintf("colour: unhandled model %d", to))
}

// ConvertValue validates v and converts it to the target model.
func ConvertValue(v Value, to Model) (Value, error) {
	if !to.Valid() {
		return nil, newError(ErrInvalidInput, fmt.Sprintf("unknown target model %s", to))
	}
	n, err := normalizeValue(v)
	if err != nil {
		return nil, err
	}
	return convertValue(n, to, DefaultPrecision), nil
}

// Hex conversions.

// HexToRGB converts a 3, 4, 6 or 8 digit hex string to RGB.
func HexToRGB(hex string) (RGB, error) {
	h, err := hexInput(hex)
	if err != nil {
		return RGB{}, err
	}
	return hexToRGB(h), nil
}

// HexToHSL converts a hex string to HSL.
func HexToHSL(hex string) (HSL, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return HSL{}, err
	}
	return rgbToHSL(rgb), nil
}

// HexToOkLab converts a hex string to OkLab.
func HexToOkLab(hex string) (OkLab, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return OkLab{}, err
	}
	return rgbToOkLab(rgb, DefaultPrecision), nil
}

// HexToOkLCH converts a hex string to OkLCH.
func HexToOkLCH(hex string) (OkLCH, error) {
	lab, err := HexToOkLab(hex)
	if err != nil {
		return OkLCH{}, err
	}
	return okLabToOkLCH(lab, DefaultPrecision), nil
}

// RGB conversions.

// RGBToHex converts RGB to a hex string.
func RGBToHex[T RGB | Tuple](in T) (Hex, error) {
	rgb, err := rgbInput(in)
	if err != nil {
		return "", err
	}
	return rgbToHex(rgb), nil
}

// RGBToHSL converts RGB to HSL; components are rounded to 2 decimals.
func RGBToHSL[T RGB | Tuple](in T) (HSL, error) {
	rgb, err := rgbInput(in)
	if err != nil {
		return HSL{}, err
	}
	return rgbToHSL(rgb), nil
}

// RGBToOkLab converts RGB to OkLab.
func RGBToOkLab[T RGB | Tuple](in T) (OkLab, error) {
	rgb, err := rgbInput(in)
	if err != nil {
		return OkLab{}, err
	}
	return rgbToOkLab(rgb, DefaultPrecision), nil
}

// RGBToOkLCH converts RGB to OkLCH.
func RGBToOkLCH[T RGB | Tuple](in T) (OkLCH, error) {
	rgb, err := rgbInput(in)
	if err != nil {
		return OkLCH{}, err
	}
	return okLabToOkLCH(rgbToOkLab(rgb, DefaultPrecision), DefaultPrecision), nil
}

// HSL conversions.

// HSLToHex converts HSL to a hex string.
func HSLToHex[T HSL | Tuple](in T) (Hex, error) {
	hsl, err := hslInput(in)
	if err != nil {
		return "", err
	}
	return rgbToHex(hslToRGB(hsl)), nil
}

// HSLToRGB converts HSL to RGB.
func HSLToRGB[T HSL | Tuple](in T) (RGB, error) {
	hsl, err := hslInput(in)
	if err != nil {
		return RGB{}, err
	}
	return hslToRGB(hsl), nil
}

// HSLToOkLab converts HSL to OkLab.
func HSLToOkLab[T HSL | Tuple](in T) (OkLab, error) {
	hsl, err := hslInput(in)
	if err != nil {
		return OkLab{}, err
	}
	return rgbToOkLab(hslToRGB(hsl), DefaultPrecision), nil
}

// HSLToOkLCH converts HSL to OkLCH.
func HSLToOkLCH[T HSL | Tuple](in T) (OkLCH, error) {
	lab, err := HSLToOkLab(in)
	if err != nil {
		return OkLCH{}, err
	}
	return okLabToOkLCH(lab, DefaultPrecision), nil
}

// OkLab conversions.

// OkLabToHex converts OkLab to a hex string, clipping to the sRGB gamut.
func OkLabToHex[T OkLab | Tuple](in T) (Hex, error) {
	rgb, err := OkLabToRGB(in)
	if err != nil {
		return "", err
	}
	return rgbToHex(rgb), nil
}

// OkLabToRGB converts OkLab to RGB, clipping to the sRGB gamut.
func OkLabToRGB[T OkLab | Tuple](in T) (RGB, error) {
	lab, err := okLabInput(in)
	if err != nil {
		return RGB{}, err
	}
	return okLabToRGB(lab), nil
}

// OkLabToHSL converts OkLab to HSL.
func OkLabToHSL[T OkLab | Tuple](in T) (HSL, error) {
	rgb, err := OkLabToRGB(in)
	if err != nil {
		return HSL{}, err
	}
	return rgbToHSL(rgb), nil
}

// OkLabToOkLCH converts OkLab to its polar form.
func OkLabToOkLCH[T OkLab | Tuple](in T) (OkLCH, error) {
	lab, err := okLabInput(in)
	if err != nil {
		return OkLCH{}, err
	}
	return okLabToOkLCH(lab, DefaultPrecision), nil
}

// OkLCH conversions.

// OkLCHToHex converts OkLCH to a hex string, clipping to the sRGB gamut.
func OkLCHToHex[T OkLCH | Tuple](in T) (Hex, error) {
	rgb, err := OkLCHToRGB(in)
	if err != nil {
		return "", err
	}
	return rgbToHex(rgb), nil
}

// OkLCHToRGB converts OkLCH to RGB, clipping to the sRGB gamut.
func OkLCHToRGB[T OkLCH | Tuple](in T) (RGB, error) {
	lab, err := OkLCHToOkLab(in)
	if err != nil {
		return RGB{}, err
	}
	return okLabToRGB(lab), nil
}

// OkLCHToHSL converts OkLCH to HSL.
func OkLCHToHSL[T OkLCH | Tuple](in T) (HSL, error) {
	rgb, err := OkLCHToRGB(in)
	if err != nil {
		return HSL{}, err
	}
	return rgbToHSL(rgb), nil
}

// OkLCHToOkLab converts OkLCH to its Cartesian form.
func OkLCHToOkLab[T OkLCH | Tuple](in T) (OkLab, error) {
	lch, err := okLCHInput(in)
	if err != nil {
		return OkLab{}, err
	}
	return okLCHToOkLab(lch, DefaultPrecision), nil
}
