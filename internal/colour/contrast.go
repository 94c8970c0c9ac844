package colour

import (
	"fmt"
	"math"
)

// WCAG 2.x thresholds.
const (
	ContrastAA       = 4.5
	ContrastAALarge  = 3.0
	ContrastAAA      = 7.0
	ContrastAAALarge = 4.5

	minBrightnessDifference = 125
	minColourDifference     = 500
)

// Luminance returns the WCAG 2.0 relative luminance of a colour, from 0 (darkest) to 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(text string) (float64, error) {
	rgb, err := parseRGB(text)
	if err != nil {
		return 0, err
	}
	return Round(relativeLuminance(rgb), 4), nil
}

func relativeLuminance(c RGB) float64 {
	r := gammaCorrect(float64(c.R) / 255)
	g := gammaCorrect(float64(c.G) / 255)
	b := gammaCorrect(float64(c.B) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect uses the WCAG threshold of 0.03928.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between two colours, from 1 to 21.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(a, b string) (float64, error) {
	ca, err := parseRGB(a)
	if err != nil {
		return 0, err
	}
	cb, err := parseRGB(b)
	if err != nil {
		return 0, err
	}
	return Round(contrastRatio(ca, cb), 2), nil
}

func contrastRatio(a, b RGB) float64 {
	l1 := relativeLuminance(a)
	l2 := relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// Brightness returns the YIQ perceived brightness in [0,255].
func Brightness(text string) (float64, error) {
	rgb, err := parseRGB(text)
	if err != nil {
		return 0, err
	}
	return Round(yiq(rgb), 2), nil
}

func yiq(c RGB) float64 {
	return (float64(c.R)*299 + float64(c.G)*587 + float64(c.B)*114) / 1000
}

// HueDistance returns the angular distance between two hues, from 0 to 180 degrees.
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(NormalizeHue(h1) - NormalizeHue(h2))
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// Analysis summarizes how two colours work together as text and background.
type Analysis struct {
	BrightnessDifference float64 `json:"brightnessDifference"`
	ColourDifference     int     `json:"colourDifference"`
	Contrast             float64 `json:"contrast"`
	APCA                 float64 `json:"apca"`
	HueDistance          float64 `json:"hueDistance"`
	Compliant            int     `json:"compliant"`
	NormalAA             bool    `json:"normalAA"`
	NormalAAA            bool    `json:"normalAAA"`
	LargeAA              bool    `json:"largeAA"`
	LargeAAA             bool    `json:"largeAAA"`
}

// Compare analyses foreground text on a background.
// Compliant counts how many of brightness difference, colour difference and contrast pass.
func Compare(foreground, background string) (Analysis, error) {
	fg, err := parseRGB(foreground)
	if err != nil {
		return Analysis{}, err
	}
	bg, err := parseRGB(background)
	if err != nil {
		return Analysis{}, err
	}

	ratio := Round(contrastRatio(fg, bg), 2)
	a := Analysis{
		BrightnessDifference: Round(math.Abs(yiq(fg)-yiq(bg)), 2),
		ColourDifference:     absInt(fg.R-bg.R) + absInt(fg.G-bg.G) + absInt(fg.B-bg.B),
		Contrast:             ratio,
		APCA:                 Round(apca(fg, bg), 2),
		HueDistance:          HueDistance(rgbToHSL(fg).H, rgbToHSL(bg).H),
		NormalAA:             ratio >= ContrastAA,
		NormalAAA:            ratio >= ContrastAAA,
		LargeAA:              ratio >= ContrastAALarge,
		LargeAAA:             ratio >= ContrastAAALarge,
	}
	if a.BrightnessDifference >= minBrightnessDifference {
		a.Compliant++
	}
	if a.ColourDifference >= minColourDifference {
		a.Compliant++
	}
	if a.NormalAA {
		a.Compliant++
	}
	return a, nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// APCAContrast returns the APCA-W3 (0.0.98G) lightness contrast Lc of text on a background.
// Positive values are dark text on light, negative values light text on dark.
func APCAContrast(text, background string) (float64, error) {
	fg, err := parseRGB(text)
	if err != nil {
		return 0, err
	}
	bg, err := parseRGB(background)
	if err != nil {
		return 0, err
	}
	return Round(apca(fg, bg), 2), nil
}

// APCA 0.0.98G constants.
const (
	apcaBlackThreshold = 0.022
	apcaBlackClamp     = 1.414
	apcaDeltaYMin      = 0.0005
	apcaNormBG         = 0.56
	apcaNormText       = 0.57
	apcaRevText        = 0.62
	apcaRevBG          = 0.65
	apcaScale          = 1.14
	apcaOffset         = 0.027
	apcaLowClip        = 0.1
)

func apcaY(c RGB) float64 {
	y := 0.2126729*math.Pow(float64(c.R)/255, 2.4) +
		0.7151522*math.Pow(float64(c.G)/255, 2.4) +
		0.0721750*math.Pow(float64(c.B)/255, 2.4)
	if y < apcaBlackThreshold {
		y += math.Pow(apcaBlackThreshold-y, apcaBlackClamp)
	}
	return y
}

func apca(text, background RGB) float64 {
	yt := apcaY(text)
	yb := apcaY(background)
	if math.Abs(yb-yt) < apcaDeltaYMin {
		return 0
	}

	var out float64
	if yb > yt {
		s := (math.Pow(yb, apcaNormBG) - math.Pow(yt, apcaNormText)) * apcaScale
		if s >= apcaLowClip {
			out = s - apcaOffset
		}
	} else {
		s := (math.Pow(yb, apcaRevBG) - math.Pow(yt, apcaRevText)) * apcaScale
		if s <= -apcaLowClip {
			out = s + apcaOffset
		}
	}
	return out * 100
}

// ReadableMethod picks how ReadableColor decides between dark and light text.
type ReadableMethod string

const (
	// ReadableContrast picks whichever candidate has the higher WCAG contrast.
	ReadableContrast ReadableMethod = "contrast"
	// ReadableYIQ picks dark text when the background's YIQ brightness reaches Threshold.
	ReadableYIQ ReadableMethod = "yiq"
)

// ReadableOptions configures ReadableColor. Zero fields take the defaults
// #000000, #ffffff, ReadableContrast and a YIQ threshold of 128.
type ReadableOptions struct {
	Dark      string
	Light     string
	Method    ReadableMethod
	Threshold float64
}

// ReadableColor returns the dark or light text colour that reads best on background.
func ReadableColor(background string, opts ReadableOptions) (string, error) {
	if opts.Dark == "" {
		opts.Dark = "#000000"
	}
	if opts.Light == "" {
		opts.Light = "#ffffff"
	}
	if opts.Threshold == 0 {
		opts.Threshold = 128
	}

	bg, err := parseRGB(background)
	if err != nil {
		return "", err
	}

	switch opts.Method {
	case ReadableYIQ:
		if yiq(bg) >= opts.Threshold {
			return opts.Dark, nil
		}
		return opts.Light, nil
	case ReadableContrast, "":
		dark, err := parseRGB(opts.Dark)
		if err != nil {
			return "", err
		}
		light, err := parseRGB(opts.Light)
		if err != nil {
			return "", err
		}
		if contrastRatio(dark, bg) >= contrastRatio(light, bg) {
			return opts.Dark, nil
		}
		return opts.Light, nil
	}
	return "", newError(ErrInvalidInput, fmt.Sprintf("unknown readable method %q (valid: contrast, yiq)", opts.Method))
}

func parseRGB(text string) (RGB, error) {
	v, err := parse(text, DefaultPrecision)
	if err != nil {
		return RGB{}, err
	}
	return toRGB(v, DefaultPrecision), nil
}
