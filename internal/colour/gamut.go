package colour

import "math"

// Linear sRGB to linear Display P3.
var srgbToP3 = [3][3]float64{
	{0.8224621, 0.177538, 0.0000001},
	{0.0331941, 0.9668058, 0.0000001},
	{0.0170827, 0.0723974, 0.9105199},
}

const (
	maxSearchChroma = 0.5
	gamutTolerance  = 1e-6
	gamutEpsilon    = 1e-6
	// Below this lightness the lower tolerance shrinks with l³, the scale of the
	// linear channels, so near-black chroma cannot hide inside the epsilon.
	gamutBlackLightness = 0.1
)

// inP3Gamut reports whether an OkLab colour maps inside Display P3.
func inP3Gamut(l, a, b float64) bool {
	low := gamutEpsilon * math.Min(1, math.Pow(l/gamutBlackLightness, 3))
	p3 := mul(srgbToP3, okLabToLinearRGB(l, a, b))
	for _, v := range p3 {
		if v < -low || v > 1+gamutEpsilon {
			return false
		}
	}
	return true
}

// MaxChromaInGamut returns the largest OkLCH chroma at lch's lightness and hue that
// stays inside Display P3, rounded to precision (zero means DefaultPrecision).
// lch.C is ignored.
func MaxChromaInGamut(lch OkLCH, precision int) (float64, error) {
	if precision > MaxPrecision {
		return 0, precisionError(precision)
	}
	if precision <= 0 {
		precision = DefaultPrecision
	}
	if math.IsNaN(lch.L) || lch.L < 0 || lch.L > 1 {
		return 0, rangeError("lightness", lch.L, "within [0, 1]")
	}
	if math.IsNaN(lch.H) || lch.H < 0 || lch.H > 360 {
		return 0, rangeError("hue", lch.H, "within [0, 360]")
	}

	sin, cos := sincosDegrees(lch.H)
	low, high := 0.0, maxSearchChroma
	for high-low > gamutTolerance {
		mid := (low + high) / 2
		if inP3Gamut(lch.L, mid*cos, mid*sin) {
			low = mid
		} else {
			high = mid
		}
	}
	return Round(low, precision), nil
}
