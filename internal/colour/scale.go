package colour

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-hclog"
	"github.com/samber/lo"
)

// Mode selects the direction of a scale.
type Mode string

const (
	// ModeLight puts the lightest shade at the first key.
	ModeLight Mode = "light"
	// ModeDark puts the darkest shade at the first key.
	ModeDark Mode = "dark"
)

// Variant is a chroma multiplier preset.
type Variant string

// Variant presets.
const (
	VariantBase    Variant = "base"
	VariantDeep    Variant = "deep"
	VariantNeutral Variant = "neutral"
	VariantPastel  Variant = "pastel"
	VariantSubtle  Variant = "subtle"
	VariantVibrant Variant = "vibrant"
)

var variantChroma = map[Variant]float64{
	VariantBase:    1,
	VariantDeep:    1.2,
	VariantNeutral: 0.08,
	VariantPastel:  0.5,
	VariantSubtle:  0.25,
	VariantVibrant: 1.35,
}

// Variants returns the variant presets in a stable order.
func Variants() []Variant {
	return []Variant{VariantBase, VariantDeep, VariantNeutral, VariantPastel, VariantSubtle, VariantVibrant}
}

// Scale bounds.
const (
	MinSteps = 3
	MaxSteps = 20
)

// ScaleOptions configures BuildScale. Start from DefaultScaleOptions.
type ScaleOptions struct {
	// Steps is clamped to [MinSteps, MaxSteps].
	Steps int
	// MinLightness and MaxLightness bound the OkLCH lightness of the ramp.
	MinLightness float64
	MaxLightness float64
	// LightnessCurve is the exponent applied to the step position; 1 is linear.
	LightnessCurve float64
	// ChromaCurve blends constant chroma (0) with a 4·l·(1-l) taper (1).
	ChromaCurve float64
	Mode        Mode
	Variant     Variant
	// Saturation, when non-zero, sets the base chroma to this percentage of the
	// maximum Display P3 chroma at the seed's lightness and hue. It overrides Variant.
	Saturation float64
	// Lock, when non-zero, is the step key at which the seed is reproduced exactly.
	Lock int
	// Format is the output model name; empty means the seed's own model.
	Format string
	// Precision of the formatted output; zero means DefaultPrecision.
	Precision int
	// Logger receives diagnostics such as an ignored lock. Nil discards them.
	Logger hclog.Logger
}

// DefaultScaleOptions returns the documented defaults.
func DefaultScaleOptions() ScaleOptions {
	return ScaleOptions{
		Steps:          11,
		MinLightness:   0.2,
		MaxLightness:   0.97,
		LightnessCurve: 1.5,
		ChromaCurve:    0,
		Mode:           ModeLight,
		Variant:        VariantBase,
	}
}

// Shade is one keyed entry of a scale or swatch.
type Shade struct {
	Key   int    `json:"key"`
	Color string `json:"color"`
}

// Shades is an ordered set of shades.
type Shades []Shade

// Get returns the colour at key.
func (s Shades) Get(key int) (string, bool) {
	sh, ok := lo.Find(s, func(sh Shade) bool { return sh.Key == key })
	return sh.Color, ok
}

// Keys returns the keys in order.
func (s Shades) Keys() []int {
	return lo.Map(s, func(sh Shade, _ int) int { return sh.Key })
}

// Map returns the shades keyed by step.
func (s Shades) Map() map[int]string {
	return lo.SliceToMap(s, func(sh Shade) (int, string) { return sh.Key, sh.Color })
}

// StepKeys returns the keys for a scale of the given size: 50, 100 … 900, 950 for
// eleven steps, otherwise 100, 200 … steps*100.
func StepKeys(steps int) []int {
	steps = clampSteps(steps)
	if steps == 11 {
		return []int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}
	}
	return lo.Times(steps, func(i int) int { return (i + 1) * 100 })
}

func clampSteps(steps int) int {
	return lo.Clamp(steps, MinSteps, MaxSteps)
}

func (o ScaleOptions) validate() error {
	if o.MaxLightness <= o.MinLightness {
		return rangeError("maxLightness", o.MaxLightness, fmt.Sprintf("greater than minLightness (%g)", o.MinLightness))
	}
	if o.MinLightness < 0 || o.MinLightness > 1 {
		return rangeError("minLightness", o.MinLightness, "within [0, 1]")
	}
	if o.MaxLightness < 0 || o.MaxLightness > 1 {
		return rangeError("maxLightness", o.MaxLightness, "within [0, 1]")
	}
	if o.LightnessCurve <= 0 {
		return rangeError("lightnessCurve", o.LightnessCurve, "greater than 0")
	}
	if o.ChromaCurve < 0 || o.ChromaCurve > 1 {
		return rangeError("chromaCurve", o.ChromaCurve, "within [0, 1]")
	}
	if o.Saturation < 0 || o.Saturation > 100 {
		return rangeError("saturation", o.Saturation, "within [0, 100]")
	}
	if o.Precision > MaxPrecision {
		return precisionError(o.Precision)
	}
	if o.Mode != ModeLight && o.Mode != ModeDark {
		return newError(ErrInvalidInput, fmt.Sprintf("unknown mode %q (valid: light, dark)", o.Mode))
	}
	if _, ok := variantChroma[o.variant()]; !ok {
		return newError(ErrInvalidInput, fmt.Sprintf("unknown variant %q", o.Variant))
	}
	return nil
}

func (o ScaleOptions) variant() Variant {
	if o.Variant == "" {
		return VariantBase
	}
	return o.Variant
}

func (o ScaleOptions) logger() hclog.Logger {
	if o.Logger == nil {
		return hclog.NewNullLogger()
	}
	return o.Logger
}

// outputModel resolves the requested format, falling back to the seed's model.
func outputModel(format string, seed Value) (Model, error) {
	if format == "" {
		return seed.Model(), nil
	}
	return ParseModel(format)
}

// BuildScale derives a tonal ramp from seed.
//
// Lightness follows (i/(n-1))^LightnessCurve between the bounds. With a Lock the
// seed sits at that key and each side is its own curve toward the bound. Options
// are validated before anything is generated; an unknown Lock key is logged and ignored.
func BuildScale(seed string, opts ScaleOptions) (Shades, error) {
	if opts.Mode == "" {
		opts.Mode = ModeLight
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	precision := opts.Precision
	if precision <= 0 {
		precision = DefaultPrecision
	}

	seedValue, err := parse(seed, precision)
	if err != nil {
		return nil, err
	}
	model, err := outputModel(opts.Format, seedValue)
	if err != nil {
		return nil, err
	}
	lch := toOkLCH(seedValue, precision)

	keys := StepKeys(opts.Steps)
	lock := -1
	if opts.Lock != 0 {
		lock = lo.IndexOf(keys, opts.Lock)
		if lock < 0 {
			opts.logger().Warn("ignoring lock: not a step key", "lock", opts.Lock, "keys", keys)
		}
	}

	lightness := lightnessRamp(len(keys), opts, lock, lch.L)

	baseChroma := lch.C * variantChroma[opts.variant()]
	if opts.Saturation > 0 {
		maxChroma, err := MaxChromaInGamut(OkLCH{L: lch.L, H: lch.H}, precision)
		if err != nil {
			return nil, err
		}
		baseChroma = maxChroma * opts.Saturation / 100
	}

	fopts := FormatOptions{Model: model, Precision: precision}
	shades := make(Shades, len(keys))
	for i, key := range keys {
		var text string
		if i == lock {
			text, err = Format(seedValue, fopts)
		} else {
			text, err = Format(shadeAt(lightness[i], baseChroma, lch, opts.ChromaCurve, precision), fopts)
		}
		if err != nil {
			return nil, err
		}
		shades[i] = Shade{Key: key, Color: text}
	}
	return shades, nil
}

// shadeAt builds the OkLCH value of one step, capping chroma to Display P3.
func shadeAt(l, baseChroma float64, seed OkLCH, chromaCurve float64, precision int) OkLCH {
	c := baseChroma * ((1 - chromaCurve) + chromaCurve*4*l*(1-l))
	if maxChroma, err := MaxChromaInGamut(OkLCH{L: l, H: seed.H}, precision); err == nil && c > maxChroma {
		c = maxChroma
	}
	return OkLCH{
		L:     Round(l, precision),
		C:     Round(c, precision),
		H:     seed.H,
		Alpha: seed.Alpha,
	}
}

// lightnessRamp assigns a lightness to each of n steps.
func lightnessRamp(n int, opts ScaleOptions, lock int, lockLightness float64) []float64 {
	start, end := opts.MaxLightness, opts.MinLightness
	if opts.Mode == ModeDark {
		start, end = end, start
	}
	curve := func(i, span int) float64 {
		return math.Pow(float64(i)/float64(span), opts.LightnessCurve)
	}

	out := make([]float64, n)
	if lock < 0 {
		for i := range out {
			out[i] = Lerp(start, end, curve(i, n-1))
		}
		return out
	}

	out[lock] = lockLightness
	for i := 0; i < lock; i++ {
		out[i] = Lerp(start, lockLightness, curve(i, lock))
	}
	for i := lock + 1; i < n; i++ {
		out[i] = Lerp(lockLightness, end, curve(i-lock, n-1-lock))
	}
	return out
}
