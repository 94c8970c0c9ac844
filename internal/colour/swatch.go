package colour

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// SwatchScale selects how a swatch spreads lightness.
type SwatchScale string

const (
	// SwatchDynamic anchors the seed at token 500 and curves each side toward the bounds.
	SwatchDynamic SwatchScale = "dynamic"
	// SwatchLinear spaces lightness evenly between the bounds, ignoring the seed's lightness.
	SwatchLinear SwatchScale = "linear"
)

// SwatchKey is the token at which a dynamic swatch reproduces its seed.
const SwatchKey = 500

// SwatchOptions configures BuildSwatch. Start from DefaultSwatchOptions.
type SwatchOptions struct {
	Scale        SwatchScale
	Variant      Variant
	MinLightness float64
	MaxLightness float64
	// Format is the output model name; empty means the seed's own model.
	Format    string
	Precision int
	Logger    hclog.Logger
}

// DefaultSwatchOptions returns the documented defaults.
func DefaultSwatchOptions() SwatchOptions {
	return SwatchOptions{
		Scale:        SwatchDynamic,
		Variant:      VariantBase,
		MinLightness: 0.2,
		MaxLightness: 0.97,
	}
}

// BuildSwatch returns the eleven design tokens 50 … 950 for seed.
func BuildSwatch(seed string, opts SwatchOptions) (Shades, error) {
	so := ScaleOptions{
		Steps:          11,
		MinLightness:   opts.MinLightness,
		MaxLightness:   opts.MaxLightness,
		LightnessCurve: 1,
		Mode:           ModeLight,
		Variant:        opts.Variant,
		Format:         opts.Format,
		Precision:      opts.Precision,
		Logger:         opts.Logger,
	}

	switch opts.Scale {
	case SwatchDynamic, "":
		so.Lock = SwatchKey
	case SwatchLinear:
	default:
		return nil, newError(ErrInvalidInput, fmt.Sprintf("unknown swatch scale %q (valid: dynamic, linear)", opts.Scale))
	}
	return BuildScale(seed, so)
}
