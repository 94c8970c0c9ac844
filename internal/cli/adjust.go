package cli

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newAdjustCmd(opts *options) *cobra.Command {
	var adjust colour.AdjustOptions

	cmd := &cobra.Command{
		Use:   "adjust <colour>",
		Short: "Adjust hue, saturation, lightness or alpha",
		Long: `Adjust a colour in HSL space with amount expressions.

A bare expression adds to the current value ("10", "2*5"), a leading operator
applies to it ("+10", "-5", "*1.2", "/2") and "=" sets it ("=50").
Hue wraps around 360, saturation and lightness clamp to 0-100 and alpha to 0-1.

Examples:
  tonal adjust '#ff0044' --lightness 10
  tonal adjust 'hsl(200 50% 50%)' --hue '=20' --alpha '=0.5'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := adjust
			a.Format = opts.format(cmd, "format", adjust.Format)
			out, err := colour.Adjust(args[0], a)
			if err != nil {
				return fmt.Errorf("failed to adjust %s: %w", args[0], err)
			}
			return opts.printColour(cmd, out)
		},
	}

	cmd.Flags().StringVar(&adjust.Lightness, "lightness", "", "lightness expression (percentage points)")
	cmd.Flags().StringVar(&adjust.Saturation, "saturation", "", "saturation expression (percentage points)")
	cmd.Flags().StringVar(&adjust.Hue, "hue", "", "hue expression (degrees)")
	cmd.Flags().StringVar(&adjust.Alpha, "alpha", "", "alpha expression (0-1)")
	cmd.Flags().StringVarP(&adjust.Format, "format", "f", "", "output model (default: the input's model)")
	return cmd
}

func newMixCmd(opts *options) *cobra.Command {
	var ratio float64

	cmd := &cobra.Command{
		Use:   "mix <a> <b>",
		Short: "Mix two colours in OkLab",
		Long: `Interpolate from the first colour toward the second in OkLab.
A ratio of 0 returns the first colour and 1 the second. The result is written
in the first colour's model.

Example:
  tonal mix black white --ratio 0.5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := colour.Mix(args[0], args[1], ratio)
			if err != nil {
				return fmt.Errorf("failed to mix colours: %w", err)
			}
			return opts.printColour(cmd, out)
		},
	}

	cmd.Flags().Float64VarP(&ratio, "ratio", "r", 0.5, "amount of the second colour (0-1)")
	return cmd
}

func newHarmonyCmd(opts *options) *cobra.Command {
	var kind string

	names := lo.Map(colour.Harmonies(), func(h colour.Harmony, _ int) string { return string(h) })
	cmd := &cobra.Command{
		Use:   "harmony <seed>",
		Short: "Rotate a seed's hue into a colour harmony",
		Long: `Rotate the OkLCH hue of a seed colour into a harmony. The seed is
always printed first.

Kinds: ` + strings.Join(names, ", ") + `

Example:
  tonal harmony '#ff0044' --kind triadic`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			palette, err := colour.Palette(args[0], colour.Harmony(kind))
			if err != nil {
				return fmt.Errorf("failed to build harmony: %w", err)
			}
			for _, c := range palette {
				if err := opts.printColour(cmd, c); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", string(colour.HarmonyComplementary), "harmony kind")
	return cmd
}
