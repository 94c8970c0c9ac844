package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/export"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// exportFlags are shared by the scale and swatch commands.
type exportFlags struct {
	format string
	name   string
}

func (e *exportFlags) register(cmd *cobra.Command) {
	formats := lo.Map(export.Formats(), func(f export.Format, _ int) string { return string(f) })
	cmd.Flags().StringVarP(&e.format, "export", "e", "", "export as "+strings.Join(formats, ", ")+" instead of a table")
	cmd.Flags().StringVarP(&e.name, "name", "n", export.DefaultName, "colour name used in exported variables")
}

// printShades writes shades as an export document or as a KEY/COLOUR table.
func (o *options) printShades(cmd *cobra.Command, shades colour.Shades, e exportFlags) error {
	out := cmd.OutOrStdout()
	if e.format != "" {
		format, err := export.ParseFormat(e.format)
		if err != nil {
			return err
		}
		doc, err := export.Render(e.name, shades, format)
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}
		_, err = out.Write(doc)
		return err
	}

	preview := o.preview(cmd)
	headers := []string{"KEY", "COLOUR"}
	if preview {
		headers = append(headers, "PREVIEW")
	}
	t := NewTable(headers...)
	for _, sh := range shades {
		key := strconv.Itoa(sh.Key)
		if !preview {
			t.AddRow(key, sh.Color)
			continue
		}
		block, err := colour.ColourPreviewWithText(sh.Color, key, previewWidth)
		if err != nil {
			return err
		}
		t.AddRow(key, sh.Color, block)
	}
	_, err := fmt.Fprint(out, t.Render())
	return err
}

func newScaleCmd(opts *options) *cobra.Command {
	var (
		scale     = colour.DefaultScaleOptions()
		mode      string
		variant   string
		exporting exportFlags
	)

	cmd := &cobra.Command{
		Use:   "scale <seed>",
		Short: "Generate a tonal scale from a seed colour",
		Long: `Generate a perceptual tonal scale from a seed colour in OkLCH.

Lightness runs between --min-lightness and --max-lightness following
--lightness-curve. Chroma follows the seed scaled by --variant (or set to a
percentage of the Display P3 maximum with --saturation) and is capped to the
P3 gamut at every step. --lock keeps the seed unchanged at a step key.

Eleven steps use the design token keys 50, 100 ... 900, 950; any other count
uses 100, 200 ... steps*100.

Examples:
  # Eleven step scale with the seed at 500
  tonal scale '#224e2e' --lock 500

  # Dark mode, five steps, as oklch
  tonal scale '#ff0044' --steps 5 --mode dark --format oklch

  # Export as CSS custom properties
  tonal scale '#224e2e' --export css --name forest`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			so := opts.cfg.ScaleOptions()
			flags := cmd.Flags()
			if flags.Changed("steps") {
				so.Steps = scale.Steps
			}
			if flags.Changed("mode") {
				so.Mode = colour.Mode(strings.ToLower(mode))
			}
			if flags.Changed("variant") {
				so.Variant = colour.Variant(strings.ToLower(variant))
			}
			if flags.Changed("min-lightness") {
				so.MinLightness = scale.MinLightness
			}
			if flags.Changed("max-lightness") {
				so.MaxLightness = scale.MaxLightness
			}
			if flags.Changed("lightness-curve") {
				so.LightnessCurve = scale.LightnessCurve
			}
			if flags.Changed("chroma-curve") {
				so.ChromaCurve = scale.ChromaCurve
			}
			so.Saturation = scale.Saturation
			so.Lock = scale.Lock
			so.Format = opts.format(cmd, "format", scale.Format)
			so.Precision = opts.precision(cmd, scale.Precision)
			so.Logger = opts.logger

			opts.logger.Debug("building scale", "seed", args[0], "steps", so.Steps, "mode", so.Mode,
				"variant", so.Variant, "lock", so.Lock)
			shades, err := colour.BuildScale(args[0], so)
			if err != nil {
				return fmt.Errorf("failed to build scale: %w", err)
			}
			return opts.printShades(cmd, shades, exporting)
		},
	}

	variants := lo.Map(colour.Variants(), func(v colour.Variant, _ int) string { return string(v) })
	cmd.Flags().IntVarP(&scale.Steps, "steps", "s", scale.Steps, fmt.Sprintf("number of steps (%d-%d)", colour.MinSteps, colour.MaxSteps))
	cmd.Flags().IntVarP(&scale.Lock, "lock", "l", 0, "step key that reproduces the seed exactly")
	cmd.Flags().StringVarP(&mode, "mode", "m", string(scale.Mode), "light or dark")
	cmd.Flags().StringVar(&variant, "variant", string(scale.Variant), "chroma preset ("+strings.Join(variants, ", ")+")")
	cmd.Flags().Float64Var(&scale.Saturation, "saturation", 0, "chroma as a percentage of the P3 maximum (overrides --variant)")
	cmd.Flags().Float64Var(&scale.MinLightness, "min-lightness", scale.MinLightness, "lightness of the darkest step (0-1)")
	cmd.Flags().Float64Var(&scale.MaxLightness, "max-lightness", scale.MaxLightness, "lightness of the lightest step (0-1)")
	cmd.Flags().Float64Var(&scale.LightnessCurve, "lightness-curve", scale.LightnessCurve, "exponent applied to the step position")
	cmd.Flags().Float64Var(&scale.ChromaCurve, "chroma-curve", scale.ChromaCurve, "0 keeps chroma constant, 1 tapers it toward the ends")
	cmd.Flags().StringVarP(&scale.Format, "format", "f", "", "output model (default: the seed's model)")
	cmd.Flags().IntVarP(&scale.Precision, "precision", "p", colour.DefaultPrecision, "decimal places for fractional components")
	exporting.register(cmd)
	return cmd
}

func newSwatchCmd(opts *options) *cobra.Command {
	var (
		swatch    = colour.DefaultSwatchOptions()
		kind      string
		variant   string
		exporting exportFlags
	)

	cmd := &cobra.Command{
		Use:   "swatch <seed>",
		Short: "Generate design tokens 50 to 950 from a seed colour",
		Long: `Generate the eleven design tokens 50, 100 ... 900, 950 from a seed colour.

The dynamic scale keeps the seed at 500 and curves each side toward the
lightness bounds; the linear scale spaces lightness evenly and ignores the
seed's own lightness.

Examples:
  tonal swatch '#224e2e'
  tonal swatch '#224e2e' --scale linear --export tailwind --name forest`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			so := swatch
			so.Scale = colour.SwatchScale(strings.ToLower(kind))
			so.Variant = colour.Variant(opts.cfg.Scale.Variant)
			if cmd.Flags().Changed("variant") {
				so.Variant = colour.Variant(strings.ToLower(variant))
			}
			so.Format = opts.format(cmd, "format", swatch.Format)
			so.Precision = opts.precision(cmd, swatch.Precision)
			so.Logger = opts.logger

			shades, err := colour.BuildSwatch(args[0], so)
			if err != nil {
				return fmt.Errorf("failed to build swatch: %w", err)
			}
			return opts.printShades(cmd, shades, exporting)
		},
	}

	cmd.Flags().StringVar(&kind, "scale", string(swatch.Scale), "dynamic or linear")
	cmd.Flags().StringVar(&variant, "variant", string(swatch.Variant), "chroma preset")
	cmd.Flags().Float64Var(&swatch.MinLightness, "min-lightness", swatch.MinLightness, "lightness of token 950 (0-1)")
	cmd.Flags().Float64Var(&swatch.MaxLightness, "max-lightness", swatch.MaxLightness, "lightness of token 50 (0-1)")
	cmd.Flags().StringVarP(&swatch.Format, "format", "f", "", "output model (default: the seed's model)")
	cmd.Flags().IntVarP(&swatch.Precision, "precision", "p", colour.DefaultPrecision, "decimal places for fractional components")
	exporting.register(cmd)
	return cmd
}

func newGamutCmd(opts *options) *cobra.Command {
	var precision int

	cmd := &cobra.Command{
		Use:   "gamut <lightness> <hue>",
		Short: "Print the maximum Display P3 chroma at a lightness and hue",
		Long: `Print the largest OkLCH chroma that stays inside the Display P3 gamut
for an OkLCH lightness in [0, 1] and a hue in degrees.

Example:
  tonal gamut 0.5 0 --precision 3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid lightness %q: %w", args[0], err)
			}
			h, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid hue %q: %w", args[1], err)
			}
			c, err := colour.MaxChromaInGamut(colour.OkLCH{L: l, H: h}, opts.precision(cmd, precision))
			if err != nil {
				return fmt.Errorf("failed to solve gamut: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(c, 'f', -1, 64))
			return err
		},
	}

	cmd.Flags().IntVarP(&precision, "precision", "p", colour.DefaultPrecision, "decimal places")
	return cmd
}
