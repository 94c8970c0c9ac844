package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newConvertCmd(opts *options) *cobra.Command {
	var (
		to        string
		precision int
		separator string
	)

	cmd := &cobra.Command{
		Use:   "convert <colour>...",
		Short: "Convert colours to another model",
		Long: `Convert one or more CSS colours to hex, rgb, hsl, oklab or oklch.

Examples:
  # Convert a hex colour to oklch
  tonal convert '#ff0044' --to oklch

  # Legacy comma separated rgb
  tonal convert 'oklch(63% 0.26 20)' --to rgb --separator ', '

  # Named colours work too
  tonal convert cornflowerblue --to hsl`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := parseTarget(opts.format(cmd, "to", to))
			if err != nil {
				return err
			}
			fopts := colour.FormatOptions{
				Model:     target,
				Precision: opts.precision(cmd, precision),
				Separator: separator,
			}
			for _, arg := range args {
				out, err := colour.ConvertWith(arg, fopts)
				if err != nil {
					return fmt.Errorf("failed to convert %s: %w", arg, err)
				}
				if err := opts.printColour(cmd, out); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&to, "to", "t", "", "target model (hex, rgb, hsl, oklab, oklch)")
	cmd.Flags().IntVarP(&precision, "precision", "p", colour.DefaultPrecision, "decimal places for fractional components")
	cmd.Flags().StringVar(&separator, "separator", "", "component separator for rgb and hsl (default: space)")
	return cmd
}

// parseTarget resolves a model name, defaulting to hex when none is set.
func parseTarget(name string) (colour.Model, error) {
	if name == "" {
		return colour.ModelHex, nil
	}
	m, err := colour.ParseModel(name)
	if err != nil {
		return 0, fmt.Errorf("invalid format: %w", err)
	}
	return m, nil
}

// parsed is the report printed by the parse command.
type parsed struct {
	Model      string    `json:"model"`
	Components []float64 `json:"components,omitempty"`
	Alpha      *float64  `json:"alpha,omitempty"`
	CSS        string    `json:"css"`
}

func newParseCmd(opts *options) *cobra.Command {
	var (
		as        string
		asJSON    bool
		precision int
	)

	cmd := &cobra.Command{
		Use:   "parse <colour>",
		Short: "Parse a colour and show its components",
		Long: `Parse any supported CSS colour and print the model it was written in,
its components, its alpha and its canonical CSS form.

Examples:
  tonal parse 'hsl(120deg 50% 50% / 0.5)'
  tonal parse teal --as oklch --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				v   colour.Value
				err error
			)
			if as != "" {
				target, perr := colour.ParseModel(as)
				if perr != nil {
					return fmt.Errorf("invalid model: %w", perr)
				}
				v, err = colour.ParseAs(args[0], target)
			} else {
				v, err = colour.Parse(args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}

			report, err := describe(v, opts.precision(cmd, precision))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			t := NewTable("FIELD", "VALUE")
			t.AddRow("model", report.Model)
			if report.Components != nil {
				t.AddRow("components", strings.Join(lo.Map(report.Components, func(c float64, _ int) string {
					return fmt.Sprintf("%g", c)
				}), " "))
			}
			if report.Alpha != nil {
				t.AddRow("alpha", fmt.Sprintf("%g", *report.Alpha))
			}
			t.AddRow("css", report.CSS)
			_, err = fmt.Fprint(out, t.Render())
			return err
		},
	}

	cmd.Flags().StringVar(&as, "as", "", "convert to this model after parsing")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.Flags().IntVarP(&precision, "precision", "p", colour.DefaultPrecision, "decimal places for fractional components")
	return cmd
}

func describe(v colour.Value, precision int) (parsed, error) {
	css, err := colour.Format(v, colour.FormatOptions{Model: v.Model(), Precision: precision})
	if err != nil {
		return parsed{}, err
	}
	p := parsed{Model: v.Model().String(), CSS: css}

	var tuple colour.Tuple
	switch c := v.(type) {
	case colour.RGB:
		tuple = c.Tuple()
	case colour.HSL:
		tuple = c.Tuple()
	case colour.OkLab:
		tuple = c.Tuple()
	case colour.OkLCH:
		tuple = c.Tuple()
	}
	if v.Model() != colour.ModelHex {
		p.Components = lo.Map(tuple[:], func(c float64, _ int) float64 { return colour.Round(c, precision) })
	}
	if a, ok := v.Opacity().Value(); ok {
		p.Alpha = &a
	}
	return p, nil
}
