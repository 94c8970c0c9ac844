package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/spf13/cobra"
)

// contrastReport is the JSON form of the contrast command.
type contrastReport struct {
	Foreground string          `json:"foreground"`
	Background string          `json:"background"`
	Analysis   colour.Analysis `json:"analysis"`
	Readable   string          `json:"readable"`
}

func newContrastCmd(opts *options) *cobra.Command {
	var (
		asJSON bool
		method string
	)

	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Report WCAG and APCA contrast between two colours",
		Long: `Report how well foreground text reads on a background: the WCAG 2.x
contrast ratio and pass levels, the APCA lightness contrast, the brightness
and colour differences, and the text colour that reads best on the background.

Examples:
  tonal contrast '#333' '#fafafa'
  tonal contrast white '#224e2e' --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, bg := args[0], args[1]
			a, err := colour.Compare(fg, bg)
			if err != nil {
				return fmt.Errorf("failed to compare colours: %w", err)
			}
			readable, err := colour.ReadableColor(bg, colour.ReadableOptions{Method: colour.ReadableMethod(method)})
			if err != nil {
				return fmt.Errorf("failed to pick a text colour: %w", err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(contrastReport{Foreground: fg, Background: bg, Analysis: a, Readable: readable})
			}

			t := NewTable("METRIC", "VALUE")
			t.AddRow("contrast", fmt.Sprintf("%g:1", a.Contrast))
			t.AddRow("apca", fmt.Sprintf("Lc %g", a.APCA))
			t.AddRow("brightness difference", fmt.Sprintf("%g", a.BrightnessDifference))
			t.AddRow("colour difference", strconv.Itoa(a.ColourDifference))
			t.AddRow("hue distance", fmt.Sprintf("%g", a.HueDistance))
			t.AddRow("normal text", level(a.NormalAA, a.NormalAAA))
			t.AddRow("large text", level(a.LargeAA, a.LargeAAA))
			t.AddRow("compliant", fmt.Sprintf("%d/3", a.Compliant))
			t.AddRow("readable text", readable)
			if opts.preview(cmd) {
				sample, err := colour.ColourPreviewWithText(bg, "Aa", previewWidth)
				if err != nil {
					return err
				}
				t.AddRow("sample", sample)
			}
			_, err = fmt.Fprint(out, t.Render())
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.Flags().StringVar(&method, "method", string(colour.ReadableContrast), "how to pick the readable text colour (contrast, yiq)")
	return cmd
}

func level(aa, aaa bool) string {
	switch {
	case aaa:
		return "AAA"
	case aa:
		return "AA"
	}
	return "fail"
}
