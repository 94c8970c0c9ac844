package cli

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newNamesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "names [filter]",
		Short: "List the named CSS colours",
		Long: `List the named CSS colours and their hex values. An optional filter keeps
only names containing it.

Example:
  tonal names blue`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := colour.ColourNames()
			if len(args) == 1 {
				filter := strings.ToLower(strings.TrimSpace(args[0]))
				names = lo.Filter(names, func(n string, _ int) bool { return strings.Contains(n, filter) })
				if len(names) == 0 {
					opts.logger.Warn("no named colours match", "filter", filter)
					return nil
				}
			}

			preview := opts.preview(cmd)
			headers := []string{"NAME", "HEX"}
			if preview {
				headers = append(headers, "PREVIEW")
			}
			t := NewTable(headers...)
			for _, n := range names {
				hex, _ := colour.LookupName(n)
				if !preview {
					t.AddRow(n, hex.String())
					continue
				}
				block, err := colour.ColourPreview(hex.String(), previewWidth)
				if err != nil {
					return err
				}
				t.AddRow(n, hex.String(), block)
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), t.Render())
			return err
		},
	}
	return cmd
}
