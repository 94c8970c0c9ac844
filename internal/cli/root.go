// Package cli provides the command-line interface for tonal.
package cli

import (
	"fmt"
	"io"
	"os"

	"fortio.org/safecast"
	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/jmylchreest/tonal/internal/config"
	"github.com/jmylchreest/tonal/internal/version"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// previewWidth is the number of cells in a colour preview block.
const previewWidth = 6

// options is the state shared by every command: global flags, the resolved
// configuration and the logger built from them.
type options struct {
	verbose    bool
	quiet      bool
	noPreview  bool
	configPath string

	fs         afero.Fs
	cfg        config.Config
	logger     hclog.Logger
	isTerminal func(io.Writer) bool
}

// NewRootCmd builds the tonal command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(afero.NewOsFs())
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	opts := &options{
		fs:         fs,
		cfg:        config.Default(),
		logger:     hclog.NewNullLogger(),
		isTerminal: isTerminal,
	}

	cmd := &cobra.Command{
		Use:   "tonal",
		Short: "Convert, parse and scale CSS colours",
		Long: `Tonal converts colours between hex, rgb, hsl, oklab and oklch, parses any
CSS colour string, and builds perceptual tonal scales and design-token swatches
capped to the Display P3 gamut.

Defaults can be set in tonal.toml or with TONAL_* environment variables;
flags given on the command line always win.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose, opts.quiet)

			cfg, err := config.Load(opts.fs, opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			opts.logger.Debug("configuration loaded",
				"precision", cfg.Precision, "format", cfg.Format, "preview", cfg.Preview,
				"steps", cfg.Scale.Steps, "mode", cfg.Scale.Mode, "variant", cfg.Scale.Variant)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: "+config.Name+".toml in "+config.Dir()+")")
	cmd.PersistentFlags().BoolVar(&opts.noPreview, "no-preview", false, "never draw colour previews")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.SetVersionTemplate(version.String() + "\n")

	cmd.AddCommand(
		newConvertCmd(opts),
		newParseCmd(opts),
		newScaleCmd(opts),
		newSwatchCmd(opts),
		newGamutCmd(opts),
		newContrastCmd(opts),
		newAdjustCmd(opts),
		newMixCmd(opts),
		newHarmonyCmd(opts),
		newNamesCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// precision returns the --precision flag when given, otherwise the configured default.
func (o *options) precision(cmd *cobra.Command, flag int) int {
	if cmd.Flags().Changed("precision") {
		return flag
	}
	return o.cfg.Precision
}

// format returns the named flag when given, otherwise the configured default format.
func (o *options) format(cmd *cobra.Command, name, flag string) string {
	if cmd.Flags().Changed(name) {
		return flag
	}
	return o.cfg.Format
}

// preview reports whether colour previews should be drawn on cmd's output.
func (o *options) preview(cmd *cobra.Command) bool {
	return !o.noPreview && o.cfg.Preview && o.isTerminal(cmd.OutOrStdout())
}

// printColour writes one colour per line, prefixed by a preview block on a terminal.
func (o *options) printColour(cmd *cobra.Command, text string) error {
	out := cmd.OutOrStdout()
	if o.preview(cmd) {
		block, err := colour.ColourPreview(text, previewWidth)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, block, text)
		return err
	}
	_, err := fmt.Fprintln(out, text)
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd, err := safecast.Convert[int](f.Fd())
	return err == nil && term.IsTerminal(fd)
}
