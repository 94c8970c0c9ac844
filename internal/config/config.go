// Package config resolves tonal's defaults from the environment and an optional
// tonal.toml, layered under whatever the command line sets explicitly.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmylchreest/tonal/internal/colour"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Name is the application name used for the env prefix, config file and directory.
const Name = "tonal"

// EnvConfigPath overrides the directory searched for tonal.toml.
const EnvConfigPath = "TONAL_CONFIG_PATH"

// Configuration keys.
const (
	KeyPrecision    = "precision"
	KeyFormat       = "format"
	KeyPreview      = "preview"
	KeyScaleSteps   = "scale.steps"
	KeyScaleMode    = "scale.mode"
	KeyScaleVariant = "scale.variant"
)

// EnvKeyReplacer maps configuration keys to environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// ErrInvalidConfig reports a configuration value tonal cannot use.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the resolved defaults.
type Config struct {
	Precision int    `mapstructure:"precision"`
	Format    string `mapstructure:"format"`
	Preview   bool   `mapstructure:"preview"`
	Scale     Scale  `mapstructure:"scale"`
}

// Scale holds scale defaults.
type Scale struct {
	Steps   int    `mapstructure:"steps"`
	Mode    string `mapstructure:"mode"`
	Variant string `mapstructure:"variant"`
}

// Default returns the built-in defaults.
func Default() Config {
	scale := colour.DefaultScaleOptions()
	return Config{
		Precision: colour.DefaultPrecision,
		Preview:   true,
		Scale: Scale{
			Steps:   scale.Steps,
			Mode:    string(scale.Mode),
			Variant: string(scale.Variant),
		},
	}
}

func defaults() map[string]any {
	d := Default()
	return map[string]any{
		KeyPrecision:    d.Precision,
		KeyFormat:       d.Format,
		KeyPreview:      d.Preview,
		KeyScaleSteps:   d.Scale.Steps,
		KeyScaleMode:    d.Scale.Mode,
		KeyScaleVariant: d.Scale.Variant,
	}
}

// Keys returns every configuration key in a stable order.
func Keys() []string {
	return []string{KeyPrecision, KeyFormat, KeyPreview, KeyScaleSteps, KeyScaleMode, KeyScaleVariant}
}

// Env returns the environment variable read for key.
func Env(key string) string {
	return strings.ToUpper(Name + "_" + EnvKeyReplacer.Replace(key))
}

// Dir returns the directory searched for tonal.toml.
func Dir() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return custom
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, Name)
}

// Load resolves the configuration. With an empty path, tonal.toml is looked up in
// Dir and the working directory and may be absent; an explicit path must exist.
func Load(fs afero.Fs, path string) (Config, error) {
	v := viper.New()
	v.SetFs(fs)

	v.SetEnvPrefix(Name)
	v.SetEnvKeyReplacer(EnvKeyReplacer)
	v.AutomaticEnv()

	v.SetTypeByDefaultValue(true)
	for key, value := range defaults() {
		v.SetDefault(key, value)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(Name)
		v.SetConfigType("toml")
		if dir := Dir(); dir != "" {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every value against what the colour package accepts.
func (c Config) Validate() error {
	if c.Precision < 1 || c.Precision > colour.MaxPrecision {
		return fmt.Errorf("%w: %s = %d must be within [1, %d]", ErrInvalidConfig, KeyPrecision, c.Precision, colour.MaxPrecision)
	}
	if c.Format != "" {
		if _, err := colour.ParseModel(c.Format); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, KeyFormat, err)
		}
	}
	if c.Scale.Steps < colour.MinSteps || c.Scale.Steps > colour.MaxSteps {
		return fmt.Errorf("%w: %s = %d must be within [%d, %d]", ErrInvalidConfig, KeyScaleSteps, c.Scale.Steps, colour.MinSteps, colour.MaxSteps)
	}
	if !lo.Contains([]colour.Mode{colour.ModeLight, colour.ModeDark}, colour.Mode(c.Scale.Mode)) {
		return fmt.Errorf("%w: %s = %q must be light or dark", ErrInvalidConfig, KeyScaleMode, c.Scale.Mode)
	}
	if !lo.Contains(colour.Variants(), colour.Variant(c.Scale.Variant)) {
		return fmt.Errorf("%w: %s = %q is not a known variant", ErrInvalidConfig, KeyScaleVariant, c.Scale.Variant)
	}
	return nil
}

// ScaleOptions returns the scale defaults as colour options.
func (c Config) ScaleOptions() colour.ScaleOptions {
	opts := colour.DefaultScaleOptions()
	opts.Steps = c.Scale.Steps
	opts.Mode = colour.Mode(c.Scale.Mode)
	opts.Variant = colour.Variant(c.Scale.Variant)
	opts.Format = c.Format
	opts.Precision = c.Precision
	return opts
}
