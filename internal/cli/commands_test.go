package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jmylchreest/tonal/internal/config"
	"github.com/jmylchreest/tonal/internal/version"
	"github.com/spf13/afero"
)

const testConfigDir = "/config/tonal"

func execute(t *testing.T, fs afero.Fs, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, testConfigDir)

	cmd := newRootCmd(fs)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCommandOutput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "convert to oklch",
			args: []string{"convert", "#ff0044", "--to", "oklch"},
			want: "oklch(63.269% 0.25404 19.90218)\n",
		},
		{
			name: "convert with separator",
			args: []string{"convert", "#ff0044", "--to", "rgb", "--separator", ", "},
			want: "rgb(255, 0, 68)\n",
		},
		{
			name: "convert with precision",
			args: []string{"convert", "#ff0044", "--to", "oklch", "--precision", "2"},
			want: "oklch(63% 0.26 20.56)\n",
		},
		{
			name: "convert defaults to hex",
			args: []string{"convert", "rgb(255 0 68)"},
			want: "#ff0044\n",
		},
		{
			name: "convert several colours",
			args: []string{"convert", "#ff0044", "rgb(255 0 68)", "--to", "hex"},
			want: "#ff0044\n#ff0044\n",
		},
		{
			name: "gamut",
			args: []string{"gamut", "0.5", "0", "--precision", "3"},
			want: "0.228\n",
		},
		{
			name: "adjust lightness",
			args: []string{"adjust", "#ff0044", "--lightness", "10"},
			want: "#ff3369\n",
		},
		{
			name: "mix",
			args: []string{"mix", "black", "white"},
			want: "#636363\n",
		},
		{
			name: "harmony",
			args: []string{"harmony", "#ff0044", "--kind", "complementary"},
			want: "#ff0044\n#00afc5\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := execute(t, afero.NewMemMapFs(), tt.args...)
			if err != nil {
				t.Fatalf("%v: unexpected error: %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("%v = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"convert invalid colour", []string{"convert", "not-a-colour"}},
		{"convert unknown model", []string{"convert", "#ff0044", "--to", "cmyk"}},
		{"convert missing argument", []string{"convert"}},
		{"parse unknown model", []string{"parse", "#ff0044", "--as", "cmyk"}},
		{"gamut bad lightness", []string{"gamut", "bright", "0"}},
		{"gamut out of range", []string{"gamut", "1.5", "0"}},
		{"scale unknown mode", []string{"scale", "#ff0044", "--mode", "dim"}},
		{"scale unknown export", []string{"scale", "#ff0044", "--export", "xml"}},
		{"swatch unknown scale", []string{"swatch", "#ff0044", "--scale", "log"}},
		{"mix bad ratio", []string{"mix", "black", "white", "--ratio", "2"}},
		{"harmony unknown kind", []string{"harmony", "#ff0044", "--kind", "pentadic"}},
		{"adjust bad expression", []string{"adjust", "#ff0044", "--lightness", "abc"}},
		{"verbose and quiet", []string{"convert", "#ff0044", "-v", "-q"}},
		{"missing config file", []string{"convert", "#ff0044", "--config", "/nope/tonal.toml"}},
		{"convert precision too large", []string{"convert", "#ff0044", "--to", "hsl", "--precision", "400"}},
		{"gamut precision too large", []string{"gamut", "0.5", "0", "--precision", "400"}},
		{"scale precision too large", []string{"scale", "#ff0044", "--precision", "16"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := execute(t, afero.NewMemMapFs(), tt.args...); err == nil {
				t.Errorf("%v: expected error, got nil", tt.args)
			}
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, testConfigDir+"/tonal.toml", []byte("format = \"hsl\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, _, err := execute(t, fs, "convert", "#ff0044")
	if err != nil {
		t.Fatalf("convert: unexpected error: %v", err)
	}
	if want := "hsl(344 100% 50%)\n"; got != want {
		t.Errorf("convert with configured format = %q, want %q", got, want)
	}

	got, _, err = execute(t, fs, "convert", "#ff0044", "--to", "hex")
	if err != nil {
		t.Fatalf("convert --to hex: unexpected error: %v", err)
	}
	if want := "#ff0044\n"; got != want {
		t.Errorf("convert --to hex = %q, want %q", got, want)
	}
}

func TestInvalidConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, testConfigDir+"/tonal.toml", []byte("precision = 40\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := execute(t, fs, "convert", "#ff0044"); err == nil {
		t.Error("convert with invalid config: expected error, got nil")
	}
}

func TestParseCommand(t *testing.T) {
	got, _, err := execute(t, afero.NewMemMapFs(), "parse", "rgb(255 0 68 / 0.5)", "--json")
	if err != nil {
		t.Fatalf("parse: unexpected error: %v", err)
	}

	var report parsed
	if err := json.Unmarshal([]byte(got), &report); err != nil {
		t.Fatalf("parse output is not JSON: %v\n%s", err, got)
	}
	if report.Model != "rgb" {
		t.Errorf("model = %q, want %q", report.Model, "rgb")
	}
	if len(report.Components) != 3 || report.Components[0] != 255 || report.Components[1] != 0 || report.Components[2] != 68 {
		t.Errorf("components = %v, want [255 0 68]", report.Components)
	}
	if report.Alpha == nil || *report.Alpha != 0.5 {
		t.Errorf("alpha = %v, want 0.5", report.Alpha)
	}
	if !strings.HasPrefix(report.CSS, "rgb(255 0 68 / ") {
		t.Errorf("css = %q, want an rgb string with alpha", report.CSS)
	}

	got, _, err = execute(t, afero.NewMemMapFs(), "parse", "#ff0044")
	if err != nil {
		t.Fatalf("parse: unexpected error: %v", err)
	}
	for _, want := range []string{"FIELD", "model", "hex", "css", "#ff0044"} {
		if !strings.Contains(got, want) {
			t.Errorf("parse table missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "components") {
		t.Errorf("parse table for hex should have no components:\n%s", got)
	}
}

func TestScaleCommand(t *testing.T) {
	got, _, err := execute(t, afero.NewMemMapFs(), "scale", "#224e2e", "--lock", "500", "--export", "css", "--name", "forest")
	if err != nil {
		t.Fatalf("scale: unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, ":root {\n") {
		t.Errorf("scale css = %q, want a :root block", got)
	}
	if !strings.Contains(got, "  --forest-500: #224e2e;\n") {
		t.Errorf("scale css missing locked seed:\n%s", got)
	}

	got, stderr, err := execute(t, afero.NewMemMapFs(), "scale", "#224e2e", "--lock", "450")
	if err != nil {
		t.Fatalf("scale: unexpected error: %v", err)
	}
	if !strings.Contains(stderr, "ignoring lock") {
		t.Errorf("stderr = %q, want an ignored lock warning", stderr)
	}
	if !strings.HasPrefix(got, "KEY") || !strings.Contains(got, "950") {
		t.Errorf("scale table = %q, want KEY header and eleven token keys", got)
	}

	got, stderr, err = execute(t, afero.NewMemMapFs(), "scale", "#224e2e", "--lock", "450", "--quiet")
	if err != nil {
		t.Fatalf("scale --quiet: unexpected error: %v", err)
	}
	if stderr != "" {
		t.Errorf("scale --quiet stderr = %q, want empty", stderr)
	}
	if got == "" {
		t.Error("scale --quiet wrote no table")
	}
}

func TestScaleStepsFromConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, testConfigDir+"/tonal.toml", []byte("[scale]\nsteps = 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, _, err := execute(t, fs, "scale", "#ff0044", "--export", "json")
	if err != nil {
		t.Fatalf("scale: unexpected error: %v", err)
	}
	var doc struct {
		Shades []struct {
			Key int `json:"key"`
		} `json:"shades"`
	}
	if err := json.Unmarshal([]byte(got), &doc); err != nil {
		t.Fatalf("scale json: %v", err)
	}
	if len(doc.Shades) != 5 {
		t.Errorf("scale steps = %d, want 5", len(doc.Shades))
	}

	got, _, err = execute(t, fs, "scale", "#ff0044", "--steps", "3", "--export", "json")
	if err != nil {
		t.Fatalf("scale --steps: unexpected error: %v", err)
	}
	if err := json.Unmarshal([]byte(got), &doc); err != nil {
		t.Fatalf("scale json: %v", err)
	}
	if len(doc.Shades) != 3 {
		t.Errorf("scale --steps 3 = %d shades, want 3", len(doc.Shades))
	}
}

func TestSwatchCommand(t *testing.T) {
	got, _, err := execute(t, afero.NewMemMapFs(), "swatch", "#224e2e", "--export", "json", "--name", "Forest Green")
	if err != nil {
		t.Fatalf("swatch: unexpected error: %v", err)
	}
	var doc struct {
		Name   string `json:"name"`
		Shades []struct {
			Key   int    `json:"key"`
			Color string `json:"color"`
		} `json:"shades"`
	}
	if err := json.Unmarshal([]byte(got), &doc); err != nil {
		t.Fatalf("swatch json: %v", err)
	}
	if doc.Name != "forest-green" {
		t.Errorf("name = %q, want %q", doc.Name, "forest-green")
	}
	if len(doc.Shades) != 11 {
		t.Fatalf("swatch has %d shades, want 11", len(doc.Shades))
	}
	if doc.Shades[5].Key != 500 || doc.Shades[5].Color != "#224e2e" {
		t.Errorf("shade 5 = %+v, want 500 #224e2e", doc.Shades[5])
	}
}

func TestContrastCommand(t *testing.T) {
	got, _, err := execute(t, afero.NewMemMapFs(), "contrast", "#000", "#fff")
	if err != nil {
		t.Fatalf("contrast: unexpected error: %v", err)
	}
	for _, want := range []string{"21:1", "AAA", "3/3", "#000000"} {
		if !strings.Contains(got, want) {
			t.Errorf("contrast table missing %q:\n%s", want, got)
		}
	}

	got, _, err = execute(t, afero.NewMemMapFs(), "contrast", "#000", "#fff", "--json")
	if err != nil {
		t.Fatalf("contrast --json: unexpected error: %v", err)
	}
	var report contrastReport
	if err := json.Unmarshal([]byte(got), &report); err != nil {
		t.Fatalf("contrast json: %v", err)
	}
	if report.Analysis.Contrast != 21 {
		t.Errorf("contrast = %v, want 21", report.Analysis.Contrast)
	}
	if report.Readable != "#000000" {
		t.Errorf("readable = %q, want #000000", report.Readable)
	}
}

func TestNamesCommand(t *testing.T) {
	got, _, err := execute(t, afero.NewMemMapFs(), "names", "cornflower")
	if err != nil {
		t.Fatalf("names: unexpected error: %v", err)
	}
	if !strings.Contains(got, "cornflowerblue") || !strings.Contains(got, "#6495ed") {
		t.Errorf("names cornflower = %q, want cornflowerblue #6495ed", got)
	}

	got, stderr, err := execute(t, afero.NewMemMapFs(), "names", "zzz")
	if err != nil {
		t.Fatalf("names: unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("names zzz = %q, want no output", got)
	}
	if !strings.Contains(stderr, "no named colours match") {
		t.Errorf("stderr = %q, want a no match warning", stderr)
	}
}

func TestVersionCommand(t *testing.T) {
	got, _, err := execute(t, afero.NewMemMapFs(), "version")
	if err != nil {
		t.Fatalf("version: unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "tonal version ") {
		t.Errorf("version = %q, want tonal version prefix", got)
	}

	got, _, err = execute(t, afero.NewMemMapFs(), "version", "--json")
	if err != nil {
		t.Fatalf("version --json: unexpected error: %v", err)
	}
	var info version.Info
	if err := json.Unmarshal([]byte(got), &info); err != nil {
		t.Fatalf("version json: %v", err)
	}
	if info.Version != version.Version {
		t.Errorf("version = %q, want %q", info.Version, version.Version)
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		aa, aaa bool
		want    string
	}{
		{false, false, "fail"},
		{true, false, "AA"},
		{true, true, "AAA"},
	}
	for _, tt := range tests {
		if got := level(tt.aa, tt.aaa); got != tt.want {
			t.Errorf("level(%v, %v) = %q, want %q", tt.aa, tt.aaa, got, tt.want)
		}
	}
}
