package colour

import (
	"errors"
	"testing"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		input  string
		target Model
		want   string
	}{
		{input: "#ff0044", target: ModelHex, want: "#ff0044"},
		{input: "#ff0044", target: ModelRGB, want: "rgb(255 0 68)"},
		{input: "#ff0044", target: ModelHSL, want: "hsl(344 100% 50%)"},
		{input: "#ff0044", target: ModelOkLab, want: "oklab(63.269% 0.23887 0.08648)"},
		{input: "#ff0044", target: ModelOkLCH, want: "oklch(63.269% 0.25404 19.90218)"},
		{input: "white", target: ModelOkLCH, want: "oklch(100% 0 0)"},
		{input: "black", target: ModelOkLCH, want: "oklch(0% 0 0)"},
		{input: "#336699", target: ModelHSL, want: "hsl(210 50% 40%)"},
		{input: "#336699", target: ModelOkLCH, want: "oklch(49.931% 0.09867 250.43563)"},
		{input: "hsl(136 100% 50%)", target: ModelRGB, want: "rgb(0 255 68)"},
		{input: "oklch(63.269% 0.25404 19.90218)", target: ModelHex, want: "#ff0044"},
		{input: "rgba(51, 102, 153, 0.5)", target: ModelOkLCH, want: "oklch(49.931% 0.09867 250.43563 / 50%)"},
		{input: "rgb(255 0 68 / 50%)", target: ModelHex, want: "#ff004480"},
		{input: "#ff004466", target: ModelHSL, want: "hsl(344 100% 50% / 40%)"},
		{input: "hsl(359.999999 50% 50%)", target: ModelHSL, want: "hsl(0 50% 50%)"},
		{input: "oklch(50% 0.1 359.999999)", target: ModelOkLCH, want: "oklch(50% 0.1 0)"},
	}

	for _, tt := range tests {
		t.Run(tt.input+"->"+tt.target.String(), func(t *testing.T) {
			got, err := Convert(tt.input, tt.target)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Convert(%q, %s) = %q, want %q", tt.input, tt.target, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		opts FormatOptions
		want string
	}{
		{
			name: "same model keeps fields",
			in:   OkLCH{L: 0.5, C: 0.1, H: 30},
			opts: FormatOptions{Model: ModelOkLCH},
			want: "oklch(50% 0.1 30)",
		},
		{
			name: "same model rounds to precision",
			in:   HSL{H: 344.123456, S: 100, L: 50},
			opts: FormatOptions{Model: ModelHSL, Precision: 2},
			want: "hsl(344.12 100% 50%)",
		},
		{
			name: "comma separator",
			in:   RGB{R: 255, G: 0, B: 68},
			opts: FormatOptions{Model: ModelRGB, Separator: ", "},
			want: "rgb(255, 0, 68)",
		},
		{
			name: "oklab ignores separator",
			in:   OkLab{L: 0.5, A: 0.1, B: -0.1},
			opts: FormatOptions{Model: ModelOkLab, Separator: ", "},
			want: "oklab(50% 0.1 -0.1)",
		},
		{
			name: "alpha override",
			in:   Hex("#ff0044"),
			opts: FormatOptions{Model: ModelHSL, Alpha: Opacity(0.4)},
			want: "hsl(344 100% 50% / 40%)",
		},
		{
			name: "opaque override dropped",
			in:   RGB{R: 1, G: 2, B: 3, Alpha: Opacity(0.5)},
			opts: FormatOptions{Model: ModelRGB, Alpha: Opacity(1)},
			want: "rgb(1 2 3)",
		},
		{
			name: "hex with alpha",
			in:   RGB{R: 255, G: 0, B: 68, Alpha: Opacity(0.5)},
			opts: FormatOptions{Model: ModelHex},
			want: "#ff004480",
		},
		{
			name: "hex shorthand expanded",
			in:   Hex("#F04"),
			opts: FormatOptions{Model: ModelHex},
			want: "#ff0044",
		},
		{
			name: "hue rounding to 360 wraps",
			in:   OkLCH{L: 0.5, C: 0.1, H: 359.996},
			opts: FormatOptions{Model: ModelOkLCH, Precision: 2},
			want: "oklch(50% 0.1 0)",
		},
		{
			name: "hsl hue rounding to 360 wraps",
			in:   HSL{H: 359.9999999, S: 50, L: 50},
			opts: FormatOptions{Model: ModelHSL},
			want: "hsl(0 50% 50%)",
		},
		{
			name: "pivot through hsl",
			in:   HSL{H: 136, S: 100, L: 50},
			opts: FormatOptions{Model: ModelRGB},
			want: "rgb(0 255 68)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.in, tt.opts)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Format(%+v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestConvertWithPrecision(t *testing.T) {
	got, err := ConvertWith("#ff0044", FormatOptions{Model: ModelOkLCH, Precision: 2})
	if err != nil {
		t.Fatalf("ConvertWith() error = %v", err)
	}
	if want := "oklch(63% 0.26 20.56)"; got != want {
		t.Errorf("ConvertWith(precision 2) = %q, want %q", got, want)
	}
}

func TestFormatErrors(t *testing.T) {
	if _, err := Format(Hex("#fff"), FormatOptions{Model: Model(9)}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Format(bad model) error = %v, want ErrInvalidInput", err)
	}
	if _, err := Format(RGB{R: 300}, FormatOptions{Model: ModelHex}); !errors.Is(err, ErrInvalidColorModel) {
		t.Errorf("Format(bad rgb) error = %v, want ErrInvalidColorModel", err)
	}
	if _, err := Format(nil, FormatOptions{}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Format(nil) error = %v, want ErrInvalidInput", err)
	}
	if _, err := Format(Hex("#ff0044"), FormatOptions{Model: ModelHSL, Precision: MaxPrecision + 1}); !errors.Is(err, ErrRange) {
		t.Errorf("Format(precision %d) error = %v, want ErrRange", MaxPrecision+1, err)
	}
	if _, err := ConvertWith("#ff0044", FormatOptions{Model: ModelHSL, Precision: 400}); !errors.Is(err, ErrRange) {
		t.Errorf("ConvertWith(precision 400) error = %v, want ErrRange", err)
	}
	if _, err := Convert("nope", ModelHex); !errors.Is(err, ErrInvalidCSSString) {
		t.Errorf("Convert(nope) error = %v, want ErrInvalidCSSString", err)
	}
}
