package colour

import (
	"errors"
	"reflect"
	"testing"
)

func TestBuildSwatch(t *testing.T) {
	tests := []struct {
		name  string
		scale SwatchScale
		want  map[int]string
	}{
		{
			name:  "dynamic",
			scale: SwatchDynamic,
			want: map[int]string{
				50: "#dcffe3", 100: "#adddb6", 200: "#88b792", 300: "#65926f", 400: "#436f4d",
				500: "#224e2e", 600: "#174425", 700: "#0c3a1c", 800: "#013113", 900: "#00270a", 950: "#001e03",
			},
		},
		{
			name:  "linear",
			scale: SwatchLinear,
			want: map[int]string{
				50: "#dcffe3", 100: "#baeac3", 200: "#a1d1ab", 300: "#89b893", 400: "#72a07c",
				500: "#5b8865", 600: "#45714f", 700: "#2f5b3b", 800: "#1a4627", 900: "#023213", 950: "#001e03",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultSwatchOptions()
			opts.Scale = tt.scale

			shades, err := BuildSwatch("#224e2e", opts)
			if err != nil {
				t.Fatalf("BuildSwatch() error = %v", err)
			}
			if got := shades.Map(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BuildSwatch(%s) = %v, want %v", tt.scale, got, tt.want)
			}
		})
	}
}

func TestBuildSwatchKeepsSeedModel(t *testing.T) {
	shades, err := BuildSwatch("hsl(344 100% 50%)", DefaultSwatchOptions())
	if err != nil {
		t.Fatalf("BuildSwatch() error = %v", err)
	}
	if got, _ := shades.Get(SwatchKey); got != "hsl(344 100% 50%)" {
		t.Errorf("BuildSwatch()[%d] = %q, want the seed", SwatchKey, got)
	}
	if len(shades) != 11 {
		t.Errorf("len(BuildSwatch()) = %d, want 11", len(shades))
	}
}

func TestBuildSwatchErrors(t *testing.T) {
	opts := DefaultSwatchOptions()
	opts.Scale = "log"
	if _, err := BuildSwatch("#224e2e", opts); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("BuildSwatch(scale log) error = %v, want ErrInvalidInput", err)
	}

	opts = DefaultSwatchOptions()
	opts.MinLightness = 0.99
	if _, err := BuildSwatch("#224e2e", opts); !errors.Is(err, ErrRange) {
		t.Errorf("BuildSwatch(min > max) error = %v, want ErrRange", err)
	}
}
