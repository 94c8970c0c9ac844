package colour

import (
	"errors"
	"testing"
)

func TestLuminance(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{input: "#000000", want: 0},
		{input: "#ffffff", want: 1},
		{input: "#ff0044", want: 0.2168},
		{input: "hsl(0 0% 100%)", want: 1},
	}

	for _, tt := range tests {
		got, err := Luminance(tt.input)
		if err != nil {
			t.Fatalf("Luminance(%q) error = %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Luminance(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestContrastRatio(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{a: "#000", b: "#fff", want: 21},
		{a: "#fff", b: "#000", want: 21},
		{a: "#ff0044", b: "#fff", want: 3.94},
		{a: "#224e2e", b: "white", want: 9.56},
		{a: "#777", b: "#777", want: 1},
	}

	for _, tt := range tests {
		got, err := ContrastRatio(tt.a, tt.b)
		if err != nil {
			t.Fatalf("ContrastRatio(%q, %q) error = %v", tt.a, tt.b, err)
		}
		if got != tt.want {
			t.Errorf("ContrastRatio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAPCAContrast(t *testing.T) {
	tests := []struct {
		text, bg string
		want     float64
	}{
		{text: "#000", bg: "#fff", want: 106.04},
		{text: "#fff", bg: "#000", want: -107.88},
		{text: "#888", bg: "#fff", want: 63.06},
		{text: "#fff", bg: "#fff", want: 0},
	}

	for _, tt := range tests {
		got, err := APCAContrast(tt.text, tt.bg)
		if err != nil {
			t.Fatalf("APCAContrast(%q, %q) error = %v", tt.text, tt.bg, err)
		}
		if got != tt.want {
			t.Errorf("APCAContrast(%q, %q) = %v, want %v", tt.text, tt.bg, got, tt.want)
		}
	}
}

func TestBrightness(t *testing.T) {
	got, err := Brightness("#ff0044")
	if err != nil {
		t.Fatalf("Brightness() error = %v", err)
	}
	if got != 84 {
		t.Errorf("Brightness(#ff0044) = %v, want 84", got)
	}
}

func TestHueDistance(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{a: 350, b: 10, want: 20},
		{a: 0, b: 180, want: 180},
		{a: 90, b: -90, want: 180},
		{a: 45, b: 45, want: 0},
	}

	for _, tt := range tests {
		if got := HueDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("HueDistance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCompare(t *testing.T) {
	got, err := Compare("#000000", "#ffffff")
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	want := Analysis{
		BrightnessDifference: 255,
		ColourDifference:     765,
		Contrast:             21,
		APCA:                 106.04,
		HueDistance:          0,
		Compliant:            3,
		NormalAA:             true,
		NormalAAA:            true,
		LargeAA:              true,
		LargeAAA:             true,
	}
	if got != want {
		t.Errorf("Compare(black, white) = %+v, want %+v", got, want)
	}

	got, err = Compare("#ff0044", "#ffffff")
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if got.NormalAA || !got.LargeAA {
		t.Errorf("Compare(#ff0044, white) = %+v, want large text only", got)
	}
}

func TestReadableColor(t *testing.T) {
	tests := []struct {
		name string
		bg   string
		opts ReadableOptions
		want string
	}{
		{name: "pink takes black", bg: "#ff0044", want: "#000000"},
		{name: "yellow takes black", bg: "#ffff00", want: "#000000"},
		{name: "forest takes white", bg: "#224e2e", want: "#ffffff"},
		{name: "custom candidates", bg: "#224e2e", opts: ReadableOptions{Dark: "#111", Light: "ivory"}, want: "ivory"},
		{name: "yiq dark background", bg: "#224e2e", opts: ReadableOptions{Method: ReadableYIQ}, want: "#ffffff"},
		{name: "yiq threshold", bg: "#224e2e", opts: ReadableOptions{Method: ReadableYIQ, Threshold: 50}, want: "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadableColor(tt.bg, tt.opts)
			if err != nil {
				t.Fatalf("ReadableColor() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadableColor(%q) = %q, want %q", tt.bg, got, tt.want)
			}
		})
	}
}

func TestContrastErrors(t *testing.T) {
	if _, err := ContrastRatio("#000", "nope"); !errors.Is(err, ErrInvalidCSSString) {
		t.Errorf("ContrastRatio(nope) error = %v, want ErrInvalidCSSString", err)
	}
	if _, err := ReadableColor("#000", ReadableOptions{Method: "vibes"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ReadableColor(bad method) error = %v, want ErrInvalidInput", err)
	}
	if _, err := Luminance(""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Luminance(empty) error = %v, want ErrInvalidInput", err)
	}
}
