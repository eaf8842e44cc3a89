package colour

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "six digit", input: "#3b82f6", want: "#3b82f6"},
		{name: "uppercase", input: "#3B82F6", want: "#3b82f6"},
		{name: "no hash", input: "3b82f6", want: "#3b82f6"},
		{name: "three digit", input: "#abc", want: "#aabbcc"},
		{name: "surrounding space", input: "  #ffffff ", want: "#ffffff"},
		{name: "empty", input: "", wantErr: true},
		{name: "not a colour", input: "not-a-color", wantErr: true},
		{name: "too short", input: "#ff", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseHex(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHex(%q) expected error, got %v", tt.input, c.Hex())
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) returned error: %v", tt.input, err)
			}
			if got := c.Hex(); got != tt.want {
				t.Errorf("ParseHex(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestLuminance(t *testing.T) {
	if got := Luminance(White); math.Abs(got-1.0) > 0.001 {
		t.Errorf("Luminance(white) = %f, want 1.0", got)
	}
	if got := Luminance(Black); got > 0.001 {
		t.Errorf("Luminance(black) = %f, want 0.0", got)
	}

	// Green dominates the luminance formula.
	green := colorful.Color{R: 0, G: 1, B: 0}
	blue := colorful.Color{R: 0, G: 0, B: 1}
	if Luminance(green) <= Luminance(blue) {
		t.Error("expected green to be brighter than blue")
	}
}

func TestContrastRatio(t *testing.T) {
	if got := ContrastRatio(White, Black); math.Abs(got-21.0) > 0.01 {
		t.Errorf("ContrastRatio(white, black) = %f, want 21.0", got)
	}
	if got := ContrastRatio(White, White); math.Abs(got-1.0) > 0.001 {
		t.Errorf("ContrastRatio(white, white) = %f, want 1.0", got)
	}

	// Symmetric in its arguments.
	grey := colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	if ContrastRatio(grey, White) != ContrastRatio(White, grey) {
		t.Error("contrast ratio must be symmetric")
	}
}

func TestBlackOrWhite(t *testing.T) {
	midGrey, _ := ParseHex("#767676") // ~4.5:1 against both extremes

	tests := []struct {
		name        string
		bg          colorful.Color
		minRatio    float64
		preferWhite bool
		want        colorful.Color
		wantMeets   bool
	}{
		{name: "light bg picks black", bg: White, minRatio: 4.5, preferWhite: false, want: Black, wantMeets: true},
		{name: "light bg prefers white but only black meets", bg: White, minRatio: 4.5, preferWhite: true, want: Black, wantMeets: true},
		{name: "dark bg picks white", bg: Black, minRatio: 4.5, preferWhite: true, want: White, wantMeets: true},
		{name: "both meet tie breaks to black", bg: midGrey, minRatio: 4.0, preferWhite: false, want: Black, wantMeets: true},
		{name: "both meet tie breaks to white", bg: midGrey, minRatio: 4.0, preferWhite: true, want: White, wantMeets: true},
		{name: "neither meets returns best effort", bg: midGrey, minRatio: 20.0, preferWhite: false, wantMeets: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, meets := BlackOrWhite(tt.bg, tt.minRatio, tt.preferWhite)
			if meets != tt.wantMeets {
				t.Errorf("meets = %v, want %v", meets, tt.wantMeets)
			}
			if tt.wantMeets && got != tt.want {
				t.Errorf("got %s, want %s", got.Hex(), tt.want.Hex())
			}
			if !tt.wantMeets {
				// Best-effort pick must still be the higher-contrast extreme.
				other := White
				if got == White {
					other = Black
				}
				if ContrastRatio(got, tt.bg) < ContrastRatio(other, tt.bg) {
					t.Error("best-effort pick is not the higher-contrast extreme")
				}
			}
		})
	}
}

func TestBestContrastSwatch(t *testing.T) {
	ramp := BuildRamp(colorful.Color{R: 0.42, G: 0.45, B: 0.5})
	bg := ramp[1]

	t.Run("meets threshold narrowly", func(t *testing.T) {
		got, idx := BestContrastSwatch(ramp, bg, 4.5)
		ratio := ContrastRatio(got, bg)
		if ratio < 4.5 {
			t.Fatalf("selected ratio %f below minimum", ratio)
		}
		// Every other qualifying swatch must clear the bar by at least as much.
		for _, s := range ramp {
			r := ContrastRatio(s, bg)
			if r >= 4.5 && r < ratio {
				t.Fatalf("swatch with ratio %f clears 4.5 more narrowly than pick %f", r, ratio)
			}
		}
		if idx < 0 || idx >= len(ramp) {
			t.Errorf("index %d out of range", idx)
		}
		if ramp[idx] != got {
			t.Error("returned index does not locate the returned swatch")
		}
	})

	t.Run("falls back to highest contrast", func(t *testing.T) {
		got, idx := BestContrastSwatch(ramp, bg, 25.0)
		if idx < 0 {
			t.Fatal("expected a fallback pick")
		}
		ratio := ContrastRatio(got, bg)
		for _, s := range ramp {
			if ContrastRatio(s, bg) > ratio {
				t.Fatal("fallback is not the highest-contrast swatch")
			}
		}
	})

	t.Run("empty palette", func(t *testing.T) {
		_, idx := BestContrastSwatch(nil, bg, 3.0)
		if idx != -1 {
			t.Errorf("expected index -1 for empty palette, got %d", idx)
		}
	})
}
