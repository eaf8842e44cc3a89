package cli

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func resetExtract() {
	extractColours = 6
	extractFormat = "config"
	extractOutput = ""
}

// writeTestImage writes a PNG split between a grey and a saturated blue
// region, giving the extractor an obvious neutral and accent.
func writeTestImage(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 20, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			c := color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
			if x >= 10 {
				c = color.RGBA{R: 0x00, G: 0x40, B: 0xff, A: 0xff}
			}
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "sample.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExtractCommandConfig(t *testing.T) {
	resetExtract()
	path := writeTestImage(t)

	out, err := runCLI(t, "extract", path)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	var cfg struct {
		Palettes map[string]string `json:"palettes"`
	}
	if err := json.Unmarshal([]byte(out), &cfg); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}

	if cfg.Palettes["neutral"] != "#808080" {
		t.Errorf("neutral = %q, want #808080", cfg.Palettes["neutral"])
	}
	if cfg.Palettes["accent"] != "#0040ff" {
		t.Errorf("accent = %q, want #0040ff", cfg.Palettes["accent"])
	}
}

func TestExtractCommandColours(t *testing.T) {
	resetExtract()
	extractFormat = "colours"
	path := writeTestImage(t)

	out, err := runCLI(t, "extract", path, "-f", "colours")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if !strings.Contains(out, "#808080") || !strings.Contains(out, "#0040ff") {
		t.Errorf("colour table missing expected colours:\n%s", out)
	}
	if !strings.Contains(out, "%") {
		t.Errorf("colour table missing weights:\n%s", out)
	}
}

func TestExtractCommandMissingFile(t *testing.T) {
	resetExtract()

	if _, err := runCLI(t, "extract", filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Fatal("expected error for missing image")
	}
}

func TestExtractCommandBadCount(t *testing.T) {
	resetExtract()
	path := writeTestImage(t)

	if _, err := runCLI(t, "extract", path, "-n", "1"); err == nil {
		t.Fatal("expected error for colour count below 2")
	}
}
