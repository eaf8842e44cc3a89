package theme

import (
	"strings"
	"testing"
)

func renderFixture(t *testing.T, mutate func(*Config)) (string, Config) {
	t.Helper()
	cfg := testConfig(ContrastAA, false)
	cfg.Palettes["warning"] = PaletteConfig{Base: "#F59E0B"}
	if mutate != nil {
		mutate(&cfg)
	}

	result, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return result.CSS, cfg
}

func TestRenderSections(t *testing.T) {
	css, cfg := renderFixture(t, nil)

	for _, want := range []string{
		":root {\n",
		cfg.DarkModeSelector + ", .dark {\n",
		"@media (prefers-color-scheme: dark) {\n",
		"  --color-bg: ",
		"  --color-focus-ring: ",
		"  --color-warning: ",
		"  --color-warning-fg: ",
		"  --neutral-0: ",
		"  --accent-0: ",
		".bg-default { background-color: var(--color-bg); }\n",
		".text-muted { color: var(--color-fg-muted); }\n",
		".border-accent { border-color: var(--color-accent); }\n",
		".bg-warning { background-color: var(--color-warning); color: var(--color-warning-fg); }\n",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderToggles(t *testing.T) {
	t.Run("palette vars off", func(t *testing.T) {
		css, _ := renderFixture(t, func(c *Config) { c.IncludePaletteVars = false })
		if strings.Contains(css, "--neutral-0") {
			t.Error("palette vars emitted while disabled")
		}
		if !strings.Contains(css, "--color-bg:") {
			t.Error("semantic tokens must still be emitted")
		}
	})

	t.Run("utility classes off", func(t *testing.T) {
		css, _ := renderFixture(t, func(c *Config) { c.IncludeUtilityClasses = false })
		if strings.Contains(css, ".bg-default") {
			t.Error("utility classes emitted while disabled")
		}
	})

	t.Run("system preference off", func(t *testing.T) {
		css, _ := renderFixture(t, func(c *Config) { c.RespectSystemPreference = false })
		if strings.Contains(css, "prefers-color-scheme") {
			t.Error("media query emitted while disabled")
		}
	})

	t.Run("custom dark selector", func(t *testing.T) {
		css, _ := renderFixture(t, func(c *Config) { c.DarkModeSelector = ".theme-dark" })
		if !strings.Contains(css, ".theme-dark, .dark {") {
			t.Error("custom dark-mode selector not used")
		}
	})
}

func TestRenderPrefix(t *testing.T) {
	css, _ := renderFixture(t, func(c *Config) { c.Prefix = "sw" })

	for _, want := range []string{
		"--sw-color-bg: ",
		"--sw-neutral-0: ",
		".bg-default { background-color: var(--sw-color-bg); }",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(css, " --color-bg:") {
		t.Error("unprefixed variable emitted alongside prefix")
	}
}

// Same config, byte-identical output, run after run.
func TestGenerateDeterministic(t *testing.T) {
	first, _ := renderFixture(t, nil)
	second, _ := renderFixture(t, nil)
	if first != second {
		t.Error("repeated generation produced different output")
	}
}

func TestGenerateInvalidConfig(t *testing.T) {
	cfg := testConfig(ContrastAA, false)
	cfg.Palettes[PaletteNeutral] = PaletteConfig{Base: "not-a-color"}

	result, err := Generate(cfg)
	if err == nil {
		t.Fatal("expected an error")
	}
	if result != nil {
		t.Error("no partial result must be produced on failure")
	}
}

func TestGenerateMissingRequiredPalette(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Palettes = map[string]PaletteConfig{PaletteNeutral: {Base: "#6B7280"}}

	if _, err := Generate(cfg); err == nil {
		t.Fatal("expected an error for a config without an accent palette")
	}
}
