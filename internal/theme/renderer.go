package theme

import (
	"fmt"
	"strings"
)

// utilityRules is the fixed utility-class table. Class names and the
// properties they set are part of the output contract; generated
// stylesheets are dropped into existing markup that references them.
var utilityRules = []struct {
	selector string
	property string
	token    string
}{
	{".bg-default", "background-color", TokenBg},
	{".bg-subtle", "background-color", TokenBgSubtle},
	{".bg-elevated", "background-color", TokenBgElevated},
	{".bg-surface", "background-color", TokenBgSurface},
	{".bg-accent", "background-color", TokenAccent},
	{".text-default", "color", TokenFg},
	{".text-muted", "color", TokenFgMuted},
	{".text-accent", "color", TokenAccent},
	{".text-on-accent", "color", TokenAccentFg},
	{".border-default", "border-color", TokenBorder},
	{".border-subtle", "border-color", TokenBorderSubtle},
	{".border-accent", "border-color", TokenAccent},
	{".focus-ring", "outline-color", TokenFocusRing},
}

// Render assembles the final CSS document from the registry and the two
// token sets. Pure formatting: every colour decision has already been made
// by the selector, and identical inputs produce byte-identical output.
func Render(reg *Registry, light, dark *TokenSet, cfg Config) string {
	var b strings.Builder

	b.WriteString(":root {\n")
	if cfg.IncludePaletteVars {
		for _, name := range reg.Names() {
			p, err := reg.Get(name)
			if err != nil {
				continue
			}
			for i, s := range p.Swatches {
				fmt.Fprintf(&b, "  %s: %s;\n", varName(cfg.Prefix, fmt.Sprintf("%s-%d", name, i)), s.Hex())
			}
		}
	}
	writeTokens(&b, light, cfg.Prefix, "  ")
	b.WriteString("}\n")

	fmt.Fprintf(&b, "\n%s, .dark {\n", cfg.DarkModeSelector)
	writeTokens(&b, dark, cfg.Prefix, "  ")
	b.WriteString("}\n")

	if cfg.RespectSystemPreference {
		b.WriteString("\n@media (prefers-color-scheme: dark) {\n  :root {\n")
		writeTokens(&b, dark, cfg.Prefix, "    ")
		b.WriteString("  }\n}\n")
	}

	if cfg.IncludeUtilityClasses {
		b.WriteString("\n")
		for _, rule := range utilityRules {
			fmt.Fprintf(&b, "%s { %s: var(%s); }\n", rule.selector, rule.property, varName(cfg.Prefix, rule.token))
		}
		for _, name := range reg.Extras() {
			fmt.Fprintf(&b, ".bg-%s { background-color: var(%s); color: var(%s); }\n",
				name, varName(cfg.Prefix, ExtraToken(name)), varName(cfg.Prefix, ExtraFgToken(name)))
			fmt.Fprintf(&b, ".text-%s { color: var(%s); }\n", name, varName(cfg.Prefix, ExtraToken(name)))
		}
	}

	return b.String()
}

// writeTokens emits one declaration line per token in emission order.
func writeTokens(b *strings.Builder, ts *TokenSet, prefix, indent string) {
	for _, name := range ts.Names() {
		value, _ := ts.Get(name)
		fmt.Fprintf(b, "%s%s: %s;\n", indent, varName(prefix, name), value)
	}
}

// varName builds a CSS custom-property name, prepending the configured
// prefix when one is set.
func varName(prefix, token string) string {
	if prefix != "" {
		return "--" + prefix + "-" + token
	}
	return "--" + token
}
