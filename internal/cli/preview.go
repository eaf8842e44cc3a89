package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/swatch/internal/theme"
)

var (
	previewFlags themeFlags
	previewMode  string

	previewCmd = &cobra.Command{
		Use:   "preview",
		Short: "Preview generated tokens in the terminal",
		Long: `Preview runs the same selection as generate and shows the resulting
tokens as coloured swatches instead of CSS. On a terminal each token is
drawn as a solid block in its colour; without one the output falls back
to a plain table.`,
		Example: `  swatch preview --colour neutral=#6B7280 --colour accent=#3B82F6
  swatch preview -c theme.yaml --mode dark`,
		RunE: runPreview,
	}
)

// modeTokens pairs a mode label with its selected token set.
type modeTokens struct {
	name string
	ts   *theme.TokenSet
}

func init() {
	previewFlags.register(previewCmd)
	previewCmd.Flags().StringVar(&previewMode, "mode", "both", "which mode to preview (light, dark, both)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := previewFlags.resolve(cmd)
	if err != nil {
		return err
	}

	result, err := theme.Generate(cfg)
	if err != nil {
		return err
	}

	var modes []modeTokens
	switch previewMode {
	case "light":
		modes = []modeTokens{{"light", result.Light}}
	case "dark":
		modes = []modeTokens{{"dark", result.Dark}}
	case "both":
		modes = []modeTokens{{"light", result.Light}, {"dark", result.Dark}}
	default:
		return fmt.Errorf("invalid mode %q: must be light, dark, or both", previewMode)
	}

	tty := term.IsTerminal(int(os.Stdout.Fd()))
	out := cmd.OutOrStdout()

	for _, mode := range modes {
		fmt.Fprintf(out, "%s mode:\n", mode.name)
		if tty {
			renderSwatches(out, mode.ts)
		} else {
			renderTokenTable(out, mode.ts)
		}
		fmt.Fprintln(out)
	}
	return nil
}

// renderSwatches draws each token as a coloured block with its name and
// value beside it.
func renderSwatches(out io.Writer, ts *theme.TokenSet) {
	nameWidth := 0
	for _, name := range ts.Names() {
		if len(name) > nameWidth {
			nameWidth = len(name)
		}
	}

	for _, name := range ts.Names() {
		hex, _ := ts.Get(name)
		block := lipgloss.NewStyle().
			Background(lipgloss.Color(hex)).
			Render(strings.Repeat(" ", 8))
		fmt.Fprintf(out, "  %s  %-*s  %s\n", block, nameWidth, name, hex)
	}
}

func renderTokenTable(out io.Writer, ts *theme.TokenSet) {
	table := NewTable("Token", "Value")
	for _, name := range ts.Names() {
		hex, _ := ts.Get(name)
		table.AddRow(name, hex)
	}
	table.Render(out)
}
