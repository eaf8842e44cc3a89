package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/extract"
)

var (
	// Extract command flags
	extractColours int
	extractFormat  string
	extractOutput  string
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Suggest brand colours from an image",
	Long: `Extract clusters the dominant colours of an image and suggests a neutral
and an accent brand colour from them. The suggestion is written as a theme
config so it can feed straight into generate.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Suggest a config from a wallpaper
  swatch extract wallpaper.jpg

  # Save the suggestion and generate from it
  swatch extract wallpaper.png -o theme.json
  swatch generate -c theme.json

  # List all dominant colours instead of a config
  swatch extract --format colours -n 8 wallpaper.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().IntVarP(&extractColours, "colours", "n", 6, "number of dominant colours to cluster (2-32)")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "config", "output format (config, colours)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (default: stdout)")
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	if extractColours < 2 || extractColours > 32 {
		return fmt.Errorf("invalid colour count %d: must be between 2 and 32", extractColours)
	}

	img, err := extract.LoadImage(args[0])
	if err != nil {
		return err
	}

	extractor := extract.New()

	var out []byte
	switch extractFormat {
	case "config":
		suggestion, err := extractor.Suggest(img, extractColours)
		if err != nil {
			return err
		}
		logger.Debug("suggested brand colours",
			"neutral", suggestion.Neutral.Hex(), "accent", suggestion.Accent.Hex())

		cfg := map[string]any{
			"palettes": map[string]string{
				"neutral": suggestion.Neutral.Hex(),
				"accent":  suggestion.Accent.Hex(),
			},
		}
		out, err = json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		out = append(out, '\n')

	case "colours":
		colours, weights, err := extractor.Dominant(img, extractColours)
		if err != nil {
			return err
		}
		table := NewTable("Colour", "Weight")
		for i, c := range colours {
			table.AddRow(c.Hex(), fmt.Sprintf("%.1f%%", weights[i]*100))
		}
		var buf bytes.Buffer
		table.Render(&buf)
		out = buf.Bytes()

	default:
		return fmt.Errorf("invalid format %q: must be config or colours", extractFormat)
	}

	if extractOutput == "" {
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	}
	if err := os.WriteFile(extractOutput, out, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", extractOutput, err)
	}
	logger.Info("wrote suggestion", "path", extractOutput)
	return nil
}
