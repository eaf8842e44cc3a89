// Swatch - an accessible CSS theme generator
//
// Swatch turns brand colours into complete light and dark CSS
// custom-property themes whose token pairings meet WCAG contrast
// requirements.
package main

import (
	"os"

	"github.com/jmylchreest/swatch/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
