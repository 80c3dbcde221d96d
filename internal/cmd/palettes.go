package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qrforge/qrforge/pkg/colorx"
)

var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List the built-in color palettes",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range colorx.PaletteNames() {
			fg, bg := colorx.ResolvePalette(name, "", "")
			fmt.Printf("%-14s %s on %s\n", name, fg, bg)
		}
	},
}
