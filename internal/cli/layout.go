package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/photosheet/pkg/sheet"
)

// layoutCommand creates the layout command for inspecting sheet geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var flags sheetFlags

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the computed sheet geometry",
		Long: `Print the computed sheet geometry.

The layout command resolves the same preset, config file and flags as the
root command and prints the canvas, photo and cell rectangles without reading
or writing any image. Use it to check that a custom grid fits the paper.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			printLayout(cfg)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// printLayout prints the resolved geometry and one line per cell.
func printLayout(cfg sheet.Config) {
	canvas := cfg.CanvasSize()
	wIn, hIn := cfg.PageSizeInches()
	photo := cfg.PhotoSize()
	framed := cfg.FramedSize()

	printKeyValue("Paper", fmt.Sprintf("%g×%g in, %s", wIn, hIn, cfg.Grid.Orientation))
	printKeyValue("Canvas", fmt.Sprintf("%d×%d px @ %d DPI", canvas.X, canvas.Y, sheet.DPI))
	printKeyValue("Photo", fmt.Sprintf("%d×%d px", photo.X, photo.Y))
	printKeyValue("Framed", fmt.Sprintf("%d×%d px (border %d)", framed.X, framed.Y, cfg.Photo.Border))
	printKeyValue("Grid", layoutSummary(cfg))
	printKeyValue("Guides", guideSummary(cfg.Guideline))
	printKeyValue("Crop", cfg.Crop.Mode)
	printNewline()

	for i, r := range cfg.Cells() {
		row, col := i/cfg.Grid.Cols, i%cfg.Grid.Cols
		printDetail("cell %d,%d  x=%-4d y=%-4d %d×%d", row, col, r.Min.X, r.Min.Y, r.Dx(), r.Dy())
	}
}

func guideSummary(g sheet.GuidelineConfig) string {
	switch g.Style {
	case sheet.GuideNone:
		return g.Style
	case sheet.GuideDotted:
		return fmt.Sprintf("%s %s, width %d, gap %d", g.Style, g.Color, g.Width, g.Gap)
	default:
		return fmt.Sprintf("%s %s, width %d", g.Style, g.Color, g.Width)
	}
}
