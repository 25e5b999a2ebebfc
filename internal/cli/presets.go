package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/photosheet/pkg/sheet"
)

// presetsCommand lists the built-in layouts.
func (c *CLI) presetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List built-in sheet layouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range sheet.Presets() {
				name := p.Name
				if name == sheet.DefaultPreset {
					name += StyleDim.Render(" *")
				}
				printKeyValue(name, p.Description)
			}
			return nil
		},
	}
}
