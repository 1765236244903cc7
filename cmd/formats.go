package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ridoystarlord/erd/drawer"
	"github.com/ridoystarlord/erd/loader"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List available loaders and drawers",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Loaders:")
			for _, name := range loader.Names() {
				fmt.Fprintln(out, "   -", name)
			}

			fmt.Fprintln(out, "\nDrawers:")
			for _, name := range drawer.Names() {
				fmt.Fprintln(out, "   -", name)
			}
		},
	}
}
