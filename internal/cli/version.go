package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	msysmake "github.com/contriboss/msys-makefile-go"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "msysmake version %s\n", version)
		fmt.Fprintln(cmd.OutOrStdout(), msysmake.GeneratorName+" generator")
	},
}
