package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	msysmake "github.com/contriboss/msys-makefile-go"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Describe the MSYS makefile generator",
	Run: func(cmd *cobra.Command, args []string) {
		gen := newGenerator(msysmake.NewLogReporter(logger), false)
		doc := gen.Documentation()
		lg := gen.CreateLocalGenerator()
		policy := lg.Policy()
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%s\n  %s\n  %s\n\n", doc.Name, doc.Brief, doc.Full)
		fmt.Fprintf(out, "Shell:             %s\n", lg.Shell())
		fmt.Fprintf(out, "Unix paths:        %t\n", policy.ForceUnixPaths)
		fmt.Fprintf(out, "Ignore lib prefix: %t\n", policy.IgnoreLibPrefix)
		fmt.Fprintf(out, "Pass MAKEFLAGS:    %t\n", policy.PassMakeflags)
		fmt.Fprintf(out, "Unix cd:           %t\n", policy.UnixCD)
		fmt.Fprintf(out, "Recursive make:    %s\n", lg.RecursiveMakeCommand(".", "src/lib", "all")[0])
	},
}
