package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	msysmake "github.com/contriboss/msys-makefile-go"
)

var makePath string

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Show where the compilers for a make program are searched and found",
	RunE: func(cmd *cobra.Command, args []string) error {
		locator := newGenerator(msysmake.NewLogReporter(logger), false).Locator()
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Search locations:")
		for i, dir := range locator.SearchLocations(makePath) {
			fmt.Fprintf(out, "  %d. %s\n", i+1, dir)
		}

		compilers := locator.LocateCompilers(makePath)
		fmt.Fprintf(out, "%s=%s%s\n", msysmake.KeyGeneratorCC, compilers.C.Path, fallbackNote(compilers.C))
		fmt.Fprintf(out, "%s=%s%s\n", msysmake.KeyGeneratorCXX, compilers.CXX.Path, fallbackNote(compilers.CXX))
		return nil
	},
}

func fallbackNote(p msysmake.Program) string {
	if p.Found {
		return ""
	}
	return " (not found, using PATH)"
}

func init() {
	locateCmd.Flags().StringVar(&makePath, "make", "", "path of the make program")
	_ = locateCmd.MarkFlagRequired("make")
}
