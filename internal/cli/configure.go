package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	msysmake "github.com/contriboss/msys-makefile-go"
	"github.com/contriboss/msys-makefile-go/internal/ctxlog"
)

var (
	defines      []string
	defsFile     string
	languages    []string
	trialCompile bool
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Resolve the MinGW toolchain and print the resulting definitions",
	Long: `Resolve the MinGW toolchain and print the resulting definitions.

Definitions are preloaded from the definitions file and from -D flags, in
that order. CMAKE_MAKE_PROGRAM is searched for in the MSYS install
directories when it is not given.`,
	Example: `  msysmake configure -D CMAKE_MAKE_PROGRAM=C:/MinGW/msys/1.0/bin/make.exe
  msysmake configure --defs cache.hcl --lang C`,
	RunE: func(cmd *cobra.Command, args []string) error {
		defs := msysmake.NewDefinitions()

		file := defsFile
		if file == "" {
			file = cfg.DefinitionsFile
		}
		if file != "" {
			if err := msysmake.LoadDefinitionsFile(file, defs); err != nil {
				return err
			}
		}

		for _, d := range defines {
			key, value, err := msysmake.ParseDefinition(d)
			if err != nil {
				return err
			}
			defs.Set(key, value)
		}

		langs := languages
		if len(langs) == 0 {
			langs = cfg.Languages
		}

		reporter := msysmake.NewLogReporter(logger)
		gen := newGenerator(reporter, trialCompile || cfg.TrialCompile)

		ctx := ctxlog.WithLogger(cmd.Context(), logger)
		if err := gen.EnableLanguage(ctx, langs, defs); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, key := range defs.Keys() {
			value, _ := defs.Get(key)
			fmt.Fprintf(out, "%s=%s\n", key, value)
		}

		if reporter.ErrorOccurred() {
			return fmt.Errorf("configuration incomplete: %d error(s) reported", len(reporter.Errors()))
		}
		return nil
	},
}

func init() {
	configureCmd.Flags().StringArrayVarP(&defines, "define", "D", nil, "set a definition (KEY[:TYPE]=VALUE)")
	configureCmd.Flags().StringVar(&defsFile, "defs", "", "HCL file of initial definitions")
	configureCmd.Flags().StringSliceVar(&languages, "lang", nil, "languages to enable (default from config: C, CXX)")
	configureCmd.Flags().BoolVar(&trialCompile, "trial-compile", false, "tolerate an incomplete toolchain")
}
