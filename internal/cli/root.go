package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	msysmake "github.com/contriboss/msys-makefile-go"
	"github.com/contriboss/msys-makefile-go/internal/config"
)

const version = "0.1.0"

var (
	cfgFile   string
	logLevel  string
	logFormat string
	cfg       *config.Config
	logger    *slog.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "msysmake",
	Short: "MSYS makefile generator toolchain setup",
	Long: `msysmake - MSYS makefile generator toolchain setup

Locates the MinGW compilers that belong with an MSYS make program,
records them as build definitions, and describes the conventions of
generated MSYS makefiles.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initConfig(cmd)
	},
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/msysmake/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text, json)")

	// Add commands
	rootCmd.AddCommand(configureCmd)
	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(mountCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig(cmd *cobra.Command) {
	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error loading config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	// Override config with flags
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}

	logger = newLogger(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
}

// newGenerator builds a generator over the real disk from the loaded
// configuration.
func newGenerator(reporter msysmake.Reporter, trialCompile bool) *msysmake.GlobalGenerator {
	fsys := msysmake.OSFileSystem{}

	var systemPath []string
	if cfg.SearchSystemPath {
		systemPath = msysmake.SystemPath()
	}

	return msysmake.NewGlobalGenerator(msysmake.Options{
		FileSystem:     fsys,
		Suffix:         cfg.ExecutableSuffix,
		Finder:         msysmake.NewPathFinder(fsys, cfg.ExecutableSuffix, systemPath),
		Reporter:       reporter,
		TrialCompile:   func() bool { return trialCompile },
		MakeSearchDirs: cfg.MakeSearchDirs,
	})
}
