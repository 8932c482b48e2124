package msysmake

import (
	"context"
	"fmt"

	"github.com/contriboss/msys-makefile-go/internal/ctxlog"
)

// GeneratorName is the name users select this generator by.
const GeneratorName = "MSYS Makefiles"

// Options configures a GlobalGenerator. Zero values select the defaults
// noted on each field.
type Options struct {
	// FileSystem is searched for the toolchain. Default: OSFileSystem.
	FileSystem FileSystem

	// Suffix is the host executable extension. Default: ".exe".
	Suffix string

	// Finder locates programs. Default: a PathFinder over FileSystem that
	// also searches the system PATH.
	Finder ExecutableFinder

	// Engine is the generic makefile engine enabling languages.
	// Default: a ProbeEngine using Finder.
	Engine Engine

	// Reporter receives non-fatal diagnostics. Default: a LogReporter.
	Reporter Reporter

	// TrialCompile reports whether the current run is a trial compile,
	// which tolerates an incomplete toolchain. Default: never.
	TrialCompile func() bool

	// MakeSearchDirs are extra directories searched for make.
	MakeSearchDirs []string
}

// GlobalGenerator is the MSYS makefile generator.
//
// It finds the MinGW toolchain for the configured make program, records it
// in the definitions, and delegates language enablement to the generic
// engine. Local generators it creates carry the MSYS Policy.
//
// # Usage
//
//	gen := msysmake.NewGlobalGenerator(msysmake.Options{})
//	defs := msysmake.NewDefinitions()
//	defs.Set(msysmake.KeyMakeProgram, "C:/MinGW/msys/1.0/bin/make.exe")
//
//	if err := gen.EnableLanguage(ctx, []string{"C", "CXX"}, defs); err != nil {
//	    return err
//	}
//	lg := gen.CreateLocalGenerator()
//
// # Thread Safety
//
// GlobalGenerator is NOT thread-safe. Configuration runs once, serially,
// before any parallel build work.
type GlobalGenerator struct {
	engine       Engine
	reporter     Reporter
	trialCompile func() bool
	locator      *ToolchainLocator
	makeFinder   *MakeProgramFinder
}

// NewGlobalGenerator creates the generator, filling in defaults for unset
// options.
func NewGlobalGenerator(opts Options) *GlobalGenerator {
	if opts.FileSystem == nil {
		opts.FileSystem = OSFileSystem{}
	}
	if opts.Suffix == "" {
		opts.Suffix = DefaultExecutableSuffix
	}
	if opts.Finder == nil {
		opts.Finder = NewPathFinder(opts.FileSystem, opts.Suffix, SystemPath())
	}
	if opts.Engine == nil {
		opts.Engine = NewProbeEngine(opts.Finder, nil)
	}
	if opts.Reporter == nil {
		opts.Reporter = NewLogReporter(nil)
	}
	if opts.TrialCompile == nil {
		opts.TrialCompile = func() bool { return false }
	}

	return &GlobalGenerator{
		engine:       opts.Engine,
		reporter:     opts.Reporter,
		trialCompile: opts.TrialCompile,
		locator:      NewToolchainLocator(NewMountResolver(opts.FileSystem), opts.Finder, opts.Suffix),
		makeFinder:   NewMakeProgramFinder(opts.Finder, opts.MakeSearchDirs...),
	}
}

// Name returns the generator name.
func (g *GlobalGenerator) Name() string {
	return GeneratorName
}

// ForceUnixPaths reports that generated files use forward-slash paths.
func (g *GlobalGenerator) ForceUnixPaths() bool {
	return true
}

// Locator returns the toolchain locator used by EnableLanguage.
func (g *GlobalGenerator) Locator() *ToolchainLocator {
	return g.locator
}

// Documentation returns the generator's help entry.
func (g *GlobalGenerator) Documentation() Documentation {
	return Documentation{
		Name:  g.Name(),
		Brief: "Generates MSYS makefiles.",
		Full:  "The makefiles use /bin/sh as the shell.  They require msys to be installed on the machine.",
	}
}

// CreateLocalGenerator returns a local generator bound to g and configured
// with MSYSPolicy.
func (g *GlobalGenerator) CreateLocalGenerator() *LocalGenerator {
	return newLocalGenerator(g, MSYSPolicy())
}

// EnableLanguage prepares the MSYS toolchain and enables languages.
//
// # Process Flow
//
//  1. Resolve CMAKE_MAKE_PROGRAM if it is not already set
//  2. Require CMAKE_MAKE_PROGRAM; a missing value ends the run with an
//     error wrapping ErrMissingRequiredValue and defs untouched
//  3. Locate gcc and g++ next to make and record them as
//     CMAKE_GENERATOR_CC and CMAKE_GENERATOR_CXX
//  4. Delegate to the engine with languages and defs unchanged
//  5. Report ErrToolchainIncomplete when CMAKE_AR is still unset, unless
//     this is a trial compile
//
// The report in step 5 is not returned: generation goes on and the user
// fixes CMAKE_AR before building.
func (g *GlobalGenerator) EnableLanguage(ctx context.Context, languages []string, defs *Definitions) error {
	logger := ctxlog.FromContext(ctx)

	g.makeFinder.FindMakeProgram(defs)
	makeProgram, err := defs.GetRequired(KeyMakeProgram)
	if err != nil {
		return fmt.Errorf("enable language: %w", err)
	}

	compilers := g.locator.LocateCompilers(makeProgram)
	logger.Debug("Located MinGW compilers.",
		"make_program", makeProgram,
		"cc", compilers.C.Path, "cc_found", compilers.C.Found,
		"cxx", compilers.CXX.Path, "cxx_found", compilers.CXX.Found)

	setProgram(defs, KeyGeneratorCC, compilers.C)
	setProgram(defs, KeyGeneratorCXX, compilers.CXX)

	if err := g.engine.EnableLanguage(ctx, languages, defs); err != nil {
		return fmt.Errorf("enable language: %w", err)
	}

	if !defs.IsSet(KeyArchiver) && !g.trialCompile() {
		g.reporter.Report(&Error{
			Op:  "enable language",
			Key: KeyArchiver,
			Err: fmt.Errorf("%w: archive program was not found, please set %s to the archive program", ErrToolchainIncomplete, KeyArchiver),
		})
	}

	return nil
}

// setProgram records p under key. A fallback name never replaces a value
// resolved by an earlier run.
func setProgram(defs *Definitions, key string, p Program) {
	if !p.Found && defs.IsSet(key) {
		return
	}
	defs.Set(key, p.Path)
}
