package msysmake

import (
	"context"
	"os/exec"
	"strings"

	"github.com/contriboss/msys-makefile-go/internal/ctxlog"
)

// archiverName is the GNU archive program shipped with MinGW binutils
const archiverName = "ar"

// languageNone enables no language; it is accepted and skipped.
const languageNone = "NONE"

// generatorCompilerKeys maps each supported language to the definition the
// MSYS generator fills with its compiler.
var generatorCompilerKeys = map[string]string{
	"C":   KeyGeneratorCC,
	"CXX": KeyGeneratorCXX,
}

// CommandRunner runs a program and returns its standard output. It must
// stop the program when ctx is done.
type CommandRunner func(ctx context.Context, cmd string, args ...string) (string, error)

// ProbeEngine is a minimal generic engine for GNU toolchains.
//
// For each language it:
//  1. Takes CMAKE_<LANG>_COMPILER from the definitions, defaulting to the
//     generator's CMAKE_GENERATOR_CC / CMAKE_GENERATOR_CXX
//  2. Asks the compiler for its version with -dumpversion
//  3. Marks the language loaded
//
// It then looks for "ar" next to the compilers and on the system path and
// records it as CMAKE_AR, or CMAKE_AR-NOTFOUND.
type ProbeEngine struct {
	finder ExecutableFinder
	run    CommandRunner
}

// NewProbeEngine creates an engine. A nil run executes commands with
// runCommand.
func NewProbeEngine(finder ExecutableFinder, run CommandRunner) *ProbeEngine {
	if run == nil {
		run = runCommand
	}
	return &ProbeEngine{finder: finder, run: run}
}

// runCommand runs cmd directly, without a shell or variable expansion, and
// returns its standard output.
func runCommand(ctx context.Context, cmd string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, cmd, args...).Output()
	return string(out), err
}

// EnableLanguage implements Engine.
func (e *ProbeEngine) EnableLanguage(ctx context.Context, languages []string, defs *Definitions) error {
	logger := ctxlog.FromContext(ctx)

	for _, lang := range languages {
		if err := ctx.Err(); err != nil {
			return err
		}
		if lang == languageNone {
			continue
		}

		generatorKey, ok := generatorCompilerKeys[lang]
		if !ok {
			return &Error{Op: "enable language", Key: lang, Err: ErrUnsupportedLanguage}
		}

		compilerKey := "CMAKE_" + lang + "_COMPILER"
		if !defs.IsSet(compilerKey) {
			compiler, _ := defs.Get(generatorKey)
			if compiler == "" {
				defs.Set(compilerKey, NotFound(compilerKey))
				logger.Debug("No compiler for language.", "language", lang)
				continue
			}
			defs.Set(compilerKey, compiler)
		}

		compiler, _ := defs.Get(compilerKey)
		version, err := e.run(ctx, compiler, "-dumpversion")
		if err != nil {
			logger.Debug("Compiler version probe failed.", "language", lang, "compiler", compiler, "error", err)
		} else {
			defs.Set("CMAKE_"+lang+"_COMPILER_VERSION", strings.TrimSpace(version))
		}
		defs.Set("CMAKE_"+lang+"_COMPILER_LOADED", "1")
	}

	e.findArchiver(ctx, languages, defs)
	return nil
}

func (e *ProbeEngine) findArchiver(ctx context.Context, languages []string, defs *Definitions) {
	if defs.IsSet(KeyArchiver) {
		return
	}

	var dirs []string
	for _, lang := range languages {
		compilerKey := "CMAKE_" + lang + "_COMPILER"
		if !defs.IsSet(compilerKey) {
			continue
		}
		compiler, _ := defs.Get(compilerKey)
		if dir := ProgramDir(compiler); dir != "" {
			dirs = append(dirs, dir)
		}
	}

	if ar, ok := e.finder.FindProgram(archiverName, dirs); ok {
		defs.Set(KeyArchiver, ar)
		return
	}

	defs.Set(KeyArchiver, NotFound(KeyArchiver))
	ctxlog.FromContext(ctx).Debug("Archiver not found.", "locations", dirs)
}
