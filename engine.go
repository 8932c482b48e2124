package msysmake

import "context"

// Engine is the generic POSIX makefile generation engine that the MSYS
// generator configures and delegates to.
//
// The MSYS generator composes an Engine rather than extending one: it
// prepares the definitions, hands them to EnableLanguage unchanged, and
// checks the result afterwards.
//
// # Engine Contract
//
//  1. The generator has already set CMAKE_MAKE_PROGRAM, CMAKE_GENERATOR_CC
//     and CMAKE_GENERATOR_CXX.
//  2. EnableLanguage probes the compilers for each requested language and
//     records what it learns in defs, including CMAKE_AR.
//  3. A returned error aborts the configuration run.
//
// # Example Implementation
//
//	type NoopEngine struct{}
//
//	func (NoopEngine) EnableLanguage(ctx context.Context, languages []string, defs *Definitions) error {
//	    defs.Set(KeyArchiver, "ar")
//	    return nil
//	}
type Engine interface {
	// EnableLanguage enables languages (e.g. "C", "CXX") using and
	// updating defs.
	EnableLanguage(ctx context.Context, languages []string, defs *Definitions) error
}
