// Package msysmake provides the MSYS makefile generator: toolchain
// discovery and makefile conventions for MSYS shells driving a MinGW
// compiler distribution on Windows.
//
// # Toolchain Discovery
//
// Given the make program configured for a project, the generator searches
// for gcc and g++ in this order:
//   - <root>/bin, where <root> is the /mingw mount in the MSYS fstab found
//     at <make dir>/../etc/fstab
//   - the make program's own directory
//   - /mingw/bin
//   - c:/mingw/bin
//
// A compiler that cannot be found falls back to its bare name ("gcc.exe",
// "g++.exe") so the system PATH may still supply it at build time.
//
// # Basic Usage
//
//	gen := msysmake.NewGlobalGenerator(msysmake.Options{})
//
//	defs := msysmake.NewDefinitions()
//	defs.Set(msysmake.KeyMakeProgram, "C:/MinGW/msys/1.0/bin/make.exe")
//
//	if err := gen.EnableLanguage(ctx, []string{"C", "CXX"}, defs); err != nil {
//	    return err
//	}
//
//	cc, _ := defs.Get(msysmake.KeyGeneratorCC)
//
// # Architecture
//
//	GlobalGenerator
//	├── MakeProgramFinder (CMAKE_MAKE_PROGRAM)
//	├── ToolchainLocator (CMAKE_GENERATOR_CC, CMAKE_GENERATOR_CXX)
//	│   └── MountResolver (etc/fstab)
//	├── Engine (generic language enablement, CMAKE_AR)
//	└── LocalGenerator (MSYS Policy)
//
// # Platform Support
//
// Paths are handled with forward slashes on every host, so the search can
// be exercised against an fs.FS on Linux and macOS as well as on Windows.
package msysmake
