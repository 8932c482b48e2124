package msysmake

// Well-known MinGW install locations, tried after the make program's own
// distribution.
const (
	mingwBinDir      = "/mingw/bin"
	mingwDriveBinDir = "c:/mingw/bin"
)

// Compiler program names as shipped by MinGW.
const (
	cCompilerName   = "gcc"
	cxxCompilerName = "g++"
)

// Program is a tool chosen for the project: a discovered path, or a bare
// fallback command name when Found is false.
type Program struct {
	Path  string
	Found bool
}

// Compilers holds the C and C++ compilers chosen for a project.
type Compilers struct {
	C   Program
	CXX Program
}

// ToolchainLocator finds the MinGW compilers that belong with a make program.
type ToolchainLocator struct {
	mounts *MountResolver
	finder ExecutableFinder
	suffix string
}

// NewToolchainLocator creates a locator. suffix is the executable
// extension appended to fallback names.
func NewToolchainLocator(mounts *MountResolver, finder ExecutableFinder, suffix string) *ToolchainLocator {
	return &ToolchainLocator{
		mounts: mounts,
		finder: finder,
		suffix: suffix,
	}
}

// SearchLocations returns the ordered directories searched for compilers:
//  1. the bin directory of the /mingw mount next to the make program
//  2. the make program's own directory
//  3. /mingw/bin
//  4. c:/mingw/bin
//
// The first entry is omitted when the mount table has no /mingw entry, and
// the second when makeProgram is a bare command name. A bare name reads
// the mount table from /../etc/fstab.
func (l *ToolchainLocator) SearchLocations(makeProgram string) []string {
	makeDir := ProgramDir(makeProgram)

	var locations []string
	if mingw, ok := l.mounts.ResolveMount(makeDir, MinGWMountPoint); ok {
		locations = append(locations, mingw)
	}
	if makeDir != "" {
		locations = append(locations, makeDir)
	}

	return append(locations, mingwBinDir, mingwDriveBinDir)
}

// LocateCompilers resolves gcc and g++ for makeProgram.
//
// It never fails: a compiler missing from every location falls back to
// its bare executable name so the system PATH can still supply it at
// build time.
func (l *ToolchainLocator) LocateCompilers(makeProgram string) Compilers {
	locations := l.SearchLocations(makeProgram)

	return Compilers{
		C:   l.locate(cCompilerName, locations),
		CXX: l.locate(cxxCompilerName, locations),
	}
}

func (l *ToolchainLocator) locate(name string, locations []string) Program {
	if p, ok := l.finder.FindProgram(name, locations); ok {
		return Program{Path: p, Found: true}
	}
	return Program{Path: name + l.suffix}
}
