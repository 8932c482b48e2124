package msysmake

// makeProgram is the MSYS make executable name
const makeProgram = "make"

// msysMakeLocations are the install directories searched for the MSYS make
// program, newest layout last.
var msysMakeLocations = []string{
	"c:/msys/1.0/bin",
	"/msys/1.0/bin",
	"c:/msys64/usr/bin",
	"/usr/bin",
}

// MakeProgramFinder resolves CMAKE_MAKE_PROGRAM for MSYS.
type MakeProgramFinder struct {
	finder    ExecutableFinder
	locations []string
}

// NewMakeProgramFinder creates a finder searching the MSYS install
// directories and then extra.
func NewMakeProgramFinder(finder ExecutableFinder, extra ...string) *MakeProgramFinder {
	locations := append(append([]string{}, msysMakeLocations...), extra...)
	return &MakeProgramFinder{finder: finder, locations: locations}
}

// FindMakeProgram sets CMAKE_MAKE_PROGRAM when it is not already set and
// make can be found. A miss leaves the definitions untouched.
func (f *MakeProgramFinder) FindMakeProgram(defs *Definitions) {
	if defs.IsSet(KeyMakeProgram) {
		return
	}
	if p, ok := f.finder.FindProgram(makeProgram, f.locations); ok {
		defs.Set(KeyMakeProgram, p)
	}
}
