package msysmake

import (
	"os"
	"path"
	"path/filepath"
)

// DefaultExecutableSuffix is the executable extension of the MSYS/MinGW host.
const DefaultExecutableSuffix = ".exe"

// ExecutableFinder locates a program in an ordered list of directories.
//
// Directories are tried in order and the first one holding the program
// wins. Empty directory entries are skipped.
//
// # Thread Safety
//
// Implementations should be safe for concurrent use once constructed.
type ExecutableFinder interface {
	// FindProgram returns the path of the program and true, or "" and
	// false when no directory holds it.
	FindProgram(name string, locations []string) (string, bool)
}

// PathFinder is the FileSystem-backed ExecutableFinder.
//
// For each directory it probes name+suffix first and then the bare name,
// so "gcc" matches "gcc.exe" on an MSYS host. After the caller's
// locations it falls back to the configured system path.
type PathFinder struct {
	fs         FileSystem
	suffix     string
	systemPath []string
}

// NewPathFinder creates a finder over fsys. systemPath is searched after
// the caller's locations; pass nil to search only the given locations.
func NewPathFinder(fsys FileSystem, suffix string, systemPath []string) *PathFinder {
	return &PathFinder{
		fs:         fsys,
		suffix:     suffix,
		systemPath: systemPath,
	}
}

// SystemPath returns the directories of the PATH environment variable.
func SystemPath() []string {
	return filepath.SplitList(os.Getenv("PATH"))
}

// Suffix returns the executable extension this finder appends.
func (f *PathFinder) Suffix() string {
	return f.suffix
}

// FindProgram implements ExecutableFinder.
func (f *PathFinder) FindProgram(name string, locations []string) (string, bool) {
	dirs := make([]string, 0, len(locations)+len(f.systemPath))
	dirs = append(dirs, locations...)
	dirs = append(dirs, f.systemPath...)

	candidates := f.candidates(name)
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		for _, candidate := range candidates {
			p := path.Join(slashPath(dir), candidate)
			if f.isProgram(p) {
				return f.abs(p), true
			}
		}
	}

	return "", false
}

func (f *PathFinder) candidates(name string) []string {
	if f.suffix == "" || MatchesExtension(name, f.suffix) {
		return []string{name}
	}
	return []string{name + f.suffix, name}
}

// abs anchors a hit found through a relative directory, such as a "."
// entry on the system path, so the result stays valid after a cd.
func (f *PathFinder) abs(p string) string {
	if isRooted(p) {
		return p
	}
	if r, ok := f.fs.(absResolver); ok {
		if a, err := r.Abs(p); err == nil {
			return a
		}
	}
	return p
}

func (f *PathFinder) isProgram(p string) bool {
	info, err := f.fs.Stat(p)
	return err == nil && !info.IsDir()
}
