package msysmake

import (
	"bufio"
	"io"
)

// MinGWMountPoint is the MSYS mount point of the MinGW distribution root.
const MinGWMountPoint = "/mingw"

// mountTableRel is the location of the MSYS mount table relative to a
// directory next to it, usually the MSYS bin directory.
const mountTableRel = "/../etc/fstab"

// MountEntry is one (source, mount point) pair of a mount table.
type MountEntry struct {
	Source     string
	MountPoint string
}

// MountResolver looks up mount points in the MSYS mount table.
type MountResolver struct {
	fs FileSystem
}

// NewMountResolver creates a resolver reading from fsys.
func NewMountResolver(fsys FileSystem) *MountResolver {
	return &MountResolver{fs: fsys}
}

// MountTablePath returns the mount table consulted for baseDir.
func MountTablePath(baseDir string) string {
	return baseDir + mountTableRel
}

// ResolveMount returns the bin directory under the source path bound to
// mountPoint in baseDir/../etc/fstab.
//
// A missing or unreadable table is an ordinary miss, not an error. Only
// the first matching entry is considered.
func (r *MountResolver) ResolveMount(baseDir, mountPoint string) (string, bool) {
	f, err := r.fs.Open(MountTablePath(baseDir))
	if err != nil {
		return "", false
	}
	defer f.Close()

	var found string
	ok := scanMountTable(f, func(e MountEntry) bool {
		if e.MountPoint == mountPoint {
			found = e.Source + "/bin"
			return false
		}
		return true
	})
	if ok {
		return "", false
	}
	return found, true
}

// ScanMountTable reads every entry of a mount table.
//
// The table is a flat sequence of whitespace-separated tokens taken two
// at a time, regardless of line breaks. A trailing unpaired token is
// ignored. There is no comment or escape syntax.
func ScanMountTable(r io.Reader) []MountEntry {
	var entries []MountEntry
	scanMountTable(r, func(e MountEntry) bool {
		entries = append(entries, e)
		return true
	})
	return entries
}

// scanMountTable calls fn for each entry until fn returns false. It reports
// whether the whole table was consumed.
func scanMountTable(r io.Reader, fn func(MountEntry) bool) bool {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		source := scanner.Text()
		if !scanner.Scan() {
			break
		}
		if !fn(MountEntry{Source: source, MountPoint: scanner.Text()}) {
			return false
		}
	}

	return true
}
