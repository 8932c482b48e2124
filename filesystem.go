package msysmake

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FileSystem is the read-only view of the disk used while searching for
// the toolchain. Paths use forward slashes and may carry a drive letter.
type FileSystem interface {
	Open(name string) (io.ReadCloser, error)
	Stat(name string) (fs.FileInfo, error)
}

// OSFileSystem reads the real disk.
type OSFileSystem struct{}

// Open opens the named file for reading
func (OSFileSystem) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// Stat returns the file info for name
func (OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Abs resolves name against the working directory.
func (OSFileSystem) Abs(name string) (string, error) {
	p, err := filepath.Abs(filepath.FromSlash(name))
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(p), nil
}

// absResolver is implemented by file systems that can anchor a relative
// name to the working directory.
type absResolver interface {
	Abs(name string) (string, error)
}

// isRooted reports whether p is absolute or carries a drive letter.
func isRooted(p string) bool {
	return path.IsAbs(p) || (len(p) >= 2 && p[1] == ':')
}

// FromFS adapts an fs.FS, such as testing/fstest.MapFS, to a FileSystem.
//
// Names are cleaned lexically and a leading slash is dropped, so
// "/mingw/bin/gcc.exe" maps to "mingw/bin/gcc.exe" and
// "C:/MinGW/bin/../etc/fstab" maps to "C:/MinGW/etc/fstab".
func FromFS(fsys fs.FS) FileSystem {
	return ioFS{fsys: fsys}
}

type ioFS struct {
	fsys fs.FS
}

func (f ioFS) Open(name string) (io.ReadCloser, error) {
	return f.fsys.Open(fsName(name))
}

func (f ioFS) Stat(name string) (fs.FileInfo, error) {
	return fs.Stat(f.fsys, fsName(name))
}

func fsName(name string) string {
	name = strings.TrimPrefix(path.Clean(slashPath(name)), "/")
	if name == "" {
		return "."
	}
	return name
}

// slashPath reads Windows separators as forward slashes.
func slashPath(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}
