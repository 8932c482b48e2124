package msysmake

import (
	"path"
	"strings"
)

// MatchesExtension checks if a filename has any of the given extensions.
//
// This is a case-insensitive check, so "GCC.EXE" matches ".exe".
//
// # Example
//
//	if MatchesExtension(name, ".exe", ".com") {
//	    // already carries an executable suffix
//	}
func MatchesExtension(filename string, extensions ...string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(strings.ToLower(filename), strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// ProgramDir returns the directory holding program, reading Windows
// separators as forward slashes. A bare command name has no directory.
//
//	ProgramDir(`C:\MinGW\bin\make.exe`) // "C:/MinGW/bin"
//	ProgramDir("make")                  // ""
func ProgramDir(program string) string {
	p := slashPath(program)
	if !strings.Contains(p, "/") {
		return ""
	}
	return path.Dir(p)
}
