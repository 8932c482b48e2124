package msysmake

import (
	"path"
	"regexp"
	"strings"
)

// Shell programs used by generated makefiles.
const (
	posixShell   = "/bin/sh"
	windowsShell = "cmd.exe"
)

// makeVariable is how generated rules invoke make recursively
const makeVariable = "$(MAKE)"

// libNamePattern splits a library file name into an optional "lib" prefix
// and the link name.
var libNamePattern = regexp.MustCompile(`^(lib)?([^/]+?)\.(a|so|dll\.a|lib)$`)

// LocalGenerator is the per-directory generation strategy of the MSYS
// generator.
//
// It applies its Policy to the command lines and paths written into
// makefiles. The policy is fixed at creation.
type LocalGenerator struct {
	global *GlobalGenerator
	policy Policy
}

func newLocalGenerator(global *GlobalGenerator, policy Policy) *LocalGenerator {
	return &LocalGenerator{global: global, policy: policy}
}

// GlobalGenerator returns the generator that created lg.
func (lg *LocalGenerator) GlobalGenerator() *GlobalGenerator {
	return lg.global
}

// Policy returns a copy of the conventions lg applies.
func (lg *LocalGenerator) Policy() Policy {
	return lg.policy
}

// Shell returns the shell generated makefiles run their commands with.
func (lg *LocalGenerator) Shell() string {
	if lg.policy.WindowsShell {
		return windowsShell
	}
	return posixShell
}

// ConvertToOutputPath formats p for use on a makefile command line.
func (lg *LocalGenerator) ConvertToOutputPath(p string) string {
	if lg.policy.ForceUnixPaths {
		p = slashPath(p)
	}

	if lg.policy.WindowsShell {
		p = strings.ReplaceAll(p, "/", `\`)
		if strings.Contains(p, " ") {
			p = `"` + p + `"`
		}
		return p
	}

	return strings.ReplaceAll(p, " ", `\ `)
}

// RecursiveMakeCommand returns the command lines that build target in dir
// from a rule running in fromDir.
//
// With UnixCD a single "cd dir && $(MAKE) target" line is produced, since
// each line runs in its own shell. Otherwise the lines change into dir and
// back to fromDir explicitly.
func (lg *LocalGenerator) RecursiveMakeCommand(fromDir, dir, target string) []string {
	invoke := makeVariable
	if lg.policy.PassMakeflags {
		invoke += " -$(MAKEFLAGS)"
	}
	if target != "" {
		invoke += " " + target
	}

	cd := "cd " + lg.ConvertToOutputPath(dir)
	if lg.policy.UnixCD {
		return []string{cd + " && " + invoke}
	}

	return []string{cd, invoke, "cd " + lg.ConvertToOutputPath(fromDir)}
}

// LinkItem returns the linker arguments for the library file at lib.
//
// Archives and shared libraries become "-L<dir> -l<name>". Without
// IgnoreLibPrefix only files named lib<name>.<ext> are shortened; other
// files are passed by full path.
func (lg *LocalGenerator) LinkItem(lib string) string {
	dir, file := path.Split(slashPath(lib))

	m := libNamePattern.FindStringSubmatch(file)
	if m == nil || (m[1] == "" && !lg.policy.IgnoreLibPrefix) {
		return lg.ConvertToOutputPath(lib)
	}

	item := "-l" + m[2]
	if dir == "" {
		return item
	}

	if d := strings.TrimSuffix(dir, "/"); d != "" {
		dir = d
	}
	return "-L" + lg.ConvertToOutputPath(dir) + " " + item
}
