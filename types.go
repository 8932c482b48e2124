package msysmake

// Documentation is the help entry of a generator.
type Documentation struct {
	Name  string // Generator name as selected by the user
	Brief string // One-line summary
	Full  string // Longer explanation of the generated files' requirements
}

// Policy contains the shell and path conventions applied by a local
// generator.
//
// A Policy is fixed when the local generator is created and is only ever
// handed out by value:
//   - WindowsShell: quote and escape for cmd.exe instead of /bin/sh
//   - IgnoreLibPrefix: link libraries whether or not they carry a "lib" prefix
//   - PassMakeflags: forward $(MAKEFLAGS) to recursive make invocations
//   - UnixCD: run recursive make as "cd dir && make"
//   - ForceUnixPaths: emit forward-slash paths
type Policy struct {
	WindowsShell    bool
	IgnoreLibPrefix bool
	PassMakeflags   bool
	UnixCD          bool
	ForceUnixPaths  bool
}

// MSYSPolicy returns the conventions of MSYS makefiles.
func MSYSPolicy() Policy {
	return Policy{
		WindowsShell:    false,
		IgnoreLibPrefix: true,
		PassMakeflags:   false,
		UnixCD:          true,
		ForceUnixPaths:  true,
	}
}
