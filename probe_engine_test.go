package msysmake

import (
	"context"
	"errors"
	"runtime"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner answers -dumpversion for known compilers.
func fakeRunner(versions map[string]string) (CommandRunner, *[]string) {
	var calls []string
	return func(ctx context.Context, cmd string, args ...string) (string, error) {
		calls = append(calls, cmd)
		if v, ok := versions[cmd]; ok {
			return v + "\n", nil
		}
		return "", errors.New("exec: " + cmd + ": not found")
	}, &calls
}

func TestProbeEngine_EnableLanguage(t *testing.T) {
	fsys := FromFS(fstest.MapFS{
		"C:/MinGW/bin/gcc.exe": exe(),
		"C:/MinGW/bin/g++.exe": exe(),
		"C:/MinGW/bin/ar.exe":  exe(),
	})
	run, _ := fakeRunner(map[string]string{
		"C:/MinGW/bin/gcc.exe": "3.4.5",
		"C:/MinGW/bin/g++.exe": "3.4.5",
	})
	engine := NewProbeEngine(NewPathFinder(fsys, DefaultExecutableSuffix, nil), run)

	defs := NewDefinitions()
	defs.Set(KeyGeneratorCC, "C:/MinGW/bin/gcc.exe")
	defs.Set(KeyGeneratorCXX, "C:/MinGW/bin/g++.exe")

	require.NoError(t, engine.EnableLanguage(context.Background(), []string{"C", "CXX"}, defs))

	assert.Equal(t, map[string]string{
		KeyGeneratorCC:               "C:/MinGW/bin/gcc.exe",
		KeyGeneratorCXX:              "C:/MinGW/bin/g++.exe",
		"CMAKE_C_COMPILER":           "C:/MinGW/bin/gcc.exe",
		"CMAKE_C_COMPILER_VERSION":   "3.4.5",
		"CMAKE_C_COMPILER_LOADED":    "1",
		"CMAKE_CXX_COMPILER":         "C:/MinGW/bin/g++.exe",
		"CMAKE_CXX_COMPILER_VERSION": "3.4.5",
		"CMAKE_CXX_COMPILER_LOADED":  "1",
		KeyArchiver:                  "C:/MinGW/bin/ar.exe",
	}, defs.Snapshot())
}

func TestProbeEngine_UserCompilerWins(t *testing.T) {
	run, calls := fakeRunner(nil)
	engine := NewProbeEngine(NewPathFinder(FromFS(fstest.MapFS{}), DefaultExecutableSuffix, nil), run)

	defs := NewDefinitions()
	defs.Set(KeyGeneratorCC, "gcc.exe")
	defs.Set("CMAKE_C_COMPILER", "D:/clang/bin/clang.exe")

	require.NoError(t, engine.EnableLanguage(context.Background(), []string{"C"}, defs))

	compiler, _ := defs.Get("CMAKE_C_COMPILER")
	assert.Equal(t, "D:/clang/bin/clang.exe", compiler)
	assert.Equal(t, []string{"D:/clang/bin/clang.exe"}, *calls)

	_, ok := defs.Get("CMAKE_C_COMPILER_VERSION")
	assert.False(t, ok, "failed probe must not record a version")
}

func TestProbeEngine_ArchiverNotFound(t *testing.T) {
	run, _ := fakeRunner(nil)
	engine := NewProbeEngine(NewPathFinder(FromFS(fstest.MapFS{}), DefaultExecutableSuffix, nil), run)

	defs := NewDefinitions()
	defs.Set(KeyGeneratorCC, "gcc.exe")

	require.NoError(t, engine.EnableLanguage(context.Background(), []string{"C"}, defs))

	ar, _ := defs.Get(KeyArchiver)
	assert.Equal(t, "CMAKE_AR-NOTFOUND", ar)
	assert.False(t, defs.IsSet(KeyArchiver))
}

func TestProbeEngine_KeepsConfiguredArchiver(t *testing.T) {
	run, _ := fakeRunner(nil)
	engine := NewProbeEngine(NewPathFinder(FromFS(fstest.MapFS{}), DefaultExecutableSuffix, nil), run)

	defs := NewDefinitions()
	defs.Set(KeyArchiver, "C:/tools/ar.exe")

	require.NoError(t, engine.EnableLanguage(context.Background(), []string{"NONE"}, defs))

	ar, _ := defs.Get(KeyArchiver)
	assert.Equal(t, "C:/tools/ar.exe", ar)
}

func TestProbeEngine_UnsupportedLanguage(t *testing.T) {
	run, _ := fakeRunner(nil)
	engine := NewProbeEngine(NewPathFinder(FromFS(fstest.MapFS{}), DefaultExecutableSuffix, nil), run)

	err := engine.EnableLanguage(context.Background(), []string{"Fortran"}, NewDefinitions())

	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
	assert.Contains(t, err.Error(), "Fortran")
}

func TestProbeEngine_Canceled(t *testing.T) {
	run, _ := fakeRunner(nil)
	engine := NewProbeEngine(NewPathFinder(FromFS(fstest.MapFS{}), DefaultExecutableSuffix, nil), run)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := engine.EnableLanguage(ctx, []string{"C"}, NewDefinitions())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProbeEngine_WithGenerator(t *testing.T) {
	files := mingwInstall()
	files["C:/MinGW/bin/ar.exe"] = exe()
	fsys := FromFS(files)
	finder := NewPathFinder(fsys, DefaultExecutableSuffix, nil)
	run, _ := fakeRunner(map[string]string{"C:/MinGW/bin/gcc.exe": "3.4.5"})
	reporter := &recordingReporter{}

	gen := NewGlobalGenerator(Options{
		FileSystem: fsys,
		Finder:     finder,
		Engine:     NewProbeEngine(finder, run),
		Reporter:   reporter,
	})

	defs := NewDefinitions()
	defs.Set(KeyMakeProgram, "C:/MinGW/bin/make.exe")

	require.NoError(t, gen.EnableLanguage(context.Background(), []string{"C"}, defs))

	compiler, _ := defs.Get("CMAKE_C_COMPILER")
	ar, _ := defs.Get(KeyArchiver)
	assert.Equal(t, "C:/MinGW/bin/gcc.exe", compiler)
	assert.Equal(t, "C:/MinGW/bin/ar.exe", ar)
	assert.Empty(t, reporter.errs)
}

func TestRunCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a POSIX echo")
	}

	out, err := runCommand(context.Background(), "echo", "C:/$HOME/gcc.exe")
	require.NoError(t, err)
	assert.Equal(t, "C:/$HOME/gcc.exe\n", out)
}

func TestRunCommand_Canceled(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a POSIX sleep")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runCommand(ctx, "sleep", "10")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProbeEngine_PassesContextToRunner(t *testing.T) {
	type ctxKey struct{}
	var seen any
	run := func(ctx context.Context, cmd string, args ...string) (string, error) {
		seen = ctx.Value(ctxKey{})
		return "3.4.5", nil
	}
	engine := NewProbeEngine(NewPathFinder(FromFS(fstest.MapFS{}), DefaultExecutableSuffix, nil), run)

	defs := NewDefinitions()
	defs.Set(KeyGeneratorCC, "gcc.exe")
	ctx := context.WithValue(context.Background(), ctxKey{}, "configure")

	require.NoError(t, engine.EnableLanguage(ctx, []string{"C"}, defs))
	assert.Equal(t, "configure", seen)
}
