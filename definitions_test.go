package msysmake

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitions_IsSet(t *testing.T) {
	defs := NewDefinitions()
	defs.Set("EMPTY", "")
	defs.Set("MISSING_AR", NotFound(KeyArchiver))
	defs.Set("BARE_NOTFOUND", "NOTFOUND")
	defs.Set(KeyArchiver, "C:/MinGW/bin/ar.exe")

	assert.False(t, defs.IsSet("UNDEFINED"))
	assert.False(t, defs.IsSet("EMPTY"))
	assert.False(t, defs.IsSet("MISSING_AR"))
	assert.False(t, defs.IsSet("BARE_NOTFOUND"))
	assert.True(t, defs.IsSet(KeyArchiver))
}

func TestDefinitions_GetRequired(t *testing.T) {
	defs := NewDefinitions()
	defs.Set(KeyMakeProgram, "C:/msys/1.0/bin/make.exe")
	defs.Set(KeyArchiver, NotFound(KeyArchiver))

	value, err := defs.GetRequired(KeyMakeProgram)
	require.NoError(t, err)
	assert.Equal(t, "C:/msys/1.0/bin/make.exe", value)

	for _, key := range []string{KeyGeneratorCC, KeyArchiver} {
		_, err := defs.GetRequired(key)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingRequiredValue))

		var e *Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, key, e.Key)
	}
}

func TestDefinitions_KeysAndSnapshot(t *testing.T) {
	defs := NewDefinitions()
	defs.Set("B", "2")
	defs.Set("A", "1")
	defs.Set("B", "3")

	assert.Equal(t, []string{"A", "B"}, defs.Keys())

	snap := defs.Snapshot()
	assert.Equal(t, map[string]string{"A": "1", "B": "3"}, snap)

	snap["A"] = "changed"
	value, _ := defs.Get("A")
	assert.Equal(t, "1", value)
}

func TestParseDefinition(t *testing.T) {
	testCases := []struct {
		arg     string
		key     string
		value   string
		wantErr bool
	}{
		{"CMAKE_AR=C:/MinGW/bin/ar.exe", "CMAKE_AR", "C:/MinGW/bin/ar.exe", false},
		{"CMAKE_MAKE_PROGRAM:FILEPATH=C:/msys/1.0/bin/make.exe", "CMAKE_MAKE_PROGRAM", "C:/msys/1.0/bin/make.exe", false},
		{"FLAGS=-O2 -DNDEBUG=1", "FLAGS", "-O2 -DNDEBUG=1", false},
		{"EMPTY=", "EMPTY", "", false},
		{"NOVALUE", "", "", true},
		{"=value", "", "", true},
		{":STRING=value", "", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.arg, func(t *testing.T) {
			key, value, err := ParseDefinition(tc.arg)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDefinition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.key, key)
			assert.Equal(t, tc.value, value)
		})
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadDefinitionsFile(t *testing.T) {
	p := writeFile(t, "cache.hcl", `
CMAKE_MAKE_PROGRAM = "C:/msys/1.0/bin/make.exe"
CMAKE_AR           = "C:/MinGW/bin/ar.exe"
BUILD_JOBS         = 4
VERBOSE            = true
SHARED             = false
`)

	defs := NewDefinitions()
	require.NoError(t, LoadDefinitionsFile(p, defs))

	assert.Equal(t, map[string]string{
		"CMAKE_MAKE_PROGRAM": "C:/msys/1.0/bin/make.exe",
		"CMAKE_AR":           "C:/MinGW/bin/ar.exe",
		"BUILD_JOBS":         "4",
		"VERBOSE":            "ON",
		"SHARED":             "OFF",
	}, defs.Snapshot())
}

func TestLoadDefinitionsFile_Errors(t *testing.T) {
	t.Run("syntax error", func(t *testing.T) {
		p := writeFile(t, "bad.hcl", `CMAKE_AR = `)
		assert.Error(t, LoadDefinitionsFile(p, NewDefinitions()))
	})

	t.Run("blocks are not definitions", func(t *testing.T) {
		p := writeFile(t, "block.hcl", "toolchain {\n  cc = \"gcc\"\n}\n")
		assert.Error(t, LoadDefinitionsFile(p, NewDefinitions()))
	})

	t.Run("unsupported type", func(t *testing.T) {
		p := writeFile(t, "list.hcl", `LANGS = ["C", "CXX"]`)
		err := LoadDefinitionsFile(p, NewDefinitions())
		assert.ErrorIs(t, err, ErrInvalidDefinition)
	})

	t.Run("missing file", func(t *testing.T) {
		err := LoadDefinitionsFile(filepath.Join(t.TempDir(), "absent.hcl"), NewDefinitions())
		assert.Error(t, err)
	})
}
