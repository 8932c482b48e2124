package msysmake

import (
	"sort"
	"strings"
)

// Definition keys read and written during language enablement.
const (
	KeyMakeProgram  = "CMAKE_MAKE_PROGRAM"
	KeyGeneratorCC  = "CMAKE_GENERATOR_CC"
	KeyGeneratorCXX = "CMAKE_GENERATOR_CXX"
	KeyArchiver     = "CMAKE_AR"
)

// notFoundSuffix marks a definition whose lookup ran but found nothing,
// e.g. "CMAKE_AR-NOTFOUND".
const notFoundSuffix = "NOTFOUND"

// Definitions is the build-configuration key/value store.
//
// A single Definitions value is created per generation run and passed
// explicitly to every component that reads or writes configuration:
//   - the make program finder sets CMAKE_MAKE_PROGRAM
//   - the generator writes CMAKE_GENERATOR_CC and CMAKE_GENERATOR_CXX
//   - the engine fills in compilers, versions and CMAKE_AR
//
// # Thread Safety
//
// Definitions is NOT thread-safe. Configuration runs serially before any
// parallel work begins.
type Definitions struct {
	values map[string]string
}

// NewDefinitions creates an empty store.
func NewDefinitions() *Definitions {
	return &Definitions{values: make(map[string]string)}
}

// Set stores value under key, replacing any previous value.
func (d *Definitions) Set(key, value string) {
	d.values[key] = value
}

// Get returns the raw value stored under key and whether the key is defined.
func (d *Definitions) Get(key string) (string, bool) {
	value, ok := d.values[key]
	return value, ok
}

// IsSet reports whether key holds a usable value: defined, non-empty and
// not a NOTFOUND marker.
func (d *Definitions) IsSet(key string) bool {
	value, ok := d.values[key]
	if !ok || value == "" {
		return false
	}
	return !isNotFound(value)
}

// GetRequired returns the value for key or an *Error wrapping
// ErrMissingRequiredValue when the key is undefined or NOTFOUND.
func (d *Definitions) GetRequired(key string) (string, error) {
	value, ok := d.values[key]
	if !ok || isNotFound(value) {
		return "", &Error{Op: "get required definition", Key: key, Err: ErrMissingRequiredValue}
	}
	return value, nil
}

// Keys returns the defined keys in sorted order.
func (d *Definitions) Keys() []string {
	keys := make([]string, 0, len(d.values))
	for key := range d.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns a copy of all definitions.
func (d *Definitions) Snapshot() map[string]string {
	out := make(map[string]string, len(d.values))
	for key, value := range d.values {
		out[key] = value
	}
	return out
}

// NotFound returns the NOTFOUND marker for key.
func NotFound(key string) string {
	return key + "-" + notFoundSuffix
}

func isNotFound(value string) bool {
	return value == notFoundSuffix || strings.HasSuffix(value, "-"+notFoundSuffix)
}
