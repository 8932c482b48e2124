package msysmake

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// ParseDefinition parses a command-line definition of the form
// KEY=VALUE or KEY:TYPE=VALUE. The type annotation is accepted and dropped.
func ParseDefinition(arg string) (key, value string, err error) {
	name, value, ok := strings.Cut(arg, "=")
	if !ok {
		return "", "", fmt.Errorf("%w: %q: expected KEY=VALUE", ErrInvalidDefinition, arg)
	}

	name, _, _ = strings.Cut(name, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", fmt.Errorf("%w: %q: empty key", ErrInvalidDefinition, arg)
	}

	return name, value, nil
}

// LoadDefinitionsFile preloads definitions from an HCL file made of
// top-level attributes:
//
//	CMAKE_MAKE_PROGRAM = "C:/MinGW/msys/1.0/bin/make.exe"
//	CMAKE_AR           = "C:/MinGW/bin/ar.exe"
//
// Strings are stored as-is, numbers in their shortest decimal form and
// booleans as ON/OFF. Other value types are rejected.
func LoadDefinitionsFile(path string, defs *Definitions) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse definitions file %s: %w", path, diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return fmt.Errorf("failed to read definitions file %s: %w", path, diags)
	}

	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("failed to evaluate %s in %s: %w", name, path, diags)
		}

		value, err := definitionValue(val)
		if err != nil {
			return &Error{Op: "load definitions", Key: name, Err: err}
		}
		defs.Set(name, value)
	}

	return nil
}

func definitionValue(val cty.Value) (string, error) {
	if val.IsNull() || !val.IsKnown() {
		return "", fmt.Errorf("%w: value must be known and non-null", ErrInvalidDefinition)
	}

	ty := val.Type()
	switch {
	case ty.Equals(cty.String):
		return val.AsString(), nil
	case ty.Equals(cty.Number):
		return val.AsBigFloat().Text('f', -1), nil
	case ty.Equals(cty.Bool):
		if val.True() {
			return "ON", nil
		}
		return "OFF", nil
	default:
		return "", fmt.Errorf("%w: unsupported type %s", ErrInvalidDefinition, ty.FriendlyName())
	}
}
