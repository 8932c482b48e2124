//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target to run when none is specified
var Default = Build

// Build compiles the msysmake command.
func Build() error {
	mg.Deps(Vet)
	return sh.RunV("go", "build", "-o", "bin/msysmake", "./cmd/msysmake")
}

// Vet runs go vet over the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// CrossBuild builds msysmake for the Windows hosts MSYS runs on.
func CrossBuild() error {
	env := map[string]string{"GOOS": "windows", "GOARCH": "amd64"}
	return sh.RunWithV(env, "go", "build", "-o", "bin/msysmake.exe", "./cmd/msysmake")
}
