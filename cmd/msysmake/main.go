package main

import (
	"os"

	"github.com/contriboss/msys-makefile-go/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
