package main

import (
	"os"

	"github.com/adrianflutur/registry/cmd/registrydemo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
