package main

import (
	"os"

	"github.com/dropin-dev/dropin/cmd/dropin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
