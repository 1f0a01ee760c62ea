package main

import (
	"os"

	"github.com/dkuzmenko/wisdomvault/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
