package main

import (
	"os"

	"github.com/rhea-lang/rhea/cmd/rheac/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
