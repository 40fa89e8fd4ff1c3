package main

import (
	"os"

	"github.com/agenthands/ngo/cmd/ngo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
