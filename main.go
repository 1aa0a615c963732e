package main

import (
	"os"

	"github.com/conneroisu/prettytext/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
