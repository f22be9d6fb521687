package main

import (
	"os"

	"github.com/fadi/mendly/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
