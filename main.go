package main

import (
	"os"

	"github.com/tbouhar/sitegen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
