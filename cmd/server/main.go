package main

import (
	"os"

	"github.com/quizhub/quizhub/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
