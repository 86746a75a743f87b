package main

import (
	"os"

	"github.com/spacieba/miss-france/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
