package main

import (
	"os"

	"github.com/perchlabs/chirp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
