package main

import (
	"os"

	"github.com/Valentin-Kaiser/go-dbase-reader/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
