package main

import (
	"os"

	"github.com/hpostats/optarena/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
