package main

import (
	"os"

	"github.com/TanmayDhobale/token22AMM/cmd/ammsim/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
