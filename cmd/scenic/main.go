package main

import (
	"os"

	"github.com/go-scenic/scenic/cmd/scenic/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
