package main

import (
	"os"

	"github.com/oguzhan/hoca/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
