package main

import (
	"os"

	"github.com/anik54992/eduboost/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
