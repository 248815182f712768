package main

import (
	"os"

	"github.com/sjinzh/slint/cmd/slint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
