package main

import (
	"os"

	"github.com/diffuselabs/diffused/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
