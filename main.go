package main

import (
	"os"

	"github.com/rgould/covenant/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
