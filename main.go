package main

import (
	"os"

	"github.com/Avanthi1990/sf-guardian/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
