package main

import (
	"os"

	"codereview-backend/internal/shared/config"
)

func main() {
	cfg := config.Load()
	if err := newRootCmd(cfg).Execute(); err != nil {
		// Cobra already prints the error
		os.Exit(1)
	}
}
