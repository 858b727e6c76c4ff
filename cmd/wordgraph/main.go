package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Optional .env with WORDGRAPH_* overrides.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
