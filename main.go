package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/akira/toeprep/cmd"
)

func main() {
	// Optional .env for TOEPREP_DB / TOEPREP_BANK overrides.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
