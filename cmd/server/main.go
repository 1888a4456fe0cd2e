package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Missing .env is fine; config falls back to the TOML file and defaults.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
