// Package main is the entry point for the hotelharvest CLI.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/hotelharvest/hotelharvest/cmd/hotelharvest/commands"
)

func main() {
	// A missing .env is fine; configuration also comes from real
	// environment variables and flags.
	_ = godotenv.Load()

	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
