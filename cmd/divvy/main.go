package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/divvy-app/divvy/internal/cli"
	"github.com/divvy-app/divvy/pkg/logging"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
