package main

import (
	"logistichub-console/internal/cli"

	"github.com/joho/godotenv"
)

func main() {
	// Optional: flags and the environment are enough.
	_ = godotenv.Load()
	cli.Execute()
}
