package main

import (
	"github.com/joho/godotenv"

	"github.com/HopeKenga/Traffic-Intersection-Simulator/internal/cli"
)

func main() {
	// .env is optional; TRAFFICSIM_* overrides may also come from the shell.
	_ = godotenv.Load()

	cli.Execute()
}
