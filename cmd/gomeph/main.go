// Command gomeph computes temperature resolved mean square displacements and
// Mössbauer factors from phonon calculations.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")
	if err := Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
