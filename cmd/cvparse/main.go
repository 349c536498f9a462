// Package main provides the entry point for the Rural-Connect CV parsing CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cvparse",
	Short: "Rural-Connect CV extraction engine",
	Long:  "cvparse extracts structured profile records (contact data, education, work history, skills, certifications) from uploaded CV documents in PDF, Word, or plain-text format.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
