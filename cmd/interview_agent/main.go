// Package main provides the entry point for the interview scoring agent.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "interview_agent",
	Short: "Automated interview scoring and candidate matching",
	Long:  "Interview agent runs structured interview sessions, scores responses by reconciling model judgments with rule-based signals, and matches candidates against job descriptions via embedding similarity.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
