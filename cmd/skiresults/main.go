// Package main provides the ski-results command line tool: ingest scanned
// race sheets into the results database, export and inspect what landed.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skiresults",
	Short: "Alpine ski race results pipeline",
	Long:  "skiresults ingests heterogeneous scanned race sheets (PDFs and photos), extracts structured results through a vision model, and loads them into a queryable database.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
