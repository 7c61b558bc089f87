// Package main is the entry point for gridfell.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/samdwyer/gridfell/internal/game"
	"github.com/samdwyer/gridfell/internal/telemetry"
)

var cfg game.Config

var noTelemetry bool

var rootCmd = &cobra.Command{
	Use:   "gridfell",
	Short: "A turn-based grid adventure",
	Long: `Gridfell is a single-player, turn-based text adventure: move across
the board, fight the enemies scattered on it, and collect the gear you
find along the way. Defeat every enemy to win.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().IntVar(&cfg.Width, "width", 12, "board width in squares")
	rootCmd.Flags().IntVar(&cfg.Height, "height", 12, "board height in squares")
	rootCmd.Flags().Int64Var(&cfg.Seed, "seed", 0, "random seed (0 = time-based)")
	rootCmd.Flags().BoolVar(&cfg.LegacyRNG, "legacy-rng", false, "reseed board population from the wall clock on every call")
	rootCmd.Flags().StringVar(&cfg.PlayerName, "name", "Adventurer", "player character name")
	rootCmd.Flags().StringVar(&cfg.PlayerRace, "race", "human", "player race (human, elf, dwarf, hobbit, orc)")
	rootCmd.Flags().BoolVar(&noTelemetry, "no-telemetry", false, "disable trace export")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// Load .env for local development; env vars may also be set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx := context.Background()

	if !noTelemetry {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	g, err := game.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}

	return g.Run(ctx)
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	apiKey := os.Getenv("HONEYCOMB_GRIDFELL_API_KEY")
	dataset := os.Getenv("HONEYCOMB_GRIDFELL_DATASET")
	if dataset == "" {
		dataset = "gridfell"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
