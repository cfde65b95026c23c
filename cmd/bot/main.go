// Package main is the entry point for the frikibot Discord bot
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "frikibot",
	Short: "Discord bot that hands out random Pokémon",
	Long:  `frikibot generates random Pokémon from PokeAPI data, stores them per trainer and serves them over Discord slash commands.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// a missing .env is fine, the environment may already be set
		_ = godotenv.Load()
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(dexCmd)
}
