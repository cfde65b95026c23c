package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tenvid/Frikibot/internal/services/generator"
)

var dexOwnerID string

var dexCmd = &cobra.Command{
	Use:   "dex",
	Short: "List the Pokémon stored for a trainer",
	RunE:  runDex,
}

func init() {
	dexCmd.Flags().StringVar(&dexOwnerID, "owner", "", "Trainer id to list")
	_ = dexCmd.MarkFlagRequired("owner")
}

func runDex(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	list, err := a.provider.GeneratorService.ListByOwner(ctx, dexOwnerID)
	if err != nil {
		return fmt.Errorf("failed to list pokemon: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Found %d Pokémon for %s:\n", len(list), dexOwnerID)
	for _, p := range list {
		moves := make([]string, len(p.Moves))
		for i, m := range p.Moves {
			moves[i] = generator.DisplayMove(m)
		}
		fmt.Fprintf(out, "  #%d %s (%s) %s: %s\n",
			p.SpeciesIndex,
			generator.DisplayMove(p.Name),
			p.Nature.DisplayName(),
			p.CreatedAt.Format(time.RFC3339),
			strings.Join(moves, ", "))
	}

	return nil
}
