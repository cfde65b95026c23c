package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tenvid/Frikibot/internal/services/generator"
)

var (
	ownerID   string
	ownerName string
	timeout   time.Duration
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one random Pokémon and print the reply",
	Long:  `Runs a full generation against PokeAPI, stores the result for the owner and prints the card the bot would send.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&ownerID, "owner", "cli", "Trainer id that receives the Pokémon")
	generateCmd.Flags().StringVar(&ownerName, "name", "cli", "Trainer name")
	generateCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Time allowed for the generation")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	result, err := a.provider.GeneratorService.Generate(ctx, &generator.GenerateInput{
		OwnerID:   ownerID,
		OwnerName: ownerName,
	})
	if err != nil {
		return err
	}

	printReply(cmd.OutOrStdout(), result.Reply)

	if result.State.IsFailure() {
		return fmt.Errorf("generation ended in %s: %w", result.State, result.Err)
	}
	if result.PersistErr != nil {
		a.logger.Warn().Err(result.PersistErr).Msg("pokemon was not stored")
	}

	return nil
}

func printReply(w io.Writer, reply *generator.Reply) {
	if reply == nil {
		return
	}

	fmt.Fprintln(w, reply.PlainMessage)
	if reply.Failed {
		return
	}

	fmt.Fprintln(w, reply.Title)
	fmt.Fprintln(w, reply.Description)
	for _, f := range reply.Fields {
		fmt.Fprintf(w, "%s:\n%s\n", f.Name, f.Value)
	}
	fmt.Fprintln(w, reply.ImageURL)
}
