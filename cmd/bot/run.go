package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/cobra"

	"github.com/Tenvid/Frikibot/internal/handlers/discord"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Connect to Discord and serve /pokemon and /dex",
	RunE:  runBot,
}

func runBot(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.cfg.RequireDiscord(); err != nil {
		return err
	}

	a.logger.Info().Str("appID", a.cfg.Discord.AppID).Msg("starting bot")
	if a.cfg.Discord.GuildID != "" {
		a.logger.Info().Str("guildID", a.cfg.Discord.GuildID).Msg("using guild commands")
	}

	dg, err := discordgo.New("Bot " + a.cfg.Discord.Token)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds

	handler := discord.NewHandler(&discord.HandlerConfig{
		ServiceProvider: a.provider,
		Cooldown:        a.cfg.Discord.Cooldown,
		Logger:          &a.logger,
	})

	dg.AddHandler(handler.HandleInteraction)
	dg.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		a.logger.Info().Str("user", r.User.Username).Msg("connected")
	})

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}
	defer func() {
		if closeErr := dg.Close(); closeErr != nil {
			a.logger.Error().Err(closeErr).Msg("failed to close Discord connection")
		}
	}()

	// Use empty string for global commands, or set a specific guild ID for testing
	if err := handler.RegisterCommands(dg, a.cfg.Discord.GuildID); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	if a.cfg.Discord.GuildID == "" {
		a.logger.Info().Msg("registered global commands (may take up to 1 hour to propagate)")
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")
	return nil
}
