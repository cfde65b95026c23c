package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/Tenvid/Frikibot/internal/services/generator"
)

// DefaultGenerateTimeout bounds one /pokemon command, provider calls included
const DefaultGenerateTimeout = 30 * time.Second

// PokemonRequest is one /pokemon invocation
type PokemonRequest struct {
	Session     Session
	Interaction *discordgo.InteractionCreate
}

// PokemonHandlerConfig holds dependencies for the /pokemon handler
type PokemonHandlerConfig struct {
	GeneratorService generator.Service // Required
	Logger           zerolog.Logger
	Timeout          time.Duration
}

// PokemonHandler generates a pokemon for the user and answers with its card
type PokemonHandler struct {
	generator generator.Service
	logger    zerolog.Logger
	timeout   time.Duration
}

// NewPokemonHandler creates a /pokemon handler
func NewPokemonHandler(cfg *PokemonHandlerConfig) *PokemonHandler {
	if cfg.GeneratorService == nil {
		panic("generator service is required")
	}

	h := &PokemonHandler{
		generator: cfg.GeneratorService,
		logger:    cfg.Logger,
		timeout:   cfg.Timeout,
	}
	if h.timeout <= 0 {
		h.timeout = DefaultGenerateTimeout
	}

	return h
}

// Handle acknowledges the command, runs one generation and edits the reply in
func (h *PokemonHandler) Handle(req *PokemonRequest) error {
	user := interactionUser(req.Interaction)
	if user == nil {
		return fmt.Errorf("interaction has no user")
	}

	// generation makes several provider calls, so acknowledge first
	err := req.Session.InteractionRespond(req.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		return fmt.Errorf("failed to acknowledge interaction: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	result, err := h.generator.Generate(ctx, &generator.GenerateInput{
		OwnerID:   user.ID,
		OwnerName: user.Username,
	})
	if err != nil {
		result = &generator.Result{
			State: generator.StateBuildFailed,
			Reply: generator.FailureReply(user.ID),
			Err:   err,
		}
	}

	reply := result.Reply
	if reply == nil {
		reply = generator.FailureReply(user.ID)
	}

	switch {
	case result.State.IsFailure():
		h.logger.Error().Err(result.Err).
			Str("user", user.ID).
			Str("state", string(result.State)).
			Msg("generation failed")
	case result.PersistErr != nil:
		h.logger.Warn().Err(result.PersistErr).Str("user", user.ID).Msg("generated pokemon was not stored")
	case result.Pokemon != nil:
		h.logger.Info().Str("user", user.ID).
			Str("pokemon", result.Pokemon.Name).
			Bool("shiny", reply.Shiny).
			Msg("pokemon generated")
	}

	content := reply.PlainMessage
	edit := &discordgo.WebhookEdit{
		Content: &content,
	}
	if embed := ReplyEmbed(reply); embed != nil {
		edit.Embeds = &[]*discordgo.MessageEmbed{embed}
	}

	if _, err := req.Session.InteractionResponseEdit(req.Interaction.Interaction, edit); err != nil {
		return fmt.Errorf("failed to send pokemon: %w", err)
	}

	return nil
}
