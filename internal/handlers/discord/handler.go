package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/Tenvid/Frikibot/internal/services"
	"github.com/Tenvid/Frikibot/internal/services/generator"
	"github.com/Tenvid/Frikibot/internal/uuid"
)

const (
	commandPokemon = "pokemon"
	commandDex     = "dex"
)

// Handler handles all Discord interactions
type Handler struct {
	ServiceProvider *services.Provider

	pokemonHandler *PokemonHandler
	dexHandler     *DexHandler
	cooldowns      CooldownStore
	cooldown       time.Duration
	uuidGenerator  uuid.Generator
	logger         zerolog.Logger
	dispatch       InteractionFunc
}

// HandlerConfig holds configuration for the handler
type HandlerConfig struct {
	ServiceProvider *services.Provider // Required
	// Cooldown between two uses of the same command by one user, DefaultCooldown when zero
	Cooldown        time.Duration
	CooldownStore   CooldownStore
	UUIDGenerator   uuid.Generator
	Logger          *zerolog.Logger
	GenerateTimeout time.Duration
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.ServiceProvider == nil || cfg.ServiceProvider.GeneratorService == nil {
		panic("service provider with a generator service is required")
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = cfg.Logger.With().Str("component", "discord").Logger()
	}

	h := &Handler{
		ServiceProvider: cfg.ServiceProvider,
		pokemonHandler: NewPokemonHandler(&PokemonHandlerConfig{
			GeneratorService: cfg.ServiceProvider.GeneratorService,
			Logger:           logger,
			Timeout:          cfg.GenerateTimeout,
		}),
		dexHandler: NewDexHandler(&DexHandlerConfig{
			GeneratorService: cfg.ServiceProvider.GeneratorService,
			Logger:           logger,
		}),
		cooldowns:     cfg.CooldownStore,
		cooldown:      cfg.Cooldown,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logger,
	}

	if h.cooldowns == nil {
		h.cooldowns = NewMemoryCooldownStore(nil)
	}
	if h.cooldown <= 0 {
		h.cooldown = DefaultCooldown
	}
	if h.uuidGenerator == nil {
		h.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	h.dispatch = RecoverMiddleware(logger, "interaction", h.handle)

	return h
}

// Commands returns the slash commands the bot serves
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        commandPokemon,
			Description: "Generates a random Pokémon",
		},
		{
			Name:        commandDex,
			Description: "List all Pokémon from user",
		},
	}
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	return h.registerCommands(s, s.State.User.ID, guildID)
}

func (h *Handler) registerCommands(r CommandRegistrar, appID, guildID string) error {
	for _, cmd := range Commands() {
		if _, err := r.ApplicationCommandCreate(appID, guildID, cmd); err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
		h.logger.Info().Str("command", cmd.Name).Str("guild", guildID).Msg("registered command")
	}
	return nil
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	h.Dispatch(s, i)
}

// Dispatch routes an interaction using any Session implementation
func (h *Handler) Dispatch(s Session, i *discordgo.InteractionCreate) {
	h.dispatch(s, i)
}

func (h *Handler) handle(s Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(s, i)
	case discordgo.InteractionMessageComponent:
		h.handleComponent(s, i)
	}
}

// handleCommand handles slash command interactions
func (h *Handler) handleCommand(s Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()

	user := interactionUser(i)
	if user == nil {
		return
	}

	logger := h.logger.With().
		Str("cmdID", h.uuidGenerator.New()).
		Str("command", data.Name).
		Str("user", user.ID).
		Logger()

	if data.Name != commandPokemon && data.Name != commandDex {
		logger.Debug().Msg("ignoring unknown command")
		return
	}

	if retryAfter, ok := h.cooldowns.Acquire(cooldownKey(user.ID, data.Name), h.cooldown); !ok {
		logger.Debug().Dur("retryAfter", retryAfter).Msg("command on cooldown")
		err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: CooldownMessage(generator.Mention(user.ID), retryAfter),
			},
		})
		if err != nil {
			logger.Error().Err(err).Msg("failed to send cooldown message")
		}
		return
	}

	logger.Debug().Msg("handling command")

	var err error
	switch data.Name {
	case commandPokemon:
		err = h.pokemonHandler.Handle(&PokemonRequest{
			Session:     s,
			Interaction: i,
		})
	case commandDex:
		err = h.dexHandler.Handle(&DexRequest{
			Session:     s,
			Interaction: i,
		})
	}

	if err != nil {
		logger.Error().Err(err).Msg("error handling command")
	}
}

// handleComponent handles button interactions
func (h *Handler) handleComponent(s Session, i *discordgo.InteractionCreate) {
	customID, err := ParseCustomID(i.MessageComponentData().CustomID)
	if err != nil {
		h.logger.Debug().Err(err).Msg("ignoring component")
		return
	}

	switch customID.Domain {
	case dexDomain:
		err = h.dexHandler.HandlePage(&DexPageRequest{
			Session:     s,
			Interaction: i,
			CustomID:    customID,
		})
	default:
		h.logger.Debug().Str("domain", customID.Domain).Msg("ignoring component")
		return
	}

	if err != nil {
		h.logger.Error().Err(err).Str("customID", i.MessageComponentData().CustomID).Msg("error handling component")
	}
}
