package discord

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/Tenvid/Frikibot/internal/domain/pokemon"
	"github.com/Tenvid/Frikibot/internal/services/generator"
)

const (
	// DexPageSize is how many pokemon one dex page shows
	DexPageSize = 5

	dexDomain = "dex"

	dexActionFirst = "first"
	dexActionPrev  = "prev"
	dexActionNext  = "next"
	dexActionLast  = "last"

	dexListTimeout = 10 * time.Second
)

// DexRequest is one /dex invocation
type DexRequest struct {
	Session     Session
	Interaction *discordgo.InteractionCreate
}

// DexPageRequest is a press on one of the dex pagination buttons
type DexPageRequest struct {
	Session     Session
	Interaction *discordgo.InteractionCreate
	CustomID    *CustomID
}

// DexHandlerConfig holds dependencies for the /dex handler
type DexHandlerConfig struct {
	GeneratorService generator.Service // Required
	Logger           zerolog.Logger
}

// DexHandler lists a trainer's pokemon in pages
type DexHandler struct {
	generator generator.Service
	logger    zerolog.Logger
}

// NewDexHandler creates a /dex handler
func NewDexHandler(cfg *DexHandlerConfig) *DexHandler {
	if cfg.GeneratorService == nil {
		panic("generator service is required")
	}

	return &DexHandler{
		generator: cfg.GeneratorService,
		logger:    cfg.Logger,
	}
}

// Handle answers /dex with the first page
func (h *DexHandler) Handle(req *DexRequest) error {
	user := interactionUser(req.Interaction)
	if user == nil {
		return fmt.Errorf("interaction has no user")
	}

	list, err := h.list(user.ID)
	if err != nil {
		h.logger.Error().Err(err).Str("user", user.ID).Msg("failed to list pokemon")
		return req.Session.InteractionRespond(req.Interaction.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: "❌ Failed to retrieve your Pokémon, try again later.",
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
	}

	if len(list) == 0 {
		return req.Session.InteractionRespond(req.Interaction.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: generator.Mention(user.ID) + " You don't have any Pokémon yet. Use `/pokemon` to catch one!",
			},
		})
	}

	return req.Session.InteractionRespond(req.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{DexEmbed(dexTitle(user.Username), list, 1)},
			Components: DexComponents(user.ID, 1),
		},
	})
}

// HandlePage moves the dex message to another page
func (h *DexHandler) HandlePage(req *DexPageRequest) error {
	ownerID := req.CustomID.Target
	if ownerID == "" || len(req.CustomID.Args) == 0 {
		return fmt.Errorf("dex custom ID %q is missing owner or page", req.CustomID.MustEncode())
	}

	current, err := strconv.Atoi(req.CustomID.Args[0])
	if err != nil {
		return fmt.Errorf("invalid dex page %q: %w", req.CustomID.Args[0], err)
	}

	list, err := h.list(ownerID)
	if err != nil {
		h.logger.Error().Err(err).Str("owner", ownerID).Msg("failed to list pokemon")
		return req.Session.InteractionRespond(req.Interaction.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: "❌ Failed to retrieve the Pokémon list, try again later.",
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
	}

	page := TurnPage(req.CustomID.Action, current, LastPage(len(list)))

	return req.Session.InteractionRespond(req.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{DexEmbed(h.pageTitle(req.Interaction), list, page)},
			Components: DexComponents(ownerID, page),
		},
	})
}

func (h *DexHandler) list(ownerID string) ([]*pokemon.Pokemon, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dexListTimeout)
	defer cancel()

	return h.generator.ListByOwner(ctx, ownerID)
}

// pageTitle keeps the title of the message being paged, so it names the owner and not
// whoever pressed the button
func (h *DexHandler) pageTitle(i *discordgo.InteractionCreate) string {
	if i.Message != nil && len(i.Message.Embeds) > 0 && i.Message.Embeds[0].Title != "" {
		return i.Message.Embeds[0].Title
	}
	if user := interactionUser(i); user != nil {
		return dexTitle(user.Username)
	}
	return dexTitle("user")
}

func dexTitle(username string) string {
	return pokemon.Capitalize(username) + " Pokémon list"
}

// LastPage is the number of pages needed for n pokemon, never less than one
func LastPage(n int) int {
	if n <= 0 {
		return 1
	}
	return (n + DexPageSize - 1) / DexPageSize
}

// TurnPage applies a pagination button to the current page, staying within [1, last]
func TurnPage(action string, current, last int) int {
	page := current
	switch action {
	case dexActionFirst:
		page = 1
	case dexActionPrev:
		page = current - 1
	case dexActionNext:
		page = current + 1
	case dexActionLast:
		page = last
	}

	if page < 1 {
		return 1
	}
	if page > last {
		return last
	}
	return page
}

// DexEmbed renders one page: a field per pokemon with its moves underneath
func DexEmbed(title string, list []*pokemon.Pokemon, page int) *discordgo.MessageEmbed {
	b := NewEmbed().Title(title).Color(ColorDefault)

	start := (page - 1) * DexPageSize
	if start < 0 || start >= len(list) {
		return b.Build()
	}
	end := min(start+DexPageSize, len(list))

	for _, p := range list[start:end] {
		moves := make([]string, len(p.Moves))
		for i, m := range p.Moves {
			moves[i] = generator.DisplayMove(m)
		}
		b.Field(generator.DisplayMove(p.Name), strings.Join(moves, "\n"), true)
	}

	return b.Footer(fmt.Sprintf("Page %d/%d", page, LastPage(len(list)))).Build()
}

// DexComponents builds the pagination row. Custom IDs carry the page they were
// rendered on so every button in the row stays unique.
func DexComponents(ownerID string, page int) []discordgo.MessageComponent {
	current := strconv.Itoa(page)
	button := func(label, action string) discordgo.Button {
		return discordgo.Button{
			Label: label,
			Style: discordgo.PrimaryButton,
			CustomID: NewCustomID(dexDomain, action).
				WithTarget(ownerID).
				WithArgs(current).
				MustEncode(),
		}
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				button("<<-", dexActionFirst),
				button("<-", dexActionPrev),
				button("->", dexActionNext),
				button("->>", dexActionLast),
			},
		},
	}
}
