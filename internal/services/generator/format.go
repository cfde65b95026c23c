package generator

import (
	"fmt"
	"strings"

	"github.com/Tenvid/Frikibot/internal/domain/pokemon"
)

const (
	// FallbackSpriteURL is used when PokeAPI has no official artwork, formatted with color and name
	FallbackSpriteURL = "https://img.pokemondb.net/sprites/home/%s/%s.png"

	failureMessage = "%s Something went wrong while catching your Pokémon, try again later."
)

// Field is a named block of the reply card
type Field struct {
	Name  string
	Value string
}

// Reply is the transport-neutral content sent back to the user
type Reply struct {
	Title             string
	Description       string
	ImageURL          string
	SpritePlaceholder bool
	Fields            []*Field
	PlainMessage      string
	Shiny             bool
	Failed            bool
}

// Mention formats a user mention
func Mention(userID string) string {
	return "<@" + userID + ">"
}

// FormatReply renders a generated pokemon. correctedName is used for the fallback sprite.
func FormatReply(p *pokemon.Pokemon, correctedName string) *Reply {
	reply := &Reply{
		Title:       fmt.Sprintf("# %d *%s* %s", p.SpeciesIndex, p.Nature.DisplayName(), p.DisplayName()),
		Description: "Ability: " + DisplayMove(p.Ability),
		ImageURL:    p.Sprite,
		Fields: []*Field{
			{Name: "Moves", Value: FormatMoves(p.Moves)},
			{Name: "Stats", Value: p.Stats.Render()},
		},
		Shiny: p.Color.IsShiny(),
	}

	if reply.ImageURL == "" {
		reply.ImageURL = fmt.Sprintf(FallbackSpriteURL, p.Color, correctedName)
		reply.SpritePlaceholder = true
	}

	if reply.Shiny {
		reply.PlainMessage = Mention(p.OwnerID) + " Here you have your ✨SHINY✨ Pokémon"
	} else {
		reply.PlainMessage = Mention(p.OwnerID) + " Here you have your Pokémon"
	}

	return reply
}

// FailureReply is the generic message shown when a generation fails
func FailureReply(ownerID string) *Reply {
	return &Reply{
		PlainMessage: fmt.Sprintf(failureMessage, Mention(ownerID)),
		Failed:       true,
	}
}

// DisplayMove turns an api name like "aura-sphere" into "Aura sphere"
func DisplayMove(name string) string {
	return pokemon.Capitalize(strings.ReplaceAll(name, "-", " "))
}

// FormatMoves renders moves as a code block, one per line
func FormatMoves(moves []string) string {
	lines := make([]string, len(moves))
	for i, m := range moves {
		lines[i] = DisplayMove(m)
	}
	return "```\n" + strings.Join(lines, "\n") + "```"
}
