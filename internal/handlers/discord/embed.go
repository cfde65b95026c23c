package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/Tenvid/Frikibot/internal/services/generator"
)

// Embed colors
const (
	ColorDefault = 0x7289da
	ColorShiny   = 0xffd700
)

// EmbedBuilder provides a fluent API for building Discord embeds
type EmbedBuilder struct {
	embed *discordgo.MessageEmbed
}

// NewEmbed creates a new embed builder
func NewEmbed() *EmbedBuilder {
	return &EmbedBuilder{
		embed: &discordgo.MessageEmbed{
			Type:   discordgo.EmbedTypeRich,
			Fields: make([]*discordgo.MessageEmbedField, 0),
		},
	}
}

// Title sets the embed title
func (b *EmbedBuilder) Title(title string) *EmbedBuilder {
	b.embed.Title = title
	return b
}

// Description sets the embed description
func (b *EmbedBuilder) Description(description string) *EmbedBuilder {
	b.embed.Description = description
	return b
}

// Color sets the embed color
func (b *EmbedBuilder) Color(color int) *EmbedBuilder {
	b.embed.Color = color
	return b
}

// Image sets the embed image
func (b *EmbedBuilder) Image(url string) *EmbedBuilder {
	if url == "" {
		return b
	}
	b.embed.Image = &discordgo.MessageEmbedImage{
		URL: url,
	}
	return b
}

// Footer sets the embed footer
func (b *EmbedBuilder) Footer(text string) *EmbedBuilder {
	b.embed.Footer = &discordgo.MessageEmbedFooter{
		Text: text,
	}
	return b
}

// Field adds a field to the embed
func (b *EmbedBuilder) Field(name, value string, inline bool) *EmbedBuilder {
	b.embed.Fields = append(b.embed.Fields, &discordgo.MessageEmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	})
	return b
}

// Build returns the constructed embed
func (b *EmbedBuilder) Build() *discordgo.MessageEmbed {
	return b.embed
}

// ReplyEmbed renders a generation reply as a card. Failed replies have no card.
func ReplyEmbed(reply *generator.Reply) *discordgo.MessageEmbed {
	if reply == nil || reply.Failed {
		return nil
	}

	color := ColorDefault
	if reply.Shiny {
		color = ColorShiny
	}

	b := NewEmbed().
		Title(reply.Title).
		Description(reply.Description).
		Image(reply.ImageURL).
		Color(color)

	for _, f := range reply.Fields {
		b.Field(f.Name, f.Value, false)
	}

	return b.Build()
}
