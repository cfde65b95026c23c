package discord

import (
	"fmt"
	"runtime/debug"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// InteractionFunc handles one interaction
type InteractionFunc func(s Session, i *discordgo.InteractionCreate)

// RecoverMiddleware wraps an interaction func so a panic is logged and answered instead of
// killing the gateway goroutine
func RecoverMiddleware(logger zerolog.Logger, handlerName string, handler InteractionFunc) InteractionFunc {
	return func(s Session, i *discordgo.InteractionCreate) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error().
					Str("handler", handlerName).
					Str("panic", fmt.Sprint(r)).
					Bytes("stack", debug.Stack()).
					Msg("panic while handling interaction")

				respondWithError(s, i, "An unexpected error occurred, try again later.")
			}
		}()

		handler(s, i)
	}
}

// respondWithError sends an ephemeral message, editing the deferred response when the
// interaction was already acknowledged
func respondWithError(s Session, i *discordgo.InteractionCreate, message string) {
	content := "❌ " + message

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err == nil {
		return
	}

	_, _ = s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	})
}
