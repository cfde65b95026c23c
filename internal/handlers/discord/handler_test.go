package discord

import (
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Tenvid/Frikibot/internal/clock"
	"github.com/Tenvid/Frikibot/internal/domain/pokemon"
	boterr "github.com/Tenvid/Frikibot/internal/errors"
	"github.com/Tenvid/Frikibot/internal/services"
	"github.com/Tenvid/Frikibot/internal/services/generator"
	mockgenerator "github.com/Tenvid/Frikibot/internal/services/generator/mock"
	"github.com/Tenvid/Frikibot/internal/testutils"
	"github.com/Tenvid/Frikibot/internal/uuid"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockGenerator *mockgenerator.MockService
	clock         *clock.Fixed
	session       *fakeSession
	handler       *Handler
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockGenerator = mockgenerator.NewMockService(s.ctrl)
	s.clock = &clock.Fixed{At: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	s.session = &fakeSession{}
	s.handler = NewHandler(&HandlerConfig{
		ServiceProvider: &services.Provider{GeneratorService: s.mockGenerator},
		CooldownStore:   NewMemoryCooldownStore(s.clock),
		UUIDGenerator:   uuid.NewSequentialGenerator("cmd"),
	})
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) listOf(n int) []*pokemon.Pokemon {
	list := make([]*pokemon.Pokemon, n)
	for i := range list {
		p := testutils.CreateTestPokemon(fmt.Sprintf("p%d", i+1), "42", s.clock.At.Add(time.Duration(i)*time.Minute))
		p.Name = fmt.Sprintf("mon-%d", i+1)
		list[i] = p
	}
	return list
}

func (s *HandlerTestSuite) TestPokemonCommand_Success() {
	p := testutils.CreateTestPokemon("p1", "42", s.clock.At)
	s.mockGenerator.EXPECT().
		Generate(gomock.Any(), &generator.GenerateInput{OwnerID: "42", OwnerName: "ash"}).
		Return(&generator.Result{
			State:   generator.StateDone,
			Pokemon: p,
			Reply:   generator.FormatReply(p, p.Name),
		}, nil)

	s.handler.Dispatch(s.session, commandInteraction("pokemon", "42", "ash"))

	s.Require().Len(s.session.responses, 1)
	s.Equal(discordgo.InteractionResponseDeferredChannelMessageWithSource, s.session.responses[0].Type)

	edit := s.session.lastEdit()
	s.Require().NotNil(edit)
	s.Equal("<@42> Here you have your Pokémon", *edit.Content)
	s.Require().NotNil(edit.Embeds)
	s.Require().Len(*edit.Embeds, 1)

	embed := (*edit.Embeds)[0]
	s.Equal("# 448 *Impish* Lucario", embed.Title)
	s.Equal("Ability: Justified", embed.Description)
	s.Equal("https://img.test/448.png", embed.Image.URL)
	s.Equal(ColorDefault, embed.Color)
	s.Require().Len(embed.Fields, 2)
	s.Equal("Moves", embed.Fields[0].Name)
	s.Equal("```\nAura sphere\nClose combat\nExtreme speed\nBone rush```", embed.Fields[0].Value)
	s.False(embed.Fields[0].Inline)
	s.Equal(p.Stats.Render(), embed.Fields[1].Value)
}

func (s *HandlerTestSuite) TestPokemonCommand_Shiny() {
	p := testutils.CreateTestPokemon("p1", "42", s.clock.At)
	p.Color = pokemon.ColorShiny
	s.mockGenerator.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return(&generator.Result{State: generator.StateDone, Pokemon: p, Reply: generator.FormatReply(p, p.Name)}, nil)

	s.handler.Dispatch(s.session, commandInteraction("pokemon", "42", "ash"))

	edit := s.session.lastEdit()
	s.Require().NotNil(edit)
	s.Equal("<@42> Here you have your ✨SHINY✨ Pokémon", *edit.Content)
	s.Equal(ColorShiny, (*edit.Embeds)[0].Color)
}

func (s *HandlerTestSuite) TestPokemonCommand_FailureHasNoEmbed() {
	s.mockGenerator.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return(&generator.Result{
			State: generator.StateFetchFailed,
			Reply: generator.FailureReply("42"),
			Err:   boterr.New(boterr.CodeUnavailable, "down"),
		}, nil)

	s.handler.Dispatch(s.session, commandInteraction("pokemon", "42", "ash"))

	edit := s.session.lastEdit()
	s.Require().NotNil(edit)
	s.Equal("<@42> Something went wrong while catching your Pokémon, try again later.", *edit.Content)
	s.Nil(edit.Embeds)
}

func (s *HandlerTestSuite) TestPokemonCommand_RejectedInput() {
	s.mockGenerator.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return(nil, boterr.InvalidArgument("owner id is required"))

	s.handler.Dispatch(s.session, commandInteraction("pokemon", "42", "ash"))

	edit := s.session.lastEdit()
	s.Require().NotNil(edit)
	s.Contains(*edit.Content, "Something went wrong")
}

func (s *HandlerTestSuite) TestPokemonCommand_Cooldown() {
	p := testutils.CreateTestPokemon("p1", "42", s.clock.At)
	s.mockGenerator.EXPECT().Generate(gomock.Any(), &generator.GenerateInput{OwnerID: "42", OwnerName: "ash"}).
		Return(&generator.Result{State: generator.StateDone, Pokemon: p, Reply: generator.FormatReply(p, p.Name)}, nil).
		Times(2)

	s.handler.Dispatch(s.session, commandInteraction("pokemon", "42", "ash"))

	s.clock.Advance(2 * time.Second)
	s.handler.Dispatch(s.session, commandInteraction("pokemon", "42", "ash"))

	resp := s.session.lastResponse()
	s.Equal(discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
	s.Equal(" <@42> This command is actually on cooldown, wait 3.00 seconds.", resp.Data.Content)

	// another user is not affected
	other := testutils.CreateTestPokemon("p2", "7", s.clock.At)
	s.mockGenerator.EXPECT().Generate(gomock.Any(), &generator.GenerateInput{OwnerID: "7", OwnerName: "misty"}).
		Return(&generator.Result{State: generator.StateDone, Pokemon: other, Reply: generator.FormatReply(other, other.Name)}, nil)
	s.handler.Dispatch(s.session, commandInteraction("pokemon", "7", "misty"))

	s.clock.Advance(3 * time.Second)
	s.handler.Dispatch(s.session, commandInteraction("pokemon", "42", "ash"))
	s.Equal(discordgo.InteractionResponseDeferredChannelMessageWithSource, s.session.lastResponse().Type)
}

func (s *HandlerTestSuite) TestDexCommand_Empty() {
	s.mockGenerator.EXPECT().ListByOwner(gomock.Any(), "42").Return([]*pokemon.Pokemon{}, nil)

	s.handler.Dispatch(s.session, commandInteraction("dex", "42", "ash"))

	resp := s.session.lastResponse()
	s.Require().NotNil(resp)
	s.Contains(resp.Data.Content, "<@42>")
	s.Empty(resp.Data.Embeds)
	s.Empty(resp.Data.Components)
}

func (s *HandlerTestSuite) TestDexCommand_FirstPage() {
	s.mockGenerator.EXPECT().ListByOwner(gomock.Any(), "42").Return(s.listOf(7), nil)

	s.handler.Dispatch(s.session, commandInteraction("dex", "42", "ash"))

	resp := s.session.lastResponse()
	s.Require().NotNil(resp)
	s.Require().Len(resp.Data.Embeds, 1)

	embed := resp.Data.Embeds[0]
	s.Equal("Ash Pokémon list", embed.Title)
	s.Require().Len(embed.Fields, 5)
	s.Equal("Mon 1", embed.Fields[0].Name)
	s.Equal("Aura sphere\nClose combat\nExtreme speed\nBone rush", embed.Fields[0].Value)
	s.Equal("Page 1/2", embed.Footer.Text)

	row, ok := resp.Data.Components[0].(discordgo.ActionsRow)
	s.Require().True(ok)
	s.Require().Len(row.Components, 4)
	labels := make([]string, 0, 4)
	ids := make([]string, 0, 4)
	for _, c := range row.Components {
		b := c.(discordgo.Button)
		labels = append(labels, b.Label)
		ids = append(ids, b.CustomID)
	}
	s.Equal([]string{"<<-", "<-", "->", "->>"}, labels)
	s.Equal([]string{"dex:first:42:1", "dex:prev:42:1", "dex:next:42:1", "dex:last:42:1"}, ids)
}

func (s *HandlerTestSuite) TestDexCommand_ListError() {
	s.mockGenerator.EXPECT().ListByOwner(gomock.Any(), "42").Return(nil, boterr.Store(assert.AnError, "boom"))

	s.handler.Dispatch(s.session, commandInteraction("dex", "42", "ash"))

	resp := s.session.lastResponse()
	s.Require().NotNil(resp)
	s.Equal(discordgo.MessageFlagsEphemeral, resp.Data.Flags)
}

func (s *HandlerTestSuite) TestDexButtons() {
	message := &discordgo.Message{Embeds: []*discordgo.MessageEmbed{{Title: "Ash Pokémon list"}}}
	s.mockGenerator.EXPECT().ListByOwner(gomock.Any(), "42").Return(s.listOf(7), nil).AnyTimes()

	testCases := []struct {
		customID string
		page     string
		fields   int
	}{
		{customID: "dex:next:42:1", page: "Page 2/2", fields: 2},
		{customID: "dex:next:42:2", page: "Page 2/2", fields: 2},
		{customID: "dex:prev:42:2", page: "Page 1/2", fields: 5},
		{customID: "dex:prev:42:1", page: "Page 1/2", fields: 5},
		{customID: "dex:last:42:1", page: "Page 2/2", fields: 2},
		{customID: "dex:first:42:2", page: "Page 1/2", fields: 5},
	}

	for _, tc := range testCases {
		s.Run(tc.customID, func() {
			s.handler.Dispatch(s.session, componentInteraction(tc.customID, "99", message))

			resp := s.session.lastResponse()
			s.Require().NotNil(resp)
			s.Equal(discordgo.InteractionResponseUpdateMessage, resp.Type)
			s.Equal("Ash Pokémon list", resp.Data.Embeds[0].Title)
			s.Equal(tc.page, resp.Data.Embeds[0].Footer.Text)
			s.Len(resp.Data.Embeds[0].Fields, tc.fields)
		})
	}
}

func (s *HandlerTestSuite) TestUnknownInteractionsAreIgnored() {
	s.handler.Dispatch(s.session, commandInteraction("hello", "42", "ash"))
	s.handler.Dispatch(s.session, componentInteraction("character:show:1", "42", nil))
	s.handler.Dispatch(s.session, componentInteraction("garbage", "42", nil))

	s.Empty(s.session.responses)
	s.Empty(s.session.edits)
}

func (s *HandlerTestSuite) TestPanicIsRecovered() {
	s.mockGenerator.EXPECT().ListByOwner(gomock.Any(), "42").DoAndReturn(
		func(_ any, _ string) ([]*pokemon.Pokemon, error) {
			panic("repository exploded")
		})

	s.NotPanics(func() {
		s.handler.Dispatch(s.session, commandInteraction("dex", "42", "ash"))
	})

	resp := s.session.lastResponse()
	s.Require().NotNil(resp)
	s.Contains(resp.Data.Content, "❌")
}

func (s *HandlerTestSuite) TestRegisterCommands() {
	err := s.handler.registerCommands(s.session, "app", "guild")
	s.Require().NoError(err)

	names := make([]string, 0, len(s.session.commands))
	for _, cmd := range s.session.commands {
		names = append(names, cmd.Name)
	}
	s.Equal([]string{"pokemon", "dex"}, names)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func TestNewHandler_RequiresGenerator(t *testing.T) {
	require.Panics(t, func() {
		NewHandler(&HandlerConfig{ServiceProvider: &services.Provider{}})
	})
}
