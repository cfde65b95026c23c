package pokemon_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	mockdice "github.com/Tenvid/Frikibot/internal/dice/mock"
	"github.com/Tenvid/Frikibot/internal/domain/pokemon"
	boterr "github.com/Tenvid/Frikibot/internal/errors"
)

type BuilderTestSuite struct {
	suite.Suite
	roller  *mockdice.ManualMockRoller
	builder *pokemon.Builder
	impish  *pokemon.Nature
}

func (s *BuilderTestSuite) SetupTest() {
	s.roller = mockdice.NewManualMockRoller()
	s.builder = pokemon.NewBuilder(pokemon.NewSampler(&pokemon.SamplerConfig{Roller: s.roller}))

	var err error
	s.impish, err = pokemon.NewNature("impish", "special-attack", "defense")
	s.Require().NoError(err)
}

func (s *BuilderTestSuite) lucario() *pokemon.VarietyDetails {
	return &pokemon.VarietyDetails{
		Name:      "lucario",
		IsDefault: true,
		Abilities: []*pokemon.AbilityEntry{{Name: "steadfast"}, {Name: "inner-focus"}, {Name: "justified"}},
		Moves:     moveEntries("aura-sphere", "close-combat", "extreme-speed", "bone-rush", "dragon-pulse"),
		Stats:     [6]int{70, 110, 70, 115, 70, 90},
		Types:     []string{"fighting", "steel"},
		Sprites: &pokemon.Sprites{
			OfficialArtworkDefault: "https://img/448.png",
			OfficialArtworkShiny:   "https://img/shiny/448.png",
		},
	}
}

func (s *BuilderTestSuite) TestBuild_Lucario() {
	s.roller.SetIndexes(0, 1, 2, 3, 2)

	p, err := s.builder.Build(&pokemon.BuildInput{
		SpeciesIndex: 448,
		OwnerID:      "user-1",
		Variety:      s.lucario(),
		Nature:       s.impish,
		Color:        pokemon.ColorShiny,
	})
	s.Require().NoError(err)

	s.Equal("lucario", p.Name)
	s.Equal(448, p.SpeciesIndex)
	s.Equal("user-1", p.OwnerID)
	s.Equal("fighting", p.FirstType)
	s.Equal("steel", p.SecondType)
	s.True(p.HasSecondType())
	s.Equal([]string{"aura-sphere", "close-combat", "extreme-speed", "bone-rush"}, p.Moves)
	s.Equal("justified", p.Ability)
	s.Equal("https://img/shiny/448.png", p.Sprite)
	s.Equal(77, p.Stats.Modified(pokemon.StatDefense))
	s.Equal(103, p.Stats.Modified(pokemon.StatSpecialAttack))
	s.Equal(70, p.Stats.Value(pokemon.StatDefense))
}

func (s *BuilderTestSuite) TestBuild_SingleTypeNoSprite() {
	variety := s.lucario()
	variety.Types = []string{"fighting"}
	variety.Sprites = nil
	s.roller.SetIndexes(0, 1, 2, 3, 0)

	hardy, err := pokemon.NewNature("hardy", "", "")
	s.Require().NoError(err)

	p, err := s.builder.Build(&pokemon.BuildInput{SpeciesIndex: 447, Variety: variety, Nature: hardy})
	s.Require().NoError(err)

	s.Equal(pokemon.NoType, p.SecondType)
	s.False(p.HasSecondType())
	s.Empty(p.Sprite)
	s.Equal(pokemon.ColorDefault, p.Color)
	s.True(p.Stats.IsNeutral())
}

func (s *BuilderTestSuite) TestBuild_MalformedTypes() {
	for _, types := range [][]string{nil, {"a", "b", "c"}} {
		variety := s.lucario()
		variety.Types = types

		_, err := s.builder.Build(&pokemon.BuildInput{SpeciesIndex: 1, Variety: variety, Nature: s.impish})
		s.Require().Error(err)
		s.Equal(boterr.CodeMalformedVarietyData, boterr.GetCode(err))
	}
	s.Equal(0, s.roller.Used())
}

func (s *BuilderTestSuite) TestBuild_InsufficientMoves() {
	variety := s.lucario()
	variety.Moves = moveEntries("aura-sphere")

	_, err := s.builder.Build(&pokemon.BuildInput{SpeciesIndex: 448, Variety: variety, Nature: s.impish})
	s.Require().Error(err)
	s.Equal(boterr.CodeInsufficientMoves, boterr.GetCode(err))
}

func (s *BuilderTestSuite) TestBuild_InvalidInput() {
	_, err := s.builder.Build(nil)
	s.True(boterr.IsInvalidArgument(err))

	_, err = s.builder.Build(&pokemon.BuildInput{SpeciesIndex: 0, Variety: s.lucario(), Nature: s.impish})
	s.True(boterr.IsInvalidArgument(err))
}

func TestBuilderSuite(t *testing.T) {
	suite.Run(t, new(BuilderTestSuite))
}
