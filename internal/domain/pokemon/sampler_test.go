package pokemon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/Tenvid/Frikibot/internal/dice"
	mockdice "github.com/Tenvid/Frikibot/internal/dice/mock"
	"github.com/Tenvid/Frikibot/internal/domain/pokemon"
	boterr "github.com/Tenvid/Frikibot/internal/errors"
)

func moveEntries(names ...string) []*pokemon.MoveEntry {
	entries := make([]*pokemon.MoveEntry, len(names))
	for i, n := range names {
		entries[i] = &pokemon.MoveEntry{Name: n}
	}
	return entries
}

type SamplerTestSuite struct {
	suite.Suite
	roller  *mockdice.ManualMockRoller
	sampler *pokemon.Sampler
}

func (s *SamplerTestSuite) SetupTest() {
	s.roller = mockdice.NewManualMockRoller()
	s.sampler = pokemon.NewSampler(&pokemon.SamplerConfig{Roller: s.roller})
}

func (s *SamplerTestSuite) TestSampleMoves_SkipsDuplicates() {
	moves := moveEntries("tackle", "growl", "ember", "scratch", "smokescreen")
	s.roller.SetIndexes(2, 2, 0, 2, 4, 0, 1)

	got, err := s.sampler.SampleMoves(moves, pokemon.MoveCount)
	s.Require().NoError(err)

	s.Equal([]string{"ember", "tackle", "smokescreen", "growl"}, got)
	s.Equal(7, s.roller.Used())
}

func (s *SamplerTestSuite) TestSampleMoves_DuplicateNamesInInput() {
	moves := moveEntries("tackle", "tackle", "growl", "ember", "ember", "scratch")
	s.roller.SetIndexes(0, 1, 2, 3, 4, 5)

	got, err := s.sampler.SampleMoves(moves, pokemon.MoveCount)
	s.Require().NoError(err)
	s.Equal([]string{"tackle", "growl", "ember", "scratch"}, got)
}

func (s *SamplerTestSuite) TestSampleMoves_TooFewDistinct() {
	moves := moveEntries("splash", "splash", "tackle", "flail")

	_, err := s.sampler.SampleMoves(moves, pokemon.MoveCount)
	s.Require().Error(err)
	s.Equal(boterr.CodeInsufficientMoves, boterr.GetCode(err))
	s.Equal(0, s.roller.Used(), "fails before drawing")
}

func (s *SamplerTestSuite) TestSampleMoves_StaleDrawCap() {
	sampler := pokemon.NewSampler(&pokemon.SamplerConfig{Roller: s.roller, MaxStaleDraws: 3})
	moves := moveEntries("a", "b", "c", "d")
	s.roller.SetIndexes(0, 0, 0, 0)

	_, err := sampler.SampleMoves(moves, pokemon.MoveCount)
	s.Require().Error(err)
	s.Equal(boterr.CodeInsufficientMoves, boterr.GetCode(err))
}

func (s *SamplerTestSuite) TestSampleMoves_MissingName() {
	_, err := s.sampler.SampleMoves([]*pokemon.MoveEntry{{Name: "a"}, {}}, 1)
	s.Require().Error(err)
	s.True(boterr.IsInvalidArgument(err))
}

func (s *SamplerTestSuite) TestSampleAbility() {
	abilities := []*pokemon.AbilityEntry{{Name: "steadfast"}, {Name: "inner-focus"}, {Name: "justified", IsHidden: true}}
	s.roller.SetIndexes(1)

	got, err := s.sampler.SampleAbility(abilities)
	s.Require().NoError(err)
	s.Equal("inner-focus", got)
}

func (s *SamplerTestSuite) TestSampleAbility_Invalid() {
	_, err := s.sampler.SampleAbility(nil)
	s.True(boterr.IsInvalidArgument(err))

	_, err = s.sampler.SampleAbility([]*pokemon.AbilityEntry{{Name: ""}})
	s.True(boterr.IsInvalidArgument(err))
}

func TestSamplerSuite(t *testing.T) {
	suite.Run(t, new(SamplerTestSuite))
}

func TestSampleMoves_AlwaysFourUnique(t *testing.T) {
	sampler := pokemon.NewSampler(&pokemon.SamplerConfig{Roller: dice.NewRandomRoller()})
	moves := moveEntries("a", "b", "c", "d", "a", "b", "e", "f", "g", "a")

	for i := 0; i < 1000; i++ {
		got, err := sampler.SampleMoves(moves, pokemon.MoveCount)
		require.NoError(t, err)
		require.Len(t, got, 4)

		unique := make(map[string]bool)
		for _, m := range got {
			unique[m] = true
		}
		assert.Len(t, unique, 4)
	}
}
