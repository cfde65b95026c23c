package pokemons_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Tenvid/Frikibot/internal/clock"
	boterr "github.com/Tenvid/Frikibot/internal/errors"
	"github.com/Tenvid/Frikibot/internal/repositories/pokemons"
	"github.com/Tenvid/Frikibot/internal/testutils"
	"github.com/Tenvid/Frikibot/internal/uuid"
)

type InMemoryRepositoryTestSuite struct {
	suite.Suite
	repo  pokemons.Repository
	clock *clock.Fixed
	ctx   context.Context
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.clock = &clock.Fixed{At: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	s.repo = pokemons.NewInMemoryRepository(&pokemons.InMemoryConfig{
		UUIDGenerator: uuid.NewSequentialGenerator("pkmn"),
		Clock:         s.clock,
	})
	s.ctx = context.Background()
}

func (s *InMemoryRepositoryTestSuite) TestCreateAndGet() {
	p := testutils.CreateTestPokemon("", "ash", time.Time{})

	s.Require().NoError(s.repo.Create(s.ctx, p))
	s.Empty(p.ID, "caller's record must not be filled in")
	s.True(p.CreatedAt.IsZero())

	got, err := s.repo.Get(s.ctx, "pkmn-1")
	s.Require().NoError(err)
	s.Equal("pkmn-1", got.ID)
	s.Equal(s.clock.At, got.CreatedAt)
	s.Equal(p.Moves, got.Moves)

	got.Moves[0] = "splash"
	again, err := s.repo.Get(s.ctx, "pkmn-1")
	s.Require().NoError(err)
	s.Equal("aura-sphere", again.Moves[0], "stored copy must not change")
}

func (s *InMemoryRepositoryTestSuite) TestCreate_Duplicate() {
	s.Require().NoError(s.repo.Create(s.ctx, testutils.CreateTestPokemon("dup", "ash", s.clock.At)))

	err := s.repo.Create(s.ctx, testutils.CreateTestPokemon("dup", "ash", s.clock.At))
	s.Equal(boterr.CodeAlreadyExists, boterr.GetCode(err))
}

func (s *InMemoryRepositoryTestSuite) TestGet_NotFound() {
	_, err := s.repo.Get(s.ctx, "nope")
	s.True(boterr.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestListByOwner() {
	for _, owner := range []string{"ash", "misty", "ash"} {
		s.clock.Advance(time.Second)
		s.Require().NoError(s.repo.Create(s.ctx, testutils.CreateTestPokemon("", owner, time.Time{})))
	}

	list, err := s.repo.ListByOwner(s.ctx, "ash")
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("pkmn-1", list[0].ID)
	s.Equal("pkmn-3", list[1].ID)

	list, err = s.repo.ListByOwner(s.ctx, "brock")
	s.Require().NoError(err)
	s.Empty(list)

	_, err = s.repo.ListByOwner(s.ctx, "")
	s.True(boterr.IsInvalidArgument(err))
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}
