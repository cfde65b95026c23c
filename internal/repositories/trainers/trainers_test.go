package trainers_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/Tenvid/Frikibot/internal/clock"
	boterr "github.com/Tenvid/Frikibot/internal/errors"
	"github.com/Tenvid/Frikibot/internal/repositories/trainers"
	"github.com/Tenvid/Frikibot/internal/testutils"
)

// RepositoryTestSuite runs the same behaviour checks against every backend
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func(t *testing.T, c clock.Clock) trainers.Repository
	repo    trainers.Repository
	clock   *clock.Fixed
	ctx     context.Context
}

func (s *RepositoryTestSuite) SetupTest() {
	s.clock = &clock.Fixed{At: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	s.repo = s.newRepo(s.T(), s.clock)
	s.ctx = context.Background()
}

func (s *RepositoryTestSuite) TestCreateAndGet() {
	trainer := testutils.CreateTestTrainer("1234", "Ash")

	s.Require().NoError(s.repo.Create(s.ctx, trainer))
	s.True(s.clock.At.Equal(trainer.CreatedAt))

	got, err := s.repo.Get(s.ctx, "1234")
	s.Require().NoError(err)
	s.Equal("Ash", got.Name)
	s.True(got.Enabled)
	s.True(s.clock.At.Equal(got.CreatedAt))
}

func (s *RepositoryTestSuite) TestCreate_DisabledTrainer() {
	trainer := testutils.CreateTestTrainer("5678", "Gary")
	trainer.Enabled = false

	s.Require().NoError(s.repo.Create(s.ctx, trainer))

	got, err := s.repo.Get(s.ctx, "5678")
	s.Require().NoError(err)
	s.False(got.Enabled)
}

func (s *RepositoryTestSuite) TestCreate_AlreadyExists() {
	s.Require().NoError(s.repo.Create(s.ctx, testutils.CreateTestTrainer("1234", "Ash")))

	err := s.repo.Create(s.ctx, testutils.CreateTestTrainer("1234", "Ash again"))
	s.Equal(boterr.CodeAlreadyExists, boterr.GetCode(err))

	got, err := s.repo.Get(s.ctx, "1234")
	s.Require().NoError(err)
	s.Equal("Ash", got.Name)
}

func (s *RepositoryTestSuite) TestGet_NotFound() {
	_, err := s.repo.Get(s.ctx, "missing")
	s.True(boterr.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestInputValidation() {
	s.True(boterr.IsInvalidArgument(s.repo.Create(s.ctx, nil)))
	s.True(boterr.IsInvalidArgument(s.repo.Create(s.ctx, testutils.CreateTestTrainer("", "Nobody"))))

	_, err := s.repo.Get(s.ctx, "")
	s.True(boterr.IsInvalidArgument(err))
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(t *testing.T, c clock.Clock) trainers.Repository {
			return trainers.NewInMemoryRepository(&trainers.InMemoryConfig{Clock: c})
		},
	})
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(t *testing.T, c clock.Clock) trainers.Repository {
			repo, err := trainers.NewRedis(&trainers.RedisConfig{
				Client: testutils.CreateTestRedis(t),
				Clock:  c,
			})
			require.NoError(t, err)
			return repo
		},
	})
}

func TestPostgresRepository(t *testing.T) {
	db := testutils.CreateTestPostgres(t)

	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(t *testing.T, c clock.Clock) trainers.Repository {
			db.Exec("TRUNCATE trainers CASCADE")
			repo, err := trainers.NewPostgres(&trainers.PostgresConfig{DB: db, Clock: c})
			require.NoError(t, err)
			return repo
		},
	})
}

func TestConstructors_RequireBackend(t *testing.T) {
	_, err := trainers.NewRedis(nil)
	assert.True(t, boterr.IsInvalidArgument(err))

	_, err = trainers.NewRedis(&trainers.RedisConfig{})
	assert.True(t, boterr.IsInvalidArgument(err))

	_, err = trainers.NewPostgres(&trainers.PostgresConfig{})
	assert.True(t, boterr.IsInvalidArgument(err))

	repo, err := trainers.NewRedis(&trainers.RedisConfig{Client: testutils.CreateTestRedis(t)})
	require.NoError(t, err)
	assert.NotNil(t, repo)
}
