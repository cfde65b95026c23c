package trainers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Tenvid/Frikibot/internal/clock"
	"github.com/Tenvid/Frikibot/internal/domain/pokemon"
	boterr "github.com/Tenvid/Frikibot/internal/errors"
)

// Data represents the serialized form of a trainer in Redis
type Data struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
}

// RedisConfig configures the redis trainer repository
type RedisConfig struct {
	Client redis.UniversalClient
	Clock  clock.Clock
}

type redisRepo struct {
	client redis.UniversalClient
	clock  clock.Clock
}

// NewRedis creates a redis backed trainer repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil || cfg.Client == nil {
		return nil, boterr.InvalidArgument("redis client is required")
	}

	repo := &redisRepo{
		client: cfg.Client,
		clock:  cfg.Clock,
	}
	if repo.clock == nil {
		repo.clock = clock.New()
	}

	return repo, nil
}

func trainerKey(id string) string {
	return fmt.Sprintf("trainer:%s", id)
}

func (r *redisRepo) Get(ctx context.Context, id string) (*pokemon.Trainer, error) {
	if id == "" {
		return nil, boterr.InvalidArgument("trainer ID is required")
	}

	jsonData, err := r.client.Get(ctx, trainerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, boterr.NotFoundf("trainer with ID '%s' not found", id).
				WithMeta("trainer_id", id)
		}
		return nil, boterr.Store(err, "failed to get trainer from Redis")
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, boterr.WrapWithCode(err, boterr.CodeDataFormat, "failed to unmarshal trainer data")
	}

	return &pokemon.Trainer{
		ID:        data.ID,
		Name:      data.Name,
		Enabled:   data.Enabled,
		CreatedAt: data.CreatedAt,
	}, nil
}

// Create uses SETNX so concurrent first commands of one user cannot overwrite each other
func (r *redisRepo) Create(ctx context.Context, trainer *pokemon.Trainer) error {
	if err := validate(trainer); err != nil {
		return err
	}

	if trainer.CreatedAt.IsZero() {
		trainer.CreatedAt = r.clock.Now()
	}

	jsonData, err := json.Marshal(Data{
		ID:        trainer.ID,
		Name:      trainer.Name,
		Enabled:   trainer.Enabled,
		CreatedAt: trainer.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal trainer data: %w", err)
	}

	created, err := r.client.SetNX(ctx, trainerKey(trainer.ID), string(jsonData), 0).Result()
	if err != nil {
		return boterr.Store(err, "failed to store trainer in Redis").
			WithMeta("trainer_id", trainer.ID)
	}
	if !created {
		return boterr.AlreadyExistsf("trainer with ID '%s' already exists", trainer.ID).
			WithMeta("trainer_id", trainer.ID)
	}

	return nil
}
