package pokemons

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Tenvid/Frikibot/internal/clock"
	"github.com/Tenvid/Frikibot/internal/domain/pokemon"
	boterr "github.com/Tenvid/Frikibot/internal/errors"
	"github.com/Tenvid/Frikibot/internal/uuid"
)

// listFetchLimit bounds the concurrent GETs issued by ListByOwner
const listFetchLimit = 8

// RedisConfig configures the redis repository
type RedisConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
	Clock         clock.Clock
	Logger        zerolog.Logger
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
	clock         clock.Clock
	logger        zerolog.Logger
}

// NewRedis creates a redis backed repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil || cfg.Client == nil {
		return nil, boterr.InvalidArgument("redis client is required")
	}

	repo := &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
		clock:         cfg.Clock,
		logger:        cfg.Logger,
	}
	if repo.uuidGenerator == nil {
		repo.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if repo.clock == nil {
		repo.clock = clock.New()
	}

	return repo, nil
}

func pokemonKey(id string) string {
	return fmt.Sprintf("pokemon:%s", id)
}

func ownerKey(ownerID string) string {
	return fmt.Sprintf("trainer:%s:pokemon", ownerID)
}

func (r *redisRepo) Create(ctx context.Context, p *pokemon.Pokemon) error {
	if err := validateForCreate(p); err != nil {
		return err
	}

	data := toData(p)
	if data.ID == "" {
		data.ID = r.uuidGenerator.New()
	}
	if data.CreatedAt.IsZero() {
		data.CreatedAt = r.clock.Now()
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal pokemon data: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, pokemonKey(data.ID), string(jsonData), 0)
	pipe.SAdd(ctx, ownerKey(data.OwnerID), data.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return boterr.Store(err, "failed to store pokemon in Redis").
			WithMeta("pokemon_id", data.ID)
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*pokemon.Pokemon, error) {
	if id == "" {
		return nil, boterr.InvalidArgument("pokemon ID is required")
	}

	jsonData, err := r.client.Get(ctx, pokemonKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, boterr.NotFoundf("pokemon with ID '%s' not found", id).
				WithMeta("pokemon_id", id)
		}
		return nil, boterr.Store(err, "failed to get pokemon from Redis")
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, boterr.WrapWithCode(err, boterr.CodeDataFormat, "failed to unmarshal pokemon data")
	}

	return toPokemon(&data)
}

func (r *redisRepo) ListByOwner(ctx context.Context, ownerID string) ([]*pokemon.Pokemon, error) {
	if ownerID == "" {
		return nil, boterr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, ownerKey(ownerID)).Result()
	if err != nil {
		return nil, boterr.Store(err, "failed to get trainer pokemon from Redis")
	}

	found := make([]*pokemon.Pokemon, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(listFetchLimit)
	for i, id := range ids {
		g.Go(func() error {
			p, err := r.Get(gctx, id)
			switch {
			case err == nil:
				found[i] = p
				return nil
			case boterr.IsNotFound(err), boterr.Is(err, boterr.CodeDataFormat):
				// the owner set can still name records that were removed or corrupted
				r.logger.Warn().Err(err).
					Str("owner_id", ownerID).
					Str("pokemon_id", id).
					Msg("skipping unreadable pokemon")
				return nil
			default:
				return boterr.Wrapf(err, "failed to get pokemon %s", id)
			}
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	list := make([]*pokemon.Pokemon, 0, len(found))
	for _, p := range found {
		if p != nil {
			list = append(list, p)
		}
	}

	sortByCreated(list)
	return list, nil
}
