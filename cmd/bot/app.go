package main

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Tenvid/Frikibot/internal/clients/pokeapi"
	"github.com/Tenvid/Frikibot/internal/config"
	"github.com/Tenvid/Frikibot/internal/database"
	"github.com/Tenvid/Frikibot/internal/logging"
	"github.com/Tenvid/Frikibot/internal/repositories/pokemons"
	"github.com/Tenvid/Frikibot/internal/repositories/trainers"
	"github.com/Tenvid/Frikibot/internal/services"
)

// app is everything a sub-command needs, built once from the environment
type app struct {
	cfg      *config.Config
	logger   zerolog.Logger
	provider *services.Provider
	closers  []func() error
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn().Err(err).Msg("error during shutdown")
		}
	}
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.New(&logging.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
	})

	a := &app{
		cfg:    cfg,
		logger: logger,
	}

	// the response cache and the redis backend share one client
	var redisClient *redis.Client
	if cfg.Storage.Backend == config.StorageRedis || cfg.PokeAPI.CacheTTL > 0 {
		redisClient, err = connectRedis(cfg.Storage.RedisURL)
		if err != nil {
			if cfg.Storage.Backend == config.StorageRedis {
				return nil, err
			}
			logger.Warn().Err(err).Msg("redis unavailable, PokeAPI responses will not be cached")
		} else {
			a.closers = append(a.closers, redisClient.Close)
			logger.Info().Str("url", cfg.Storage.RedisURL).Msg("connected to redis")
		}
	}

	fetcher := pokeapi.NewHTTPFetcher(&pokeapi.FetcherConfig{
		Timeout: cfg.PokeAPI.Timeout,
	})
	if redisClient != nil {
		fetcher = pokeapi.NewCachedFetcher(fetcher, &pokeapi.CacheConfig{
			Client: redisClient,
			TTL:    cfg.PokeAPI.CacheTTL,
			Logger: logger,
		})
	}

	client, err := pokeapi.New(&pokeapi.Config{
		BaseURL: cfg.PokeAPI.BaseURL,
		Fetcher: fetcher,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create PokeAPI client: %w", err)
	}

	providerConfig := &services.ProviderConfig{
		PokeAPIClient: client,
		Logger:        &logger,
		MaxIndex:      cfg.Generator.MaxIndex,
		NatureCount:   cfg.Generator.NatureCount,
	}

	switch cfg.Storage.Backend {
	case config.StorageRedis:
		providerConfig.PokemonRepository, err = pokemons.NewRedis(&pokemons.RedisConfig{
			Client: redisClient,
			Logger: logger,
		})
		if err != nil {
			return nil, err
		}
		providerConfig.TrainerRepository, err = trainers.NewRedis(&trainers.RedisConfig{Client: redisClient})
		if err != nil {
			return nil, err
		}
		logger.Info().Msg("using redis for persistence")

	case config.StoragePostgres:
		db, dbErr := database.Open(&database.Config{DSN: cfg.Storage.DatabaseURL})
		if dbErr != nil {
			return nil, dbErr
		}
		sqlDB, dbErr := db.DB()
		if dbErr != nil {
			return nil, fmt.Errorf("failed to get database handle: %w", dbErr)
		}
		a.closers = append(a.closers, sqlDB.Close)

		providerConfig.PokemonRepository, err = pokemons.NewPostgres(&pokemons.PostgresConfig{DB: db})
		if err != nil {
			return nil, err
		}
		providerConfig.TrainerRepository, err = trainers.NewPostgres(&trainers.PostgresConfig{DB: db})
		if err != nil {
			return nil, err
		}
		logger.Info().Msg("using postgres for persistence")

	default:
		logger.Info().Msg("using in-memory persistence, data is lost on restart")
	}

	a.provider = services.NewProvider(providerConfig)

	return a, nil
}

func connectRedis(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}
