package services

import (
	"github.com/rs/zerolog"

	"github.com/Tenvid/Frikibot/internal/clients/pokeapi"
	"github.com/Tenvid/Frikibot/internal/dice"
	"github.com/Tenvid/Frikibot/internal/repositories/pokemons"
	"github.com/Tenvid/Frikibot/internal/repositories/trainers"
	generatorService "github.com/Tenvid/Frikibot/internal/services/generator"
)

// Provider holds all service instances
type Provider struct {
	GeneratorService generatorService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	PokeAPIClient     pokeapi.Client
	PokemonRepository pokemons.Repository
	TrainerRepository trainers.Repository
	Roller            dice.Roller
	Logger            *zerolog.Logger
	MaxIndex          int
	NatureCount       int
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repositories if none provided
	pokemonRepo := cfg.PokemonRepository
	if pokemonRepo == nil {
		pokemonRepo = pokemons.NewInMemoryRepository(nil)
	}

	trainerRepo := cfg.TrainerRepository
	if trainerRepo == nil {
		trainerRepo = trainers.NewInMemoryRepository(nil)
	}

	genService := generatorService.NewService(&generatorService.ServiceConfig{
		Client:      cfg.PokeAPIClient,
		PokemonRepo: pokemonRepo,
		TrainerRepo: trainerRepo,
		Roller:      cfg.Roller,
		Logger:      cfg.Logger,
		MaxIndex:    cfg.MaxIndex,
		NatureCount: cfg.NatureCount,
	})

	return &Provider{
		GeneratorService: genService,
	}
}
