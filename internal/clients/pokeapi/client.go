package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=mockpokeapi -source=client.go

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Tenvid/Frikibot/internal/domain/pokemon"
	boterr "github.com/Tenvid/Frikibot/internal/errors"
)

// DefaultBaseURL is the public PokeAPI endpoint
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// Client reads the species, variety and nature data the generator needs
type Client interface {
	ListVarieties(ctx context.Context, speciesIndex int) ([]*pokemon.Variety, error)
	GetVarietyDetails(ctx context.Context, url string) (*pokemon.VarietyDetails, error)
	GetNature(ctx context.Context, id int) (*pokemon.Nature, error)
}

type client struct {
	baseURL string
	fetcher Fetcher
}

// Config configures the client
type Config struct {
	BaseURL string
	Fetcher Fetcher
}

// New creates a PokeAPI client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, boterr.InvalidArgument("cfg is required")
	}
	if cfg.Fetcher == nil {
		return nil, boterr.InvalidArgument("fetcher is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		fetcher: cfg.Fetcher,
	}, nil
}

func (c *client) ListVarieties(ctx context.Context, speciesIndex int) ([]*pokemon.Variety, error) {
	if speciesIndex < 1 {
		return nil, boterr.InvalidArgumentf("species index must be positive: %d", speciesIndex)
	}

	var resp speciesResponse
	if err := c.get(ctx, fmt.Sprintf("%s/pokemon-species/%d", c.baseURL, speciesIndex), &resp); err != nil {
		return nil, err
	}

	return speciesToVarieties(speciesIndex, &resp)
}

func (c *client) GetVarietyDetails(ctx context.Context, url string) (*pokemon.VarietyDetails, error) {
	if url == "" {
		return nil, boterr.InvalidArgument("variety url is required")
	}

	var resp pokemonResponse
	if err := c.get(ctx, url, &resp); err != nil {
		return nil, err
	}

	return pokemonToVarietyDetails(&resp)
}

func (c *client) GetNature(ctx context.Context, id int) (*pokemon.Nature, error) {
	if id < 1 {
		return nil, boterr.InvalidArgumentf("nature id must be positive: %d", id)
	}

	var resp natureResponse
	if err := c.get(ctx, fmt.Sprintf("%s/nature/%d", c.baseURL, id), &resp); err != nil {
		return nil, err
	}

	return natureFromResponse(&resp)
}

// get returns provider errors unwrapped so callers can classify them
func (c *client) get(ctx context.Context, url string, out any) error {
	body, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return boterr.WrapWithCode(err, boterr.CodeDataFormat, "failed to decode "+url)
	}

	return nil
}
