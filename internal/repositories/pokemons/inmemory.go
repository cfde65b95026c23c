package pokemons

import (
	"context"
	"sync"

	"github.com/Tenvid/Frikibot/internal/clock"
	"github.com/Tenvid/Frikibot/internal/domain/pokemon"
	boterr "github.com/Tenvid/Frikibot/internal/errors"
	"github.com/Tenvid/Frikibot/internal/uuid"
)

// InMemoryConfig configures the in-memory repository
type InMemoryConfig struct {
	UUIDGenerator uuid.Generator
	Clock         clock.Clock
}

// InMemoryRepository is an in-memory implementation of the pokemon repository
// Useful for testing and development
type InMemoryRepository struct {
	mu            sync.RWMutex
	pokemon       map[string]*pokemon.Pokemon
	byOwner       map[string][]string
	uuidGenerator uuid.Generator
	clock         clock.Clock
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository(cfg *InMemoryConfig) Repository {
	repo := &InMemoryRepository{
		pokemon:       make(map[string]*pokemon.Pokemon),
		byOwner:       make(map[string][]string),
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
		clock:         clock.New(),
	}

	if cfg != nil {
		if cfg.UUIDGenerator != nil {
			repo.uuidGenerator = cfg.UUIDGenerator
		}
		if cfg.Clock != nil {
			repo.clock = cfg.Clock
		}
	}

	return repo
}

// Create stores a new pokemon
func (r *InMemoryRepository) Create(ctx context.Context, p *pokemon.Pokemon) error {
	if err := validateForCreate(p); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyPokemon(p)
	if stored.ID == "" {
		stored.ID = r.uuidGenerator.New()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = r.clock.Now()
	}

	if _, exists := r.pokemon[stored.ID]; exists {
		return boterr.AlreadyExistsf("pokemon with ID '%s' already exists", stored.ID).
			WithMeta("pokemon_id", stored.ID)
	}

	r.pokemon[stored.ID] = stored
	r.byOwner[stored.OwnerID] = append(r.byOwner[stored.OwnerID], stored.ID)

	return nil
}

// Get retrieves a pokemon by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*pokemon.Pokemon, error) {
	if id == "" {
		return nil, boterr.InvalidArgument("pokemon ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.pokemon[id]
	if !exists {
		return nil, boterr.NotFoundf("pokemon with ID '%s' not found", id).
			WithMeta("pokemon_id", id)
	}

	return copyPokemon(p), nil
}

// ListByOwner returns the owner's pokemon in insertion order
func (r *InMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*pokemon.Pokemon, error) {
	if ownerID == "" {
		return nil, boterr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byOwner[ownerID]
	result := make([]*pokemon.Pokemon, 0, len(ids))
	for _, id := range ids {
		result = append(result, copyPokemon(r.pokemon[id]))
	}

	return result, nil
}

// Stats and Nature are immutable so sharing them is safe
func copyPokemon(p *pokemon.Pokemon) *pokemon.Pokemon {
	c := *p
	c.Moves = make([]string, len(p.Moves))
	copy(c.Moves, p.Moves)
	return &c
}
