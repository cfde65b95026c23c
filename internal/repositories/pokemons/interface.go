package pokemons

//go:generate mockgen -destination=mock/mock.go -package=mockpokemons -source=interface.go

import (
	"context"

	"github.com/Tenvid/Frikibot/internal/domain/pokemon"
)

// Repository defines the interface for generated pokemon persistence
type Repository interface {
	// Create stores a new pokemon, assigning ID and CreatedAt when empty
	Create(ctx context.Context, p *pokemon.Pokemon) error

	// Get retrieves a pokemon by ID
	Get(ctx context.Context, id string) (*pokemon.Pokemon, error)

	// ListByOwner returns the owner's pokemon, oldest first
	ListByOwner(ctx context.Context, ownerID string) ([]*pokemon.Pokemon, error)
}
