package trainers

//go:generate mockgen -destination=mock/mock.go -package=mocktrainers -source=interface.go

import (
	"context"

	"github.com/Tenvid/Frikibot/internal/domain/pokemon"
)

// Repository defines the interface for trainer persistence
type Repository interface {
	// Get retrieves a trainer by chat user ID, not_found when absent
	Get(ctx context.Context, id string) (*pokemon.Trainer, error)

	// Create stores a new trainer, already_exists when the ID is taken
	Create(ctx context.Context, trainer *pokemon.Trainer) error
}
