package trainers

import (
	"context"
	"sync"

	"github.com/Tenvid/Frikibot/internal/clock"
	"github.com/Tenvid/Frikibot/internal/domain/pokemon"
	boterr "github.com/Tenvid/Frikibot/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the trainer repository
type InMemoryRepository struct {
	mu       sync.RWMutex
	trainers map[string]*pokemon.Trainer
	clock    clock.Clock
}

// InMemoryConfig configures the in-memory trainer repository
type InMemoryConfig struct {
	Clock clock.Clock
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository(cfg *InMemoryConfig) Repository {
	repo := &InMemoryRepository{
		trainers: make(map[string]*pokemon.Trainer),
		clock:    clock.New(),
	}
	if cfg != nil && cfg.Clock != nil {
		repo.clock = cfg.Clock
	}

	return repo
}

// Get retrieves a trainer by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*pokemon.Trainer, error) {
	if id == "" {
		return nil, boterr.InvalidArgument("trainer ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	trainer, exists := r.trainers[id]
	if !exists {
		return nil, boterr.NotFoundf("trainer with ID '%s' not found", id).
			WithMeta("trainer_id", id)
	}

	trainerCopy := *trainer
	return &trainerCopy, nil
}

// Create stores a new trainer
func (r *InMemoryRepository) Create(ctx context.Context, trainer *pokemon.Trainer) error {
	if err := validate(trainer); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.trainers[trainer.ID]; exists {
		return boterr.AlreadyExistsf("trainer with ID '%s' already exists", trainer.ID).
			WithMeta("trainer_id", trainer.ID)
	}

	if trainer.CreatedAt.IsZero() {
		trainer.CreatedAt = r.clock.Now()
	}

	trainerCopy := *trainer
	r.trainers[trainer.ID] = &trainerCopy

	return nil
}

func validate(trainer *pokemon.Trainer) error {
	if trainer == nil {
		return boterr.InvalidArgument("trainer cannot be nil")
	}
	if trainer.ID == "" {
		return boterr.InvalidArgument("trainer ID is required")
	}
	return nil
}
