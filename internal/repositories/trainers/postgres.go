package trainers

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Tenvid/Frikibot/internal/clock"
	"github.com/Tenvid/Frikibot/internal/database"
	"github.com/Tenvid/Frikibot/internal/domain/pokemon"
	boterr "github.com/Tenvid/Frikibot/internal/errors"
)

// PostgresConfig configures the gorm trainer repository
type PostgresConfig struct {
	DB    *gorm.DB
	Clock clock.Clock
}

type postgresRepo struct {
	db    *gorm.DB
	clock clock.Clock
}

// NewPostgres creates a gorm backed trainer repository. The schema must already be migrated.
func NewPostgres(cfg *PostgresConfig) (Repository, error) {
	if cfg == nil || cfg.DB == nil {
		return nil, boterr.InvalidArgument("database is required")
	}

	repo := &postgresRepo{
		db:    cfg.DB,
		clock: cfg.Clock,
	}
	if repo.clock == nil {
		repo.clock = clock.New()
	}

	return repo, nil
}

func (r *postgresRepo) Get(ctx context.Context, id string) (*pokemon.Trainer, error) {
	if id == "" {
		return nil, boterr.InvalidArgument("trainer ID is required")
	}

	var row database.Trainer
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, boterr.NotFoundf("trainer with ID '%s' not found", id).
			WithMeta("trainer_id", id)
	}
	if err != nil {
		return nil, boterr.Store(err, "failed to load trainer")
	}

	return &pokemon.Trainer{
		ID:        row.ID,
		Name:      row.Name,
		Enabled:   row.Enabled,
		CreatedAt: row.CreatedAt,
	}, nil
}

func (r *postgresRepo) Create(ctx context.Context, trainer *pokemon.Trainer) error {
	if err := validate(trainer); err != nil {
		return err
	}

	if trainer.CreatedAt.IsZero() {
		trainer.CreatedAt = r.clock.Now()
	}

	// Select keeps gorm from swapping a false Enabled for the column default
	err := r.db.WithContext(ctx).
		Select("ID", "Name", "Enabled", "CreatedAt").
		Create(&database.Trainer{
			ID:        trainer.ID,
			Name:      trainer.Name,
			Enabled:   trainer.Enabled,
			CreatedAt: trainer.CreatedAt,
		}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return boterr.AlreadyExistsf("trainer with ID '%s' already exists", trainer.ID).
			WithMeta("trainer_id", trainer.ID)
	}
	if err != nil {
		return boterr.Store(err, "failed to insert trainer").
			WithMeta("trainer_id", trainer.ID)
	}

	return nil
}
