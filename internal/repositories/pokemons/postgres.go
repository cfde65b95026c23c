package pokemons

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Tenvid/Frikibot/internal/clock"
	"github.com/Tenvid/Frikibot/internal/database"
	"github.com/Tenvid/Frikibot/internal/domain/pokemon"
	boterr "github.com/Tenvid/Frikibot/internal/errors"
	"github.com/Tenvid/Frikibot/internal/uuid"
)

// PostgresConfig configures the gorm repository
type PostgresConfig struct {
	DB            *gorm.DB
	UUIDGenerator uuid.Generator
	Clock         clock.Clock
}

type postgresRepo struct {
	db            *gorm.DB
	uuidGenerator uuid.Generator
	clock         clock.Clock
}

// NewPostgres creates a postgres backed repository. The schema must already be migrated.
func NewPostgres(cfg *PostgresConfig) (Repository, error) {
	if cfg == nil || cfg.DB == nil {
		return nil, boterr.InvalidArgument("database is required")
	}

	repo := &postgresRepo{
		db:            cfg.DB,
		uuidGenerator: cfg.UUIDGenerator,
		clock:         cfg.Clock,
	}
	if repo.uuidGenerator == nil {
		repo.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if repo.clock == nil {
		repo.clock = clock.New()
	}

	return repo, nil
}

func (r *postgresRepo) Create(ctx context.Context, p *pokemon.Pokemon) error {
	if err := validateForCreate(p); err != nil {
		return err
	}

	row := toRow(p)
	if row.ID == "" {
		row.ID = r.uuidGenerator.New()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = r.clock.Now()
	}

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return boterr.AlreadyExistsf("pokemon with ID '%s' already exists", row.ID).
				WithMeta("pokemon_id", row.ID)
		}
		return boterr.Store(err, "failed to insert pokemon").
			WithMeta("pokemon_id", row.ID)
	}

	return nil
}

func (r *postgresRepo) Get(ctx context.Context, id string) (*pokemon.Pokemon, error) {
	if id == "" {
		return nil, boterr.InvalidArgument("pokemon ID is required")
	}

	var row database.Pokemon
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, boterr.NotFoundf("pokemon with ID '%s' not found", id).
			WithMeta("pokemon_id", id)
	}
	if err != nil {
		return nil, boterr.Store(err, "failed to load pokemon")
	}

	return fromRow(&row)
}

func (r *postgresRepo) ListByOwner(ctx context.Context, ownerID string) ([]*pokemon.Pokemon, error) {
	if ownerID == "" {
		return nil, boterr.InvalidArgument("owner ID is required")
	}

	rows := []database.Pokemon{}
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at, id").
		Find(&rows).Error; err != nil {
		return nil, boterr.Store(err, "failed to list trainer pokemon")
	}

	list := make([]*pokemon.Pokemon, 0, len(rows))
	for i := range rows {
		p, err := fromRow(&rows[i])
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}

	return list, nil
}

func toRow(p *pokemon.Pokemon) *database.Pokemon {
	data := toData(p)
	moves := make([]string, pokemon.MoveCount)
	copy(moves, data.Moves)

	return &database.Pokemon{
		ID:             data.ID,
		OwnerID:        data.OwnerID,
		Name:           data.Name,
		SpeciesIndex:   data.SpeciesIndex,
		Type1:          data.FirstType,
		Type2:          data.SecondType,
		Ability:        data.Ability,
		Move1:          moves[0],
		Move2:          moves[1],
		Move3:          moves[2],
		Move4:          moves[3],
		Nature:         data.Nature,
		Decreased:      data.Decreased,
		Increased:      data.Increased,
		HP:             data.Stats[0],
		Attack:         data.Stats[1],
		Defense:        data.Stats[2],
		SpecialAttack:  data.Stats[3],
		SpecialDefense: data.Stats[4],
		Speed:          data.Stats[5],
		Sprite:         data.Sprite,
		Color:          data.Color,
		CreatedAt:      data.CreatedAt,
	}
}

func fromRow(row *database.Pokemon) (*pokemon.Pokemon, error) {
	moves := make([]string, 0, pokemon.MoveCount)
	for _, m := range []string{row.Move1, row.Move2, row.Move3, row.Move4} {
		if m != "" {
			moves = append(moves, m)
		}
	}

	return toPokemon(&Data{
		ID:           row.ID,
		Name:         row.Name,
		SpeciesIndex: row.SpeciesIndex,
		OwnerID:      row.OwnerID,
		FirstType:    row.Type1,
		SecondType:   row.Type2,
		Ability:      row.Ability,
		Moves:        moves,
		Nature:       row.Nature,
		Decreased:    row.Decreased,
		Increased:    row.Increased,
		Stats: [6]int{
			row.HP, row.Attack, row.Defense, row.SpecialAttack, row.SpecialDefense, row.Speed,
		},
		Sprite:    row.Sprite,
		Color:     row.Color,
		CreatedAt: row.CreatedAt,
	})
}
