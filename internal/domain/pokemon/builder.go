package pokemon

import (
	boterr "github.com/Tenvid/Frikibot/internal/errors"
)

// BuildInput carries everything Build needs to assemble one pokemon
type BuildInput struct {
	SpeciesIndex int
	OwnerID      string
	Variety      *VarietyDetails
	Nature       *Nature
	Color        Color
}

// Builder assembles a Pokemon from fetched data
type Builder struct {
	sampler *Sampler
}

// NewBuilder creates a builder drawing moves and abilities from sampler
func NewBuilder(sampler *Sampler) *Builder {
	if sampler == nil {
		panic("sampler is required")
	}
	return &Builder{sampler: sampler}
}

// Build assembles the record. It does not persist anything.
func (b *Builder) Build(input *BuildInput) (*Pokemon, error) {
	if input == nil {
		return nil, boterr.InvalidArgument("input is required")
	}
	if input.SpeciesIndex < 1 {
		return nil, boterr.InvalidArgumentf("species index must be positive: %d", input.SpeciesIndex)
	}
	if input.Variety == nil {
		return nil, boterr.InvalidArgument("variety is required")
	}
	if input.Nature == nil {
		return nil, boterr.InvalidArgument("nature is required")
	}

	variety := input.Variety

	if len(variety.Types) < 1 || len(variety.Types) > 2 {
		return nil, boterr.MalformedVarietyDataf("variety %s has %d types", variety.Name, len(variety.Types)).
			WithMeta("variety", variety.Name)
	}

	secondType := NoType
	if len(variety.Types) == 2 {
		secondType = variety.Types[1]
	}

	moves, err := b.sampler.SampleMoves(variety.Moves, MoveCount)
	if err != nil {
		return nil, err
	}

	ability, err := b.sampler.SampleAbility(variety.Abilities)
	if err != nil {
		return nil, err
	}

	stats, err := NewStats(variety.Stats, input.Nature.Decreased, input.Nature.Increased)
	if err != nil {
		return nil, err
	}

	color := input.Color
	if color == "" {
		color = ColorDefault
	}

	return &Pokemon{
		Name:         variety.Name,
		SpeciesIndex: input.SpeciesIndex,
		OwnerID:      input.OwnerID,
		FirstType:    variety.Types[0],
		SecondType:   secondType,
		Ability:      ability,
		Moves:        moves,
		Nature:       input.Nature,
		Stats:        stats,
		Sprite:       variety.Sprites.OfficialArtwork(color),
		Color:        color,
	}, nil
}
