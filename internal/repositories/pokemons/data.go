package pokemons

import (
	"sort"
	"time"

	"github.com/Tenvid/Frikibot/internal/domain/pokemon"
	boterr "github.com/Tenvid/Frikibot/internal/errors"
)

// Data represents the serialized form of a pokemon in Redis
type Data struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	SpeciesIndex int       `json:"species_index"`
	OwnerID      string    `json:"owner_id"`
	FirstType    string    `json:"first_type"`
	SecondType   string    `json:"second_type"`
	Ability      string    `json:"ability"`
	Moves        []string  `json:"moves"`
	Nature       string    `json:"nature"`
	Decreased    string    `json:"decreased,omitempty"`
	Increased    string    `json:"increased,omitempty"`
	Stats        [6]int    `json:"stats"`
	Sprite       string    `json:"sprite,omitempty"`
	Color        string    `json:"color"`
	CreatedAt    time.Time `json:"created_at"`
}

func toData(p *pokemon.Pokemon) *Data {
	data := &Data{
		ID:           p.ID,
		Name:         p.Name,
		SpeciesIndex: p.SpeciesIndex,
		OwnerID:      p.OwnerID,
		FirstType:    p.FirstType,
		SecondType:   p.SecondType,
		Ability:      p.Ability,
		Moves:        p.Moves,
		Sprite:       p.Sprite,
		Color:        string(p.Color),
		CreatedAt:    p.CreatedAt,
	}

	if p.Nature != nil {
		data.Nature = p.Nature.Name
		data.Decreased = string(p.Nature.Decreased)
		data.Increased = string(p.Nature.Increased)
	}
	if p.Stats != nil {
		data.Stats = p.Stats.Values()
	}

	return data
}

func toPokemon(data *Data) (*pokemon.Pokemon, error) {
	nature, err := pokemon.NewNature(data.Nature, data.Decreased, data.Increased)
	if err != nil {
		return nil, boterr.WrapWithCode(err, boterr.CodeDataFormat, "stored pokemon has an invalid nature").
			WithMeta("pokemon_id", data.ID)
	}

	stats, err := pokemon.NewStats(data.Stats, nature.Decreased, nature.Increased)
	if err != nil {
		return nil, boterr.WrapWithCode(err, boterr.CodeDataFormat, "stored pokemon has invalid stats").
			WithMeta("pokemon_id", data.ID)
	}

	moves := make([]string, len(data.Moves))
	copy(moves, data.Moves)

	return &pokemon.Pokemon{
		ID:           data.ID,
		Name:         data.Name,
		SpeciesIndex: data.SpeciesIndex,
		OwnerID:      data.OwnerID,
		FirstType:    data.FirstType,
		SecondType:   data.SecondType,
		Ability:      data.Ability,
		Moves:        moves,
		Nature:       nature,
		Stats:        stats,
		Sprite:       data.Sprite,
		Color:        pokemon.Color(data.Color),
		CreatedAt:    data.CreatedAt,
	}, nil
}

func validateForCreate(p *pokemon.Pokemon) error {
	if p == nil {
		return boterr.InvalidArgument("pokemon cannot be nil")
	}
	if p.OwnerID == "" {
		return boterr.InvalidArgument("owner ID is required")
	}
	if p.Name == "" {
		return boterr.InvalidArgument("pokemon name is required")
	}
	if p.Nature == nil || p.Stats == nil {
		return boterr.InvalidArgument("nature and stats are required")
	}
	return nil
}

func sortByCreated(list []*pokemon.Pokemon) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
}
