package testutils

import (
	"time"

	"github.com/Tenvid/Frikibot/internal/domain/pokemon"
)

// CreateTestNature creates a nature, panicking on invalid input
func CreateTestNature(name string, decreased, increased pokemon.Stat) *pokemon.Nature {
	nature, err := pokemon.NewNature(name, string(decreased), string(increased))
	if err != nil {
		panic(err)
	}
	return nature
}

// CreateTestVarietyDetails creates the lucario variety used across tests
func CreateTestVarietyDetails() *pokemon.VarietyDetails {
	return &pokemon.VarietyDetails{
		Name:      "lucario",
		IsDefault: true,
		Abilities: []*pokemon.AbilityEntry{
			{Name: "steadfast", Slot: 1},
			{Name: "inner-focus", Slot: 2},
			{Name: "justified", Slot: 3, IsHidden: true},
		},
		Moves: []*pokemon.MoveEntry{
			{Name: "aura-sphere"},
			{Name: "close-combat"},
			{Name: "extreme-speed"},
			{Name: "bone-rush"},
			{Name: "dragon-pulse"},
		},
		Stats: [6]int{70, 110, 70, 115, 70, 90},
		Types: []string{"fighting", "steel"},
		Sprites: &pokemon.Sprites{
			OfficialArtworkDefault: "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/448.png",
			OfficialArtworkShiny:   "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/shiny/448.png",
		},
	}
}

// CreateTestPokemon creates an impish lucario owned by ownerID
func CreateTestPokemon(id, ownerID string, createdAt time.Time) *pokemon.Pokemon {
	nature := CreateTestNature("impish", pokemon.StatSpecialAttack, pokemon.StatDefense)
	stats, err := pokemon.NewStats([6]int{70, 110, 70, 115, 70, 90}, nature.Decreased, nature.Increased)
	if err != nil {
		panic(err)
	}

	return &pokemon.Pokemon{
		ID:           id,
		Name:         "lucario",
		SpeciesIndex: 448,
		OwnerID:      ownerID,
		FirstType:    "fighting",
		SecondType:   "steel",
		Ability:      "justified",
		Moves:        []string{"aura-sphere", "close-combat", "extreme-speed", "bone-rush"},
		Nature:       nature,
		Stats:        stats,
		Sprite:       "https://img.test/448.png",
		Color:        pokemon.ColorDefault,
		CreatedAt:    createdAt,
	}
}

// CreateTestTrainer creates an enabled trainer
func CreateTestTrainer(id, name string) *pokemon.Trainer {
	return &pokemon.Trainer{
		ID:      id,
		Name:    name,
		Enabled: true,
	}
}
