package pokeapi

import (
	"sort"

	"github.com/Tenvid/Frikibot/internal/domain/pokemon"
	boterr "github.com/Tenvid/Frikibot/internal/errors"
)

const officialArtworkKey = "official-artwork"

func speciesToVarieties(index int, resp *speciesResponse) ([]*pokemon.Variety, error) {
	if len(resp.Varieties) == 0 {
		return nil, boterr.DataFormatf("species %d has no varieties", index).
			WithMeta("species_index", index)
	}

	varieties := make([]*pokemon.Variety, 0, len(resp.Varieties))
	for i, v := range resp.Varieties {
		if v == nil || v.Pokemon == nil || v.Pokemon.Name == "" || v.Pokemon.URL == "" {
			return nil, boterr.DataFormatf("species %d variety %d is missing pokemon reference", index, i).
				WithMeta("species_index", index)
		}

		varieties = append(varieties, &pokemon.Variety{
			Name:      v.Pokemon.Name,
			URL:       v.Pokemon.URL,
			IsDefault: v.IsDefault,
		})
	}

	return varieties, nil
}

func pokemonToVarietyDetails(resp *pokemonResponse) (*pokemon.VarietyDetails, error) {
	if resp.Name == "" {
		return nil, boterr.DataFormatf("variety payload has no name")
	}

	stats, err := toStatValues(resp.Name, resp.Stats)
	if err != nil {
		return nil, err
	}

	types, err := toTypes(resp.Name, resp.Types)
	if err != nil {
		return nil, err
	}

	abilities := make([]*pokemon.AbilityEntry, 0, len(resp.Abilities))
	for _, a := range resp.Abilities {
		if a == nil || a.Ability == nil {
			continue
		}
		abilities = append(abilities, &pokemon.AbilityEntry{
			Name:     a.Ability.Name,
			IsHidden: a.IsHidden,
			Slot:     a.Slot,
		})
	}

	moves := make([]*pokemon.MoveEntry, 0, len(resp.Moves))
	for _, m := range resp.Moves {
		if m == nil || m.Move == nil {
			continue
		}
		moves = append(moves, &pokemon.MoveEntry{Name: m.Move.Name})
	}

	return &pokemon.VarietyDetails{
		Name:      resp.Name,
		IsDefault: resp.IsDefault,
		Abilities: abilities,
		Moves:     moves,
		Stats:     stats,
		Types:     types,
		Sprites:   toSprites(resp.Sprites),
	}, nil
}

// toStatValues orders stats by name when the payload names them, positionally otherwise
func toStatValues(name string, slots []*statSlot) ([6]int, error) {
	var values [6]int

	if len(slots) != len(pokemon.StatOrder) {
		return values, boterr.MalformedVarietyDataf("variety %s has %d stats", name, len(slots)).
			WithMeta("variety", name)
	}

	seen := make(map[pokemon.Stat]bool, len(slots))
	for i, slot := range slots {
		if slot == nil {
			return values, boterr.MalformedVarietyDataf("variety %s stat %d is empty", name, i)
		}

		stat := pokemon.StatOrder[i]
		if slot.Stat != nil && slot.Stat.Name != "" {
			stat = pokemon.Stat(slot.Stat.Name)
		}
		if !stat.IsValid() || seen[stat] {
			return values, boterr.MalformedVarietyDataf("variety %s has unexpected stat %q", name, stat)
		}
		seen[stat] = true

		for j, s := range pokemon.StatOrder {
			if s == stat {
				values[j] = slot.BaseStat
			}
		}
	}

	return values, nil
}

func toTypes(name string, slots []*typeSlot) ([]string, error) {
	if len(slots) < 1 || len(slots) > 2 {
		return nil, boterr.MalformedVarietyDataf("variety %s has %d types", name, len(slots)).
			WithMeta("variety", name)
	}

	ordered := make([]*typeSlot, len(slots))
	copy(ordered, slots)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i] != nil && ordered[j] != nil && ordered[i].Slot < ordered[j].Slot
	})

	types := make([]string, 0, len(ordered))
	for _, t := range ordered {
		if t == nil || t.Type == nil || t.Type.Name == "" {
			return nil, boterr.MalformedVarietyDataf("variety %s has an unnamed type", name)
		}
		types = append(types, t.Type.Name)
	}

	return types, nil
}

func toSprites(payload *spritesPayload) *pokemon.Sprites {
	if payload == nil {
		return nil
	}

	art, ok := payload.Other[officialArtworkKey]
	if !ok || art == nil {
		return nil
	}

	sprites := &pokemon.Sprites{}
	if art.FrontDefault != nil {
		sprites.OfficialArtworkDefault = *art.FrontDefault
	}
	if art.FrontShiny != nil {
		sprites.OfficialArtworkShiny = *art.FrontShiny
	}

	return sprites
}

// natureFromResponse treats absent stat records as a neutral nature
func natureFromResponse(resp *natureResponse) (*pokemon.Nature, error) {
	var decreased, increased string
	if resp.DecreasedStat != nil {
		decreased = resp.DecreasedStat.Name
	}
	if resp.IncreasedStat != nil {
		increased = resp.IncreasedStat.Name
	}

	return pokemon.NewNature(resp.Name, decreased, increased)
}
