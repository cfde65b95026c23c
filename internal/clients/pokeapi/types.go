package pokeapi

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type speciesResponse struct {
	ID        int                `json:"id"`
	Name      string             `json:"name"`
	Varieties []*varietyResource `json:"varieties"`
}

type varietyResource struct {
	IsDefault bool           `json:"is_default"`
	Pokemon   *namedResource `json:"pokemon"`
}

type pokemonResponse struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	IsDefault bool            `json:"is_default"`
	Abilities []*abilitySlot  `json:"abilities"`
	Moves     []*moveSlot     `json:"moves"`
	Stats     []*statSlot     `json:"stats"`
	Types     []*typeSlot     `json:"types"`
	Sprites   *spritesPayload `json:"sprites"`
}

type abilitySlot struct {
	Ability  *namedResource `json:"ability"`
	IsHidden bool           `json:"is_hidden"`
	Slot     int            `json:"slot"`
}

type moveSlot struct {
	Move *namedResource `json:"move"`
}

type statSlot struct {
	BaseStat int            `json:"base_stat"`
	Stat     *namedResource `json:"stat"`
}

type typeSlot struct {
	Slot int            `json:"slot"`
	Type *namedResource `json:"type"`
}

type spritesPayload struct {
	Other map[string]*artwork `json:"other"`
}

type artwork struct {
	FrontDefault *string `json:"front_default"`
	FrontShiny   *string `json:"front_shiny"`
}

type natureResponse struct {
	ID            int            `json:"id"`
	Name          string         `json:"name"`
	DecreasedStat *namedResource `json:"decreased_stat"`
	IncreasedStat *namedResource `json:"increased_stat"`
}
