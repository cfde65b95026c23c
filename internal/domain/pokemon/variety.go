package pokemon

// Variety references one form of a species
type Variety struct {
	Name      string
	URL       string
	IsDefault bool
}

// MoveEntry is a learnable move of a variety
type MoveEntry struct {
	Name string
}

// AbilityEntry is an ability a variety can have
type AbilityEntry struct {
	Name     string
	IsHidden bool
	Slot     int
}

// Sprites holds the official artwork urls of a variety
type Sprites struct {
	OfficialArtworkDefault string
	OfficialArtworkShiny   string
}

// OfficialArtwork returns the artwork url for a color, empty when absent
func (s *Sprites) OfficialArtwork(color Color) string {
	if s == nil {
		return ""
	}

	switch color {
	case ColorShiny:
		return s.OfficialArtworkShiny
	case ColorDefault:
		return s.OfficialArtworkDefault
	default:
		return ""
	}
}

// VarietyDetails is the full record of a variety as fetched from the provider
type VarietyDetails struct {
	Name      string
	IsDefault bool
	Abilities []*AbilityEntry
	Moves     []*MoveEntry
	// Stats are ordered as StatOrder
	Stats   [6]int
	Types   []string
	Sprites *Sprites
}
