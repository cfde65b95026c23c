package pokemon

import (
	"time"
)

const (
	// MoveCount is how many unique moves a generated pokemon knows
	MoveCount = 4

	// NoType marks an absent secondary type
	NoType = "none"
)

// Pokemon is a generated pokemon owned by a trainer
type Pokemon struct {
	ID           string
	Name         string
	SpeciesIndex int
	OwnerID      string
	FirstType    string
	SecondType   string
	Ability      string
	Moves        []string
	Nature       *Nature
	Stats        *Stats
	Sprite       string
	Color        Color
	CreatedAt    time.Time
}

// HasSecondType reports whether the pokemon is dual typed
func (p *Pokemon) HasSecondType() bool {
	return p.SecondType != "" && p.SecondType != NoType
}

// DisplayName is the capitalized name
func (p *Pokemon) DisplayName() string {
	return Capitalize(p.Name)
}
