package pokemon

import (
	"github.com/Tenvid/Frikibot/internal/dice"
)

// Color is the cosmetic color style of a generated pokemon
type Color string

const (
	ColorDefault Color = "default"
	ColorShiny   Color = "shiny"
)

const (
	// ShinyRollMax is the top of the inclusive [0, ShinyRollMax] shiny roll
	ShinyRollMax = 100
	// ShinyThreshold is the highest roll that still yields a shiny
	ShinyThreshold = 10
)

// ColorForRoll maps a shiny roll to a color; rolls up to ShinyThreshold are shiny
func ColorForRoll(roll int) Color {
	if roll <= ShinyThreshold {
		return ColorShiny
	}
	return ColorDefault
}

// RollColor draws one integer in [0, ShinyRollMax] and maps it to a color
func RollColor(roller dice.Roller) (Color, error) {
	roll, err := dice.Between(roller, 0, ShinyRollMax)
	if err != nil {
		return "", err
	}
	return ColorForRoll(roll), nil
}

// IsShiny reports whether the color is the shiny style
func (c Color) IsShiny() bool {
	return c == ColorShiny
}
