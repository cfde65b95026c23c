package dice

import (
	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"
)

// randomRoller implements Roller on top of the rpg-toolkit roller
type randomRoller struct {
	roller toolkitdice.Roller
}

// NewRandomRoller creates a roller backed by the toolkit's default (crypto) roller
func NewRandomRoller() Roller {
	return &randomRoller{
		roller: toolkitdice.DefaultRoller,
	}
}

// NewRollerFrom wraps any toolkit roller, e.g. a seeded one
func NewRollerFrom(roller toolkitdice.Roller) Roller {
	if roller == nil {
		return NewRandomRoller()
	}
	return &randomRoller{roller: roller}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if err := validate(count, sides); err != nil {
		return nil, err
	}

	rolls, err := r.roller.RollN(count, sides)
	if err != nil {
		return nil, err
	}

	total := bonus
	for _, roll := range rolls {
		total += roll
	}

	return &RollResult{
		Total: total,
		Rolls: rolls,
		Bonus: bonus,
		Count: count,
		Sides: sides,
	}, nil
}
