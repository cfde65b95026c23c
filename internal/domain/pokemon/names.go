package pokemon

import (
	"strings"

	"github.com/Tenvid/Frikibot/internal/dice"
	boterr "github.com/Tenvid/Frikibot/internal/errors"
)

// DefaultMaxAttempts bounds every re-sampling loop in this package
const DefaultMaxAttempts = 1000

// costume pikachu variants by position in the species variety list
var excludedPikachuPositions = map[int]bool{
	1: true, 2: true, 3: true, 4: true, 5: true, 6: true,
	14: true,
}

var regionalReplacements = []struct {
	from string
	to   string
}{
	{"gmax", "gigantamax"},
	{"alola", "alolan"},
	{"hisui", "hisuian"},
	{"paldea", "paldean"},
	{"galar", "galarian"},
}

// Correction is the result of NameCorrector.Correct
type Correction struct {
	Name     string
	Position int
}

// NameCorrectorConfig configures a NameCorrector
type NameCorrectorConfig struct {
	Roller      dice.Roller
	MaxAttempts int
}

// NameCorrector turns a raw variety name into the name used for sprite lookups
type NameCorrector struct {
	roller      dice.Roller
	maxAttempts int
}

// NewNameCorrector creates a name corrector
func NewNameCorrector(cfg *NameCorrectorConfig) *NameCorrector {
	if cfg == nil || cfg.Roller == nil {
		panic("roller is required")
	}

	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	return &NameCorrector{
		roller:      cfg.Roller,
		maxAttempts: maxAttempts,
	}
}

// Correct applies the naming rules to name, which sits at position in siblings.
// Costume pikachus are re-drawn from siblings. siblings is never modified.
func (c *NameCorrector) Correct(name string, siblings []*Variety, position int) (*Correction, error) {
	if strings.Contains(name, "pikachu") {
		var err error
		name, position, err = c.redrawPikachu(name, siblings, position)
		if err != nil {
			return nil, err
		}
	} else if strings.Contains(name, "minior") {
		if strings.Contains(name, "meteor") {
			name = "minior-meteor"
		} else {
			name += "-core"
		}
	}

	for _, r := range regionalReplacements {
		name = strings.ReplaceAll(name, r.from, r.to)
	}

	return &Correction{
		Name:     name,
		Position: position,
	}, nil
}

func (c *NameCorrector) redrawPikachu(name string, siblings []*Variety, position int) (string, int, error) {
	// a redraw that lands on a non-pikachu sibling is kept
	for attempt := 0; strings.Contains(name, "pikachu") && excludedPikachuPositions[position]; attempt++ {
		if attempt >= c.maxAttempts {
			return "", 0, boterr.SelectionExhaustedf("no allowed pikachu variety after %d draws", c.maxAttempts).
				WithMeta("siblings", len(siblings))
		}

		idx, err := dice.Index(c.roller, len(siblings))
		if err != nil {
			return "", 0, boterr.InvalidArgumentf("cannot redraw pikachu variety: %v", err)
		}

		if siblings[idx] == nil {
			return "", 0, boterr.DataFormatf("variety at position %d is empty", idx)
		}

		name = siblings[idx].Name
		position = idx
	}

	return name, position, nil
}
