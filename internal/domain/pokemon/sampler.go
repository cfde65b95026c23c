package pokemon

import (
	"github.com/Tenvid/Frikibot/internal/dice"
	boterr "github.com/Tenvid/Frikibot/internal/errors"
)

// SamplerConfig configures a Sampler
type SamplerConfig struct {
	Roller dice.Roller
	// MaxStaleDraws caps consecutive draws that add nothing new
	MaxStaleDraws int
}

// Sampler picks random moves and abilities from a variety
type Sampler struct {
	roller        dice.Roller
	maxStaleDraws int
}

// NewSampler creates a sampler
func NewSampler(cfg *SamplerConfig) *Sampler {
	if cfg == nil || cfg.Roller == nil {
		panic("roller is required")
	}

	maxStale := cfg.MaxStaleDraws
	if maxStale <= 0 {
		maxStale = DefaultMaxAttempts
	}

	return &Sampler{
		roller:        cfg.Roller,
		maxStaleDraws: maxStale,
	}
}

// SampleMoves draws count distinct move names, in draw order
func (s *Sampler) SampleMoves(moves []*MoveEntry, count int) ([]string, error) {
	if count < 1 {
		return nil, boterr.InvalidArgumentf("move count must be positive: %d", count)
	}

	distinct := make(map[string]bool, len(moves))
	for i, m := range moves {
		if m == nil || m.Name == "" {
			return nil, boterr.InvalidArgumentf("move entry %d has no name", i)
		}
		distinct[m.Name] = true
	}

	if len(distinct) < count {
		return nil, boterr.InsufficientMovesf("need %d unique moves, variety has %d", count, len(distinct)).
			WithMeta("available", len(distinct))
	}

	selected := make([]string, 0, count)
	seen := make(map[string]bool, count)
	stale := 0

	for len(selected) < count {
		if stale >= s.maxStaleDraws {
			return nil, boterr.InsufficientMovesf("no new move after %d draws, have %d of %d",
				stale, len(selected), count)
		}

		idx, err := dice.Index(s.roller, len(moves))
		if err != nil {
			return nil, boterr.Wrap(err, "failed to draw move")
		}

		name := moves[idx].Name
		if seen[name] {
			stale++
			continue
		}

		seen[name] = true
		selected = append(selected, name)
		stale = 0
	}

	return selected, nil
}

// SampleAbility draws one ability name
func (s *Sampler) SampleAbility(abilities []*AbilityEntry) (string, error) {
	if len(abilities) == 0 {
		return "", boterr.InvalidArgument("variety has no abilities")
	}

	for i, a := range abilities {
		if a == nil || a.Name == "" {
			return "", boterr.InvalidArgumentf("ability entry %d has no name", i)
		}
	}

	idx, err := dice.Index(s.roller, len(abilities))
	if err != nil {
		return "", boterr.Wrap(err, "failed to draw ability")
	}

	return abilities[idx].Name, nil
}
