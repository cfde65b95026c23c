package pokemon

import (
	"strconv"
	"strings"
	"unicode"

	boterr "github.com/Tenvid/Frikibot/internal/errors"
)

// Stat names a combat stat as PokeAPI spells it
type Stat string

const (
	StatHP             Stat = "hp"
	StatAttack         Stat = "attack"
	StatDefense        Stat = "defense"
	StatSpecialAttack  Stat = "special-attack"
	StatSpecialDefense Stat = "special-defense"
	StatSpeed          Stat = "speed"
)

// StatOrder is the fixed order stats are stored and rendered in
var StatOrder = [6]Stat{
	StatHP,
	StatAttack,
	StatDefense,
	StatSpecialAttack,
	StatSpecialDefense,
	StatSpeed,
}

const (
	ansiDecreased = "\u001b[0;34m"
	ansiIncreased = "\u001b[0;31m"
	ansiReset     = "\u001b[0;0m"
)

// IsValid reports whether s is one of the six combat stats
func (s Stat) IsValid() bool {
	return s.index() >= 0
}

// Label is the display form: dashes become spaces, first letter upper-cased
func (s Stat) Label() string {
	return Capitalize(strings.ReplaceAll(string(s), "-", " "))
}

func (s Stat) index() int {
	for i, stat := range StatOrder {
		if stat == s {
			return i
		}
	}
	return -1
}

// Stats holds base stats and the two nature slots. Modifiers are applied when
// rendering, never baked into the stored values.
type Stats struct {
	values    [6]int
	decreased Stat
	increased Stat
}

// NewStats validates and stores base stats in StatOrder
func NewStats(values [6]int, decreased, increased Stat) (*Stats, error) {
	for i, v := range values {
		if v < 0 {
			return nil, boterr.InvalidArgumentf("stat %s cannot be negative: %d", StatOrder[i], v)
		}
	}

	if (decreased == "") != (increased == "") {
		return nil, boterr.InvalidArgumentf("nature slots must both be set or both be empty (decreased=%q, increased=%q)",
			decreased, increased)
	}

	if decreased != "" {
		if !decreased.IsValid() {
			return nil, boterr.InvalidArgumentf("unknown decreased stat %q", decreased)
		}
		if !increased.IsValid() {
			return nil, boterr.InvalidArgumentf("unknown increased stat %q", increased)
		}
		if decreased == increased {
			return nil, boterr.InvalidArgumentf("decreased and increased stat cannot both be %q", decreased)
		}
	}

	return &Stats{
		values:    values,
		decreased: decreased,
		increased: increased,
	}, nil
}

// Values returns the base stats in StatOrder
func (s *Stats) Values() [6]int {
	return s.values
}

// Value returns the base value of a stat
func (s *Stats) Value(stat Stat) int {
	idx := stat.index()
	if idx < 0 {
		return 0
	}
	return s.values[idx]
}

// Decreased returns the stat lowered by the nature, empty when neutral
func (s *Stats) Decreased() Stat {
	return s.decreased
}

// Increased returns the stat raised by the nature, empty when neutral
func (s *Stats) Increased() Stat {
	return s.increased
}

// IsNeutral reports whether no stat is modified
func (s *Stats) IsNeutral() bool {
	return s.decreased == ""
}

// Modified returns the value shown for a stat: floor(v*0.9) when decreased,
// floor(v*1.1) when increased. Integer math keeps the floor exact.
func (s *Stats) Modified(stat Stat) int {
	v := s.Value(stat)
	switch {
	case s.decreased != "" && stat == s.decreased:
		return v * 9 / 10
	case s.increased != "" && stat == s.increased:
		return v * 11 / 10
	default:
		return v
	}
}

// Render formats the stats as an ansi code block, one line per stat
func (s *Stats) Render() string {
	lines := make([]string, 0, len(StatOrder))
	for _, stat := range StatOrder {
		lines = append(lines, s.renderLine(stat))
	}

	return "```ansi\n" + strings.Join(lines, "\n") + "```"
}

func (s *Stats) renderLine(stat Stat) string {
	value := strconv.Itoa(s.Modified(stat))

	switch {
	case s.decreased != "" && stat == s.decreased:
		return ansiDecreased + stat.Label() + ": " + value + "-" + ansiReset
	case s.increased != "" && stat == s.increased:
		// no space after the colon on increased lines
		return ansiIncreased + stat.Label() + ":" + value + "+" + ansiReset
	default:
		return stat.Label() + ": " + value
	}
}

// String implements fmt.Stringer
func (s *Stats) String() string {
	return s.Render()
}

// Capitalize upper-cases the first letter and lower-cases the rest
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
