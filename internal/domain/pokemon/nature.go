package pokemon

import (
	boterr "github.com/Tenvid/Frikibot/internal/errors"
)

// Nature lowers one stat and raises another, or is neutral
type Nature struct {
	Name      string
	Decreased Stat
	Increased Stat
}

// NewNature validates a nature. Both slots empty means neutral.
func NewNature(name, decreased, increased string) (*Nature, error) {
	if name == "" {
		return nil, boterr.DataFormatf("nature name is required")
	}

	n := &Nature{
		Name:      name,
		Decreased: Stat(decreased),
		Increased: Stat(increased),
	}

	if (decreased == "") != (increased == "") {
		return nil, boterr.InvalidArgumentf("nature %s must modify two stats or none", name).
			WithMeta("nature", name)
	}

	if n.IsNeutral() {
		return n, nil
	}

	if !n.Decreased.IsValid() || !n.Increased.IsValid() {
		return nil, boterr.InvalidArgumentf("nature %s references unknown stats %q/%q", name, decreased, increased).
			WithMeta("nature", name)
	}

	if n.Decreased == n.Increased {
		return nil, boterr.InvalidArgumentf("nature %s decreases and increases the same stat", name).
			WithMeta("nature", name)
	}

	return n, nil
}

// IsNeutral reports whether the nature leaves every stat untouched
func (n *Nature) IsNeutral() bool {
	return n.Decreased == "" && n.Increased == ""
}

// DisplayName is the capitalized nature name
func (n *Nature) DisplayName() string {
	return Capitalize(n.Name)
}
