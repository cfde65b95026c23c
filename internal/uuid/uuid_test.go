package uuid_test

import (
	"testing"

	googleuuid "github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Tenvid/Frikibot/internal/uuid"
)

func TestGoogleUUIDGenerator(t *testing.T) {
	gen := uuid.NewGoogleUUIDGenerator()

	id := gen.New()
	_, err := googleuuid.Parse(id)
	assert.NoError(t, err)
	assert.NotEqual(t, id, gen.New())
}

func TestSequentialGenerator(t *testing.T) {
	gen := uuid.NewSequentialGenerator("pkmn")

	assert.Equal(t, "pkmn-1", gen.New())
	assert.Equal(t, "pkmn-2", gen.New())
}
