package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mockpokeapi "github.com/Tenvid/Frikibot/internal/clients/pokeapi/mock"
	"github.com/Tenvid/Frikibot/internal/services"
)

func TestNewProvider_DefaultsToInMemory(t *testing.T) {
	ctrl := gomock.NewController(t)

	provider := services.NewProvider(&services.ProviderConfig{
		PokeAPIClient: mockpokeapi.NewMockClient(ctrl),
	})

	assert.NotNil(t, provider.GeneratorService)
}

func TestNewProvider_RequiresClient(t *testing.T) {
	assert.Panics(t, func() {
		services.NewProvider(&services.ProviderConfig{})
	})
}
