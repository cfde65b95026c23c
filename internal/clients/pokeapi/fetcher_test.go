package pokeapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tenvid/Frikibot/internal/clients/pokeapi"
)

func TestHTTPFetcher_OK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/nature/1", r.URL.Path)
		_, _ = w.Write([]byte(`{"name":"hardy"}`))
	}))
	defer server.Close()

	fetcher := pokeapi.NewHTTPFetcher(&pokeapi.FetcherConfig{Timeout: time.Second})

	body, err := fetcher.Fetch(context.Background(), server.URL+"/nature/1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"hardy"}`, string(body))
}

func TestHTTPFetcher_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	fetcher := pokeapi.NewHTTPFetcher(nil)
	url := server.URL + "/pokemon-species/9999"

	_, err := fetcher.Fetch(context.Background(), url)
	require.Error(t, err)

	var providerErr *pokeapi.ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, pokeapi.ErrorKindBadStatus, providerErr.Kind)
	assert.Equal(t, http.StatusNotFound, providerErr.StatusCode)
	assert.Equal(t, url, providerErr.URL)
}

func TestHTTPFetcher_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	fetcher := pokeapi.NewHTTPFetcher(&pokeapi.FetcherConfig{Timeout: 50 * time.Millisecond})

	_, err := fetcher.Fetch(context.Background(), server.URL)
	require.Error(t, err)

	var providerErr *pokeapi.ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, pokeapi.ErrorKindTimeout, providerErr.Kind)
}

func TestHTTPFetcher_ConnectionFailed(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	fetcher := pokeapi.NewHTTPFetcher(nil)

	_, err := fetcher.Fetch(context.Background(), url)
	require.Error(t, err)

	var providerErr *pokeapi.ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, pokeapi.ErrorKindConnectionFailed, providerErr.Kind)
	assert.True(t, pokeapi.IsProviderError(err))
}
