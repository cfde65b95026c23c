package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// StorageBackend selects where generated pokemon are stored
type StorageBackend string

const (
	StorageMemory   StorageBackend = "memory"
	StorageRedis    StorageBackend = "redis"
	StoragePostgres StorageBackend = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	Discord   DiscordConfig
	Storage   StorageConfig
	PokeAPI   PokeAPIConfig
	Generator GeneratorConfig
	Log       LogConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string
	AppID   string
	GuildID string // Optional: for guild-specific commands
	// Cooldown is the minimum time between two commands of the same user
	Cooldown time.Duration
}

// StorageConfig holds persistence configuration
type StorageConfig struct {
	Backend     StorageBackend
	RedisURL    string
	DatabaseURL string
}

// PokeAPIConfig holds data provider configuration
type PokeAPIConfig struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// GeneratorConfig holds the random generation bounds
type GeneratorConfig struct {
	MaxIndex    int
	NatureCount int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Discord: DiscordConfig{
			Token:    os.Getenv("DISCORD_TOKEN"),
			AppID:    os.Getenv("DISCORD_APP_ID"),
			GuildID:  os.Getenv("DISCORD_GUILD_ID"),
			Cooldown: getEnvAsDurationOrDefault("COMMAND_COOLDOWN", 5*time.Second),
		},
		Storage: StorageConfig{
			Backend:     StorageBackend(strings.ToLower(getEnvOrDefault("STORAGE_BACKEND", string(StorageMemory)))),
			RedisURL:    getEnvOrDefault("REDIS_URL", "redis://localhost:6379/0"),
			DatabaseURL: os.Getenv("DATABASE_URL"),
		},
		PokeAPI: PokeAPIConfig{
			BaseURL:  getEnvOrDefault("POKEAPI_URL", "https://pokeapi.co/api/v2"),
			Timeout:  getEnvAsDurationOrDefault("POKEAPI_TIMEOUT", 10*time.Second),
			CacheTTL: getEnvAsDurationOrDefault("POKEAPI_CACHE_TTL", 0),
		},
		Generator: GeneratorConfig{
			MaxIndex:    getEnvAsIntOrDefault("POKEMON_MAX_INDEX", 1010),
			NatureCount: getEnvAsIntOrDefault("NATURE_COUNT", 25),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Pretty: getEnvAsBoolOrDefault("LOG_PRETTY", false),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// RequireDiscord checks the settings needed to connect the bot
func (c *Config) RequireDiscord() error {
	if c.Discord.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.Discord.AppID == "" {
		return fmt.Errorf("DISCORD_APP_ID is required")
	}
	return nil
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case StorageMemory, StorageRedis:
	case StoragePostgres:
		if c.Storage.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.Storage.Backend)
	}

	if c.Generator.MaxIndex < 1 {
		return fmt.Errorf("POKEMON_MAX_INDEX must be positive")
	}
	if c.Generator.NatureCount < 1 {
		return fmt.Errorf("NATURE_COUNT must be positive")
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
