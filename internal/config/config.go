package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	Providers ProviderConfig
	Household HouseholdConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// ProviderConfig holds external price/exchange-rate provider configuration.
// MarketAPIKey may be empty; the pricing gateway then serves the fixed mock
// price table instead of calling the provider.
type ProviderConfig struct {
	ExchangeRateURL string
	MarketDataURL   string
	MarketAPIKey    string
	FernetKey       string // base64 key for encrypting the stored API key
}

// HouseholdConfig holds the known household member labels used to seed the
// per-owner net-worth buckets.
type HouseholdConfig struct {
	Members []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/finanzas_hogar.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Providers: ProviderConfig{
			ExchangeRateURL: getEnv("EXCHANGE_RATE_URL", "https://monedapi.ar/api/usd"),
			MarketDataURL:   getEnv("MARKET_DATA_URL", "https://www.alphavantage.co/query"),
			MarketAPIKey:    getEnv("MARKET_API_KEY", ""),
			FernetKey:       getEnv("SETTINGS_FERNET_KEY", ""),
		},
		Household: HouseholdConfig{
			Members: splitList(getEnv("HOUSEHOLD_MEMBERS", "Yo,Ella,Común")),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	members := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			members = append(members, trimmed)
		}
	}
	return members
}
