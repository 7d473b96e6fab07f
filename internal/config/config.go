package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Offer element write modes.
const (
	OfferConcurrencyOptimistic    = "optimistic"
	OfferConcurrencyLastWriteWins = "last-write-wins"
)

type Config struct {
	Port             string
	JWTSecret        string
	MongoURI         string
	DBName           string
	SkipAuth         bool
	Environment      string
	AppId            string
	CORSOrigins      string
	OfferConcurrency string        // optimistic | last-write-wins
	StoreTimeout     time.Duration // connect, ping and per-operation store timeout
	LogToDB          bool
}

// IsProduction reports whether the service runs with production logging.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file successfully")
	}

	storeTimeout, err := time.ParseDuration(getEnv("STORE_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		JWTSecret:        getEnv("JWT_SECRET", "secret"),
		MongoURI:         getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:           getEnv("DB_NAME", "fieldops"),
		SkipAuth:         getEnv("SKIP_AUTH", "false") == "true",
		Environment:      getEnv("ENVIRONMENT", "development"),
		AppId:            getEnv("APP_ID", "go-fieldops"),
		CORSOrigins:      getEnv("CORS_ORIGINS", "http://localhost:3000, http://localhost:5173"),
		OfferConcurrency: strings.ToLower(getEnv("OFFER_CONCURRENCY", OfferConcurrencyOptimistic)),
		StoreTimeout:     storeTimeout,
		LogToDB:          getEnv("LOG_TO_DB", "true") == "true",
	}

	switch cfg.OfferConcurrency {
	case OfferConcurrencyOptimistic, OfferConcurrencyLastWriteWins:
	default:
		return nil, fmt.Errorf("invalid OFFER_CONCURRENCY %q", cfg.OfferConcurrency)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
