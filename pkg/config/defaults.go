// Package config provides centralized default values for cardpress
package config

import (
	"bufio"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

var envLoaded sync.Once

func loadEnvFile() {
	envLoaded.Do(func() {
		file, err := os.Open(".env")
		if err != nil {
			return
		}
		defer file.Close()

		log.Println("Loading configuration overrides from .env file...")
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())

			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}

			parts := strings.SplitN(line, "=", 2)
			if len(parts) != 2 {
				continue
			}

			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])

			if os.Getenv(key) == "" {
				os.Setenv(key, value)
			}
		}
	})
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
		}
		return val
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.ParseBool(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%t (default: %t)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

var (
	// Server Configuration
	Port               string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration

	// Card source endpoint (remote JSON list of render requests)
	CardsAPIURL  string
	FetchTimeout time.Duration

	// Published site configuration
	CanonicalBaseURL string
	OutputDir        string

	// Placeholder image service (URL constructed, never fetched)
	PlaceholderImageBaseURL string
	DefaultFaviconPath      string
	DefaultPlaceholderColor string

	// Logging
	LogJSONFormat bool
	LogDirectory  string
	LogToFile     bool
)

func init() {
	loadEnvFile()

	// Server Configuration
	Port = getEnvString("PORT", "8080")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)

	// Card source
	CardsAPIURL = getEnvString("CARDS_API_URL", "https://api.cardpress.io/v1/cards/export")
	FetchTimeout = getEnvDuration("CARDS_FETCH_TIMEOUT", 30*time.Second)

	// Published site
	CanonicalBaseURL = getEnvString("CANONICAL_BASE_URL", "https://card.cardpress.io")
	OutputDir = getEnvString("OUTPUT_DIR", "dist")

	// Placeholder assets
	PlaceholderImageBaseURL = getEnvString("PLACEHOLDER_IMAGE_BASE_URL", "https://ui-avatars.com/api/")
	DefaultFaviconPath = getEnvString("DEFAULT_FAVICON_PATH", "/favicon.svg")
	DefaultPlaceholderColor = getEnvString("DEFAULT_PLACEHOLDER_COLOR", "#3B82F6")

	// Logging
	LogJSONFormat = getEnvBool("LOG_JSON", false)
	LogDirectory = getEnvString("LOG_DIRECTORY", "logs")
	LogToFile = getEnvBool("LOG_TO_FILE", false)
}
