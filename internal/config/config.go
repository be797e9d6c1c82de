// Package config loads client and server configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Client configures the TUI client. Variables carry the TODOTERM_ prefix,
// e.g. TODOTERM_API_BASE_URL.
type Client struct {
	APIBaseURL string `envconfig:"API_BASE_URL" default:"http://localhost:8080"`
	ConfigDir  string `envconfig:"CONFIG_DIR"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
}

// Server configures the bundled dev backend. Variables carry the
// TODOSERVER_ prefix.
type Server struct {
	Addr        string `envconfig:"ADDR" default:":8080"`
	JWTSecret   string `envconfig:"JWT_SECRET" default:"dev-only-secret"`
	TokenTTLMin int    `envconfig:"TOKEN_TTL_MIN" default:"1440"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadClient reads the client config. A missing .env is not an error.
func LoadClient() (Client, error) {
	_ = godotenv.Load(".env")

	var c Client
	if err := envconfig.Process("TODOTERM", &c); err != nil {
		return Client{}, fmt.Errorf("process env: %w", err)
	}
	if c.ConfigDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Client{}, fmt.Errorf("home: %w", err)
		}
		c.ConfigDir = filepath.Join(home, ".todoterm")
	}
	return c, nil
}

// LoadServer reads the dev backend config.
func LoadServer() (Server, error) {
	_ = godotenv.Load(".env")

	var s Server
	if err := envconfig.Process("TODOSERVER", &s); err != nil {
		return Server{}, fmt.Errorf("process env: %w", err)
	}
	return s, nil
}
