// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	Port         string
	DataDir      string
	StaticDir    string
	TemplatesDir string
	DebugMode    bool
}

// Load reads configuration from the environment, optionally seeded from a
// .env file. Missing values fall back to prototype-friendly defaults.
func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		Port:         getEnv("PORT", "8080"),
		DataDir:      getEnvPath("DATA_DIR", "data"),
		StaticDir:    getEnvPath("STATIC_DIR", "static"),
		TemplatesDir: getEnv("TEMPLATES_DIR", "web/templates"),
		DebugMode:    getEnvBool("DEBUG_MODE", true),
	}

	return config, nil
}

// SpeechDir is the directory of per-session record files.
func (c *Config) SpeechDir() string {
	return filepath.Join(c.DataDir, "speeches")
}

// ExportDir is where generated transcript exports are written.
func (c *Config) ExportDir() string {
	return filepath.Join(c.DataDir, "exports")
}

// getEnv returns the environment variable or a default.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvPath returns a path from the environment, creating it if missing.
func getEnvPath(key, defaultValue string) string {
	path := getEnv(key, defaultValue)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(path, 0755); err != nil {
			fmt.Printf("warning: failed to create directory %s: %v\n", path, err)
		}
	}

	return path
}

// getEnvBool returns a boolean environment variable.
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value == "true" || value == "1" || value == "yes"
}
