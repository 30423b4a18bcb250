package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string

	// Data directory with the flat-file stores
	DataDir string

	// Store file names, resolved against DataDir
	ComponentsFile   string
	AuditsFile       string
	CertificatesFile string
	SuppliersFile    string
	UsersFile        string
	QuestionsFile    string

	// Session configuration
	SessionTTLMinutes int

	// Certificate expiry warning window
	CertExpiryWindowDays int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:                 getEnv("PORT", "3000"),
		DataDir:              getEnv("DATA_DIR", "data"),
		ComponentsFile:       getEnv("COMPONENTS_FILE", "components.json"),
		AuditsFile:           getEnv("AUDITS_FILE", "audits.csv"),
		CertificatesFile:     getEnv("CERTIFICATES_FILE", "certificates.json"),
		SuppliersFile:        getEnv("SUPPLIERS_FILE", "suppliers.csv"),
		UsersFile:            getEnv("USERS_FILE", "users.json"),
		QuestionsFile:        getEnv("QUESTIONS_FILE", "questions.json"),
		SessionTTLMinutes:    getEnvAsInt("SESSION_TTL_MINUTES", 120),
		CertExpiryWindowDays: getEnvAsInt("CERT_EXPIRY_WINDOW_DAYS", 30),
	}

	// Validate required fields
	if cfg.DataDir == "" {
		return nil, fmt.Errorf("DATA_DIR is required")
	}
	if cfg.SessionTTLMinutes <= 0 {
		return nil, fmt.Errorf("SESSION_TTL_MINUTES must be positive")
	}
	if cfg.CertExpiryWindowDays <= 0 {
		return nil, fmt.Errorf("CERT_EXPIRY_WINDOW_DAYS must be positive")
	}

	return cfg, nil
}

// StorePath resolves a store file name against the data directory.
func (c *Config) StorePath(name string) string {
	return filepath.Join(c.DataDir, name)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
