package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Backend identifies which transaction store backs the service.
type Backend string

const (
	// BackendSQLite is the local embedded database, the default for a
	// single-operator installation in the village office.
	BackendSQLite Backend = "sqlite"
	// BackendPostgres is a remote hosted database (Supabase or any managed
	// Postgres) for installations that want off-site storage.
	BackendPostgres Backend = "postgres"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string

	// Store backend selection
	DBBackend Backend

	// SQLite
	SQLitePath string

	// Postgres
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),

		// Store
		DBBackend:  Backend(getEnv("DB_BACKEND", "sqlite")),
		SQLitePath: getEnv("SQLITE_PATH", "./data/kaslele.db"),

		// Postgres
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "kaslele"),
		DBPassword: getEnv("DB_PASSWORD", "kaslele"),
		DBName:     getEnv("DB_NAME", "kaslele"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	switch config.DBBackend {
	case BackendSQLite, BackendPostgres:
	default:
		return nil, fmt.Errorf("invalid DB_BACKEND %q: must be sqlite or postgres", config.DBBackend)
	}

	return config, nil
}

// PostgresDSN returns the Postgres connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// PostgresURL returns the Postgres connection URL used by the migration tool.
func (c *Config) PostgresURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
