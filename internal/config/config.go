package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Addr is the HTTP listen address.
	Addr string

	// DatabaseURL selects Postgres when set; otherwise SQLitePath is
	// used with the sqlite3 driver.
	DatabaseURL string
	SQLitePath  string

	// CookieSecret signs the session cookie.
	CookieSecret string

	// StaticDir holds the frontend files.
	StaticDir string
}

func Load() *Config {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	return &Config{
		Addr:         getEnvDefault("ADDR", ":8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		SQLitePath:   getEnvDefault("SQLITE_PATH", "splitchat.db"),
		CookieSecret: os.Getenv("COOKIE_SECRET"),
		StaticDir:    getEnvDefault("STATIC_DIR", "static"),
	}
}

// Driver returns the database/sql driver name and DSN for this config.
func (c *Config) Driver() (string, string) {
	if c.DatabaseURL != "" {
		return "postgres", c.DatabaseURL
	}
	return "sqlite3", c.SQLitePath
}

func getEnvDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
