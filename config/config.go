package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the process needs to start. It is populated
// once in main and passed down; nothing reads the environment after Load.
type Config struct {
	ListenAddr  string // TCP address the task API listens on
	AdminAddr   string // HTTP address for healthz/readyz
	DatabaseURL string // lib/pq connection string
}

// Load reads configuration from the environment. A .env file in the
// working directory is honored when present and ignored otherwise.
//
// DATABASE_URL takes precedence; without it the connection string is
// assembled from DB_HOST, DB_PORT, DB_USER, DB_PASSWORD and DB_NAME,
// all of which are then required.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		ListenAddr:  getenvDefault("LISTEN_ADDR", ":8080"),
		AdminAddr:   getenvDefault("ADMIN_ADDR", ":8081"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	if cfg.DatabaseURL == "" {
		host := os.Getenv("DB_HOST")
		port := os.Getenv("DB_PORT")
		user := os.Getenv("DB_USER")
		password := os.Getenv("DB_PASSWORD")
		name := os.Getenv("DB_NAME")

		if host == "" || port == "" || user == "" || password == "" || name == "" {
			return Config{}, errors.New("set DATABASE_URL, or all of DB_HOST, DB_PORT, DB_USER, DB_PASSWORD and DB_NAME")
		}

		cfg.DatabaseURL = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host, port, user, password, name)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
