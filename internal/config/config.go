// Package config reads runtime settings from the environment.
// main loads a .env file (if any) with godotenv before calling Load.
package config

import (
	"os"
)

// Config holds every setting the commands need.
type Config struct {
	Port     string
	LogLevel string
	Env      string // NODE_ENV; "production" hardens cookies

	StartWordsFile string
	DictionaryFile string
	Language       string
	DictionaryDB   string // sqlite path; empty keeps the dictionary in memory

	DailySalt    string
	JWTSecret    string
	CookieName   string
	ClientOrigin string
}

// Load returns the configuration with defaults applied.
func Load() Config {
	return Config{
		Port:           getEnv("PORT", "5175"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Env:            os.Getenv("NODE_ENV"),
		StartWordsFile: os.Getenv("WORDS_START_FILE"),
		DictionaryFile: os.Getenv("WORDS_DICTIONARY_FILE"),
		Language:       getEnv("WORDS_LANGUAGE", "en"),
		DictionaryDB:   os.Getenv("DICTIONARY_DB"),
		DailySalt:      getEnv("DAILY_SALT", "local_dev_salt"),
		JWTSecret:      getEnv("JWT_SECRET", "dev_secret_change_me"),
		CookieName:     getEnv("COOKIE_NAME", "wordscramble_round"),
		ClientOrigin:   getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
	}
}

// Production reports whether NODE_ENV is "production".
func (c Config) Production() bool { return c.Env == "production" }

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
