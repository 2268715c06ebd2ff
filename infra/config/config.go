package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application-level configuration.
type Config struct {
	BaseURL   string        // AnimeVerse backend, e.g. "https://api.animeverse.app"
	DataDir   string        // Directory for the local key-value store
	PollEvery time.Duration // Staff chat refresh interval
}

// Load reads configuration from the environment, after loading a .env
// file when one is present in the working directory.
//
//	ANIMEVERSE_URL    - backend base URL (default: http://localhost:5000)
//	ANIMEVERSE_DATA   - state directory (default: ~/.config/animeverse)
//	ANIMEVERSE_POLL   - staff chat poll interval (default: 10s)
func Load() (Config, error) {
	_ = godotenv.Load()

	base := os.Getenv("ANIMEVERSE_URL")
	if base == "" {
		base = "http://localhost:5000"
	}
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, fmt.Errorf("invalid ANIMEVERSE_URL: must be an absolute URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return Config{}, fmt.Errorf("invalid ANIMEVERSE_URL: only http and https are allowed")
	}
	base = strings.TrimRight(parsed.String(), "/")

	dataDir := os.Getenv("ANIMEVERSE_DATA")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".config", "animeverse")
	}

	poll := 10 * time.Second
	if raw := os.Getenv("ANIMEVERSE_POLL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid ANIMEVERSE_POLL: %q", raw)
		}
		poll = d
	}

	return Config{
		BaseURL:   base,
		DataDir:   dataDir,
		PollEvery: poll,
	}, nil
}
