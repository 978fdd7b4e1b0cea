package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the account and polling settings renpho-watch needs.
type Config struct {
	Email    string
	Password string
	UserID   int64
	Refresh  time.Duration
	ProxyURL string
}

const (
	defaultConfigPath     = "~/.config/renpho-watch/config.toml"
	defaultRefreshSeconds = 60
)

// Load locates and parses the renpho-watch config. Email and password are
// required; everything else falls back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config not found at %s", resolved)
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Email          string `toml:"email"`
		Password       string `toml:"password"`
		UserID         int64  `toml:"user_id"`
		RefreshSeconds int    `toml:"refresh_seconds"`
		ProxyURL       string `toml:"proxy_url"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Config{
		Email:    strings.TrimSpace(raw.Email),
		Password: raw.Password,
		UserID:   raw.UserID,
		ProxyURL: strings.TrimSpace(raw.ProxyURL),
	}
	if cfg.Email == "" {
		return Config{}, fmt.Errorf("config %s: email is required", resolved)
	}
	if cfg.Password == "" {
		return Config{}, fmt.Errorf("config %s: password is required", resolved)
	}

	seconds := raw.RefreshSeconds
	if seconds <= 0 {
		seconds = defaultRefreshSeconds
	}
	cfg.Refresh = time.Duration(seconds) * time.Second

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
