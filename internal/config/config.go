package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"
)

const (
	UIAuto = "auto"
	UILine = "line"
	UITUI  = "tui"
)

// Config holds the application configuration.
type Config struct {
	WorldPath   string
	Language    string
	MaxItems    int
	UI          string
	WrapWidth   int
	LogLevel    slog.Level
	Environment string
}

// LoadConfig loads the configuration. Values come from, in increasing order of
// precedence: built-in defaults, the ini file named by TEXTROOMS_CONFIG, a .env
// file in the working directory and the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	file := map[string]string{}
	if path := os.Getenv("TEXTROOMS_CONFIG"); path != "" {
		var err error
		file, err = readFile(path)
		if err != nil {
			return nil, err
		}
	}

	get := func(env, key, def string) string {
		if v := os.Getenv(env); v != "" {
			return v
		}
		if v, ok := file[key]; ok && v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		WorldPath:   get("TEXTROOMS_WORLD", "world", ""),
		Language:    strings.ToLower(get("TEXTROOMS_LANG", "lang", "de")),
		UI:          strings.ToLower(get("TEXTROOMS_UI", "ui", UIAuto)),
		Environment: get("ENVIRONMENT", "environment", "development"),
	}

	var err error
	if cfg.MaxItems, err = parseInt("TEXTROOMS_MAX_ITEMS", get("TEXTROOMS_MAX_ITEMS", "max_items", "0")); err != nil {
		return nil, err
	}
	if cfg.WrapWidth, err = parseInt("TEXTROOMS_WRAP", get("TEXTROOMS_WRAP", "wrap", "79")); err != nil {
		return nil, err
	}
	if cfg.LogLevel, err = parseLogLevel(get("LOG_LEVEL", "log_level", "info")); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readFile reads the [game] section of an ini config file.
func readFile(path string) (map[string]string, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	values := make(map[string]string)
	for _, key := range f.Section("game").Keys() {
		values[key.Name()] = key.String()
	}
	return values, nil
}

func (c *Config) validate() error {
	switch c.UI {
	case UIAuto, UILine, UITUI:
	default:
		return fmt.Errorf("TEXTROOMS_UI must be one of auto, line or tui, got %q", c.UI)
	}
	switch c.Language {
	case "de", "en":
	default:
		return fmt.Errorf("TEXTROOMS_LANG must be de or en, got %q", c.Language)
	}
	if c.MaxItems < 0 {
		return fmt.Errorf("TEXTROOMS_MAX_ITEMS must not be negative, got %d", c.MaxItems)
	}
	if c.WrapWidth < 0 {
		return fmt.Errorf("TEXTROOMS_WRAP must not be negative, got %d", c.WrapWidth)
	}
	return nil
}

func parseInt(name, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%s is not a number: %q", name, value)
	}
	return n, nil
}

func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown LOG_LEVEL %q", level)
	}
}
