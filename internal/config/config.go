package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the directory program.
type Config struct {
	App     AppConfig
	Logger  LoggerConfig
	Console ConsoleConfig
}

// AppConfig identifies the running program.
type AppConfig struct {
	Name    string
	Env     string
	Version string
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level    string
	Encoding string
	Output   string
}

// ConsoleConfig controls the interactive command loop.
type ConsoleConfig struct {
	Prompt       string
	ShowBanner   bool
	ScriptPath   string
	MaxLineBytes int
}

// DefaultMaxLineBytes bounds a single command line.
const DefaultMaxLineBytes = 1 << 20

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:    getEnv("APP_NAME", "staff-directory"),
			Env:     getEnv("APP_ENV", "development"),
			Version: getEnv("APP_VERSION", "dev"),
		},
		Logger: LoggerConfig{
			Level:    getEnv("LOG_LEVEL", "warn"),
			Encoding: getEnv("LOG_ENCODING", "json"),
			Output:   getEnv("LOG_OUTPUT", "stderr"),
		},
		Console: ConsoleConfig{
			Prompt:       getEnv("DIRECTORY_PROMPT", "Enter command: "),
			ShowBanner:   getEnvAsBool("DIRECTORY_SHOW_BANNER", true),
			ScriptPath:   os.Getenv("DIRECTORY_SCRIPT"),
			MaxLineBytes: getEnvAsInt("DIRECTORY_MAX_LINE_BYTES", DefaultMaxLineBytes),
		},
	}

	if cfg.Console.MaxLineBytes <= 0 {
		cfg.Console.MaxLineBytes = DefaultMaxLineBytes
	}

	return cfg, nil
}

// Interactive reports whether commands come from a terminal rather than a script.
func (c ConsoleConfig) Interactive() bool {
	return c.ScriptPath == ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
