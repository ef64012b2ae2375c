// Package config handles loading and validating the lecturenotes configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration for the lecturenotes service.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Transcriber TranscriberConfig `mapstructure:"transcriber"`
	Gemini      GeminiConfig      `mapstructure:"gemini"`
	OpenAI      OpenAIConfig      `mapstructure:"openai"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port       int    `mapstructure:"port"`
	HealthPort int    `mapstructure:"health_port"`
	UploadDir  string `mapstructure:"upload_dir"`
}

// TranscriberConfig selects and configures the speech-to-text backend.
type TranscriberConfig struct {
	Backend string `mapstructure:"backend"` // "gemini" or "whisper"

	// PollInterval and PollTimeout bound the remote-processing wait of the
	// gemini backend. The whisper backend ignores both.
	PollInterval time.Duration `mapstructure:"poll_interval"`
	PollTimeout  time.Duration `mapstructure:"poll_timeout"`
}

// GeminiConfig holds Gemini API settings. The same model serves both text
// generation and audio transcription.
type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// OpenAIConfig holds OpenAI API settings for the whisper transcriber.
type OpenAIConfig struct {
	APIKey             string `mapstructure:"api_key"`
	TranscriptionModel string `mapstructure:"transcription_model"`
	Endpoint           string `mapstructure:"endpoint"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}

// Load reads the configuration from file, environment variables, and defaults.
// If configFile is non-empty it is used directly; otherwise the standard
// search order applies: ./lecturenotes.yaml, ./configs/lecturenotes.yaml,
// /etc/lecturenotes/lecturenotes.yaml.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.health_port", 8081)
	v.SetDefault("server.upload_dir", "uploads")
	v.SetDefault("transcriber.backend", "gemini")
	v.SetDefault("transcriber.poll_interval", "1s")
	v.SetDefault("transcriber.poll_timeout", "30s")
	v.SetDefault("gemini.api_key", "${GEMINI_API_KEY}")
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("openai.api_key", "${OPENAI_API_KEY}")
	v.SetDefault("openai.transcription_model", "whisper-1")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("lecturenotes")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/lecturenotes")
	}

	// Environment variables: LECTURENOTES_SERVER_PORT, LECTURENOTES_TRANSCRIBER_BACKEND, etc.
	v.SetEnvPrefix("LECTURENOTES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (optional — env vars and defaults are sufficient)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		slog.Info("no config file found, using defaults and environment variables")
	} else {
		slog.Info("loaded config file", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// Resolve env var references in the credential fields (e.g., "${GEMINI_API_KEY}")
	cfg.Gemini.APIKey = resolveEnvRef(cfg.Gemini.APIKey)
	cfg.OpenAI.APIKey = resolveEnvRef(cfg.OpenAI.APIKey)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the loaded configuration can actually run. Missing
// credentials are fatal here so the process refuses to start rather than
// failing on the first request.
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("gemini.api_key is required (set GEMINI_API_KEY)")
	}

	switch c.Transcriber.Backend {
	case "gemini":
	case "whisper":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("openai.api_key is required for the whisper transcriber (set OPENAI_API_KEY)")
		}
	default:
		return fmt.Errorf("unknown transcriber backend %q (expected \"gemini\" or \"whisper\")", c.Transcriber.Backend)
	}

	if c.Transcriber.PollInterval <= 0 {
		return fmt.Errorf("transcriber.poll_interval must be positive")
	}
	if c.Transcriber.PollTimeout <= 0 {
		return fmt.Errorf("transcriber.poll_timeout must be positive")
	}
	if c.Server.UploadDir == "" {
		return fmt.Errorf("server.upload_dir is required")
	}

	return nil
}

// resolveEnvRef replaces a "${VAR_NAME}" value with the corresponding env
// var value. An unset variable resolves to empty so validation catches it.
func resolveEnvRef(val string) string {
	if strings.HasPrefix(val, "${") && strings.HasSuffix(val, "}") {
		return os.Getenv(val[2 : len(val)-1])
	}
	return val
}

// SetupLogging configures the global slog logger based on config.
func SetupLogging(cfg LoggingConfig) {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}
