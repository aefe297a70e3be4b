package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the path checked for YAML configuration.
const DefaultConfigFile = "pigeon.yaml"

// Load returns a Config using the hierarchy: defaults < YAML < ENV.
// YAML file is optional; missing file is not an error.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigFile)
}

// LoadFrom returns a Config loaded from the given YAML path using the
// hierarchy: defaults < YAML < ENV. The YAML file is optional.
func LoadFrom(yamlPath string) (*Config, error) {
	cfg := Defaults()

	if err := loadYAML(&cfg, yamlPath); err != nil {
		return nil, fmt.Errorf("config yaml: %w", err)
	}

	loadEnv(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validate: %w", err)
	}

	return &cfg, nil
}

// loadYAML reads the YAML file and unmarshals it over cfg.
// Returns nil if the file does not exist.
func loadYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is validated by caller
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

// loadEnv overlays environment variables onto cfg.
// Only non-empty env values override the current config.
func loadEnv(cfg *Config) {
	setString(&cfg.Server.Port, "PIGEON_PORT")
	setString(&cfg.Server.CORSOrigin, "PIGEON_CORS_ORIGIN")
	setString(&cfg.SMTP.Host, "SMTP_HOST")
	setInt(&cfg.SMTP.Port, "SMTP_PORT")
	setString(&cfg.SMTP.Username, "SMTP_USER")
	setString(&cfg.SMTP.Password, "SMTP_PASS")
	setString(&cfg.SMTP.From, "FROM_EMAIL")
	setDuration(&cfg.SMTP.SendTimeout, "PIGEON_SMTP_TIMEOUT")
	setString(&cfg.Tokens.File, "CONFIG_FILE")
	setString(&cfg.Logo.Path, "LOGO_PATH")
	setString(&cfg.Logging.Level, "PIGEON_LOG_LEVEL")
	setString(&cfg.Logging.Service, "PIGEON_LOG_SERVICE")
	setString(&cfg.Telemetry.Endpoint, "OTEL_EXPORTER_OTLP_ENDPOINT")
}

// validate checks that required fields are set. The SMTP credentials are
// required so the process fails fast before accepting traffic.
func validate(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if cfg.SMTP.Host == "" {
		return errors.New("smtp.host is required")
	}
	if cfg.SMTP.Port < 1 {
		return errors.New("smtp.port must be >= 1")
	}
	if cfg.SMTP.Username == "" {
		return errors.New("smtp.username is required (SMTP_USER)")
	}
	if cfg.SMTP.Password == "" {
		return errors.New("smtp.password is required (SMTP_PASS)")
	}
	if cfg.SMTP.From == "" {
		return errors.New("smtp.from is required (FROM_EMAIL)")
	}
	if cfg.SMTP.SendTimeout <= 0 {
		return errors.New("smtp.send_timeout must be positive")
	}
	if cfg.Tokens.File == "" {
		return errors.New("tokens.file is required")
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
