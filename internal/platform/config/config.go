package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const envPrefix = "REALESTATE_"

// Log format names accepted by REALESTATE_LOG_FORMAT.
const (
	LogFormatText  = "text"
	LogFormatJSON  = "json"
	LogFormatColor = "color"
)

// App captures process level configuration for the demo driver.
type App struct {
	Name             string
	LogLevel         string
	LogFormat        string
	MetricsNamespace string
}

// FromEnv builds the config from environment variables so main stays lean.
// When REALESTATE_ENV_FILE is set that file must exist; otherwise a .env in the
// working directory is loaded if present. Variables already set in the
// environment win over the file.
func FromEnv() (App, error) {
	if err := loadEnvFile(os.Getenv(envPrefix + "ENV_FILE")); err != nil {
		return App{}, err
	}

	cfg := App{
		Name:             getenv("APP_NAME", "realestate-demo"),
		LogLevel:         strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogFormat:        strings.ToLower(getenv("LOG_FORMAT", LogFormatText)),
		MetricsNamespace: getenv("METRICS_NAMESPACE", "realestate"),
	}
	if err := cfg.Validate(); err != nil {
		return App{}, err
	}
	return cfg, nil
}

// Validate rejects values the logger and metrics packages cannot use.
func (c App) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid %sLOG_LEVEL %q", envPrefix, c.LogLevel)
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON, LogFormatColor:
	default:
		return fmt.Errorf("invalid %sLOG_FORMAT %q", envPrefix, c.LogFormat)
	}
	if strings.ContainsAny(c.MetricsNamespace, " -.") {
		return fmt.Errorf("invalid %sMETRICS_NAMESPACE %q", envPrefix, c.MetricsNamespace)
	}
	return nil
}

func loadEnvFile(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load env file %s: %w", path, err)
		}
		return nil
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(envPrefix + key)); v != "" {
		return v
	}
	return fallback
}
