package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "KUBERA_"

// DefaultFile is the optional YAML settings file read from the working
// directory.
const DefaultFile = "kubera.yaml"

// Config holds the process-wide settings, loaded once at startup and
// read-only thereafter.
type Config struct {
	ServiceName    string
	ServiceVersion string
	DBPath         string
	HTTPPort       string
}

// Load builds the configuration from three layers: built-in defaults, the
// optional YAML file at path, then KUBERA_* environment variables
// (KUBERA_DB_PATH -> db.path). Later layers win.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"service.name":    "kubera",
		"service.version": "1.0",
		"db.path":         "kubera.db",
		"http.port":       "9446",
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, err
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, err
	}

	return &Config{
		ServiceName:    k.String("service.name"),
		ServiceVersion: k.String("service.version"),
		DBPath:         k.String("db.path"),
		HTTPPort:       k.String("http.port"),
	}, nil
}
