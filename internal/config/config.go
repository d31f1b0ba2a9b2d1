package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

var K = koanf.New(".")

// LoadConfig layers configuration into K: config file first, then SLOC_
// environment variables, then the command's flags (highest precedence).
func LoadConfig(flagSet *pflag.FlagSet, configFile string) error {
	// Start from a clean instance so repeated loads don't carry stale keys
	K = koanf.New(".")

	// Load from config file if provided
	if configFile != "" {
		parser, err := parserForFile(configFile)
		if err != nil {
			return fmt.Errorf("unsupported config file format: %w", err)
		}
		if err := K.Load(file.Provider(configFile), parser); err != nil {
			return fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Load from environment variables (prefix "SLOC_")
	// This will convert SLOC_FOO_BAR to foo.bar
	K.Load(env.Provider("SLOC_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "SLOC_")), "_", ".", -1)
	}), nil)

	// Load from command-line flags (highest precedence)
	return K.Load(posflag.Provider(flagSet, ".", K), nil)
}

func parserForFile(path string) (koanf.Parser, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".env":
		return dotenv.Parser(), nil
	default:
		return nil, fmt.Errorf("unknown file extension: %s", ext)
	}
}
