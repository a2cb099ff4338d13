package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig is the optional per-project configuration. Everything has a
// sensible default; the file only exists to pin a pg_dump binary or to
// extend the ignorable-statement allow-list for dumps produced by wrapper
// tooling.
type ProjectConfig struct {
	// PgDumpBinary is the pg_dump executable to invoke; defaults to
	// "pg_dump" resolved via PATH.
	PgDumpBinary string `yaml:"pg_dump_binary,omitempty"`

	// Format is the default output format, "t" (tar) or "d" (directory).
	// The CLI flag and output-path suffix take precedence.
	Format string `yaml:"format,omitempty"`

	// AllowStatements lists extra statement prefixes to drop as cosmetic,
	// on top of the built-in allow-list (SET ..., SELECT
	// pg_catalog.set_config(...)).
	AllowStatements []string `yaml:"allow_statements,omitempty"`

	// EnvFile is a dotenv file loaded before invoking pg_dump, for
	// PGPASSWORD and friends.
	EnvFile string `yaml:"env_file,omitempty"`
}

const ConfigFileName = "pgsplit.yaml"

// Load reads pgsplit.yaml from the given directory.
func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
