package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File is the on-disk configuration file (.rstcheck.yaml).
//
// Example:
//
//	strict-rst: true
//	strict-warnings: true
//	languages:
//	  ruby:
//	    extension: .rb
//	    command: [ruby, -c]
//	  c:
//	    extension: .c
//	    command: [clang, -fsyntax-only, -std=c11]
//	    warnings-as-errors: [-Werror]
type File struct {
	// StrictRST sets the default for the --strict-rst flag.
	StrictRST bool `yaml:"strict-rst"`

	// StrictWarnings sets the default for the --strict-warnings flag.
	StrictWarnings bool `yaml:"strict-warnings"`

	// Languages adds or overrides checker entries, keyed by language tag.
	Languages map[string]Language `yaml:"languages"`
}

// Language is one checker entry in the configuration file.
type Language struct {
	// Extension is the temporary file suffix, including the dot.
	Extension string `yaml:"extension"`

	// Command is the checker command line; the snippet path is appended.
	Command []string `yaml:"command"`

	// WarningsAsErrors holds flags appended under strict-warnings mode.
	WarningsAsErrors []string `yaml:"warnings-as-errors"`
}

// LoadConfigFile loads the configuration from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	if cf.Languages == nil {
		cf.Languages = make(map[string]Language)
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
//  1. If configPath is specified, use it directly
//  2. Look for .rstcheck.yaml in the current directory
//  3. Look for .rstcheck.yaml in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if
// not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
