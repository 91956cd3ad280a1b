package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.recap.yaml",               // Project-specific config (highest priority)
	"~/.config/recap/config.yaml", // User config
	"/etc/recap/config.yaml",      // System config (lowest priority)
}

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
	warn        func(format string, args ...any)
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
		warn: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format, args...)
		},
	}
}

// LoadConfig loads configuration from multiple sources with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables (RECAP_*)
// 3. ./.recap.yaml
// 4. ~/.config/recap/config.yaml
// 5. /etc/recap/config.yaml
// 6. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	config := DefaultConfig()

	// If custom path is provided, use only that path
	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// Load lowest priority first so higher priority files win
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			expandedPath := expandPath(l.configPaths[i])
			if fileExists(expandedPath) {
				if err := l.loadFromFile(config, expandedPath); err != nil {
					l.warn("Warning: Failed to load config from %s: %v\n", expandedPath, err)
				}
			}
		}
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFromFile loads configuration from a YAML file and merges it with existing config
func (l *Loader) loadFromFile(config *Config, path string) error {
	// #nosec G304 - path is validated by validateConfigPath() or comes from ConfigPaths
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	fileConfig, err := Parse(data)
	if err != nil {
		return err
	}

	mergeConfigs(config, fileConfig)
	return nil
}

// Parse decodes a YAML document without defaults or validation
func Parse(data []byte) (*Config, error) {
	var fileConfig Config
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &fileConfig, nil
}

// applyEnvOverrides applies RECAP_* environment variables to the config.
// Unset variables leave the current values in place.
func applyEnvOverrides(config *Config) error {
	if err := env.Parse(&config.Presentation); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if err := env.Parse(&config.Display); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// GetConfigPaths returns the list of configuration file paths that will be searched
func GetConfigPaths() []string {
	paths := make([]string, 0, len(ConfigPaths))
	for _, path := range ConfigPaths {
		paths = append(paths, expandPath(path))
	}
	return paths
}

// FindConfigFile finds the first existing config file in the search paths
func FindConfigFile() (string, bool) {
	for _, path := range ConfigPaths {
		expandedPath := expandPath(path)
		if fileExists(expandedPath) {
			return expandedPath, true
		}
	}
	return "", false
}

// validateConfigPath validates that a config path is safe to read
func validateConfigPath(path string) error {
	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must have .yaml or .yml extension")
	}

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if strings.HasPrefix(absPath, "/proc/") || strings.HasPrefix(absPath, "/sys/") {
		return fmt.Errorf("access to system files not allowed")
	}

	return nil
}

// ValidatePath exposes the config path checks to commands that read a deck
// file directly
func ValidatePath(path string) error {
	return validateConfigPath(path)
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// mergeConfigs merges source config into destination config.
// Only non-zero values from source overwrite destination.
func mergeConfigs(dst, src *Config) {
	if src.Version != "" {
		dst.Version = src.Version
	}

	mergePresentationConfig(&dst.Presentation, &src.Presentation)
	mergeDisplayConfig(&dst.Display, &src.Display)

	// Lists replace rather than append: a file that defines slides
	// defines the whole deck
	if len(src.Suggestions) > 0 {
		dst.Suggestions = src.Suggestions
	}
	if len(src.Slides) > 0 {
		dst.Slides = src.Slides
	}
}

// mergePresentationConfig merges playback configuration
func mergePresentationConfig(dst, src *PresentationConfig) {
	if src.Year != "" {
		dst.Year = src.Year
	}
	if src.TeamName != "" {
		dst.TeamName = src.TeamName
	}
	if src.LoadingDuration != 0 {
		dst.LoadingDuration = src.LoadingDuration
	}
	if src.AutoAdvance != 0 {
		dst.AutoAdvance = src.AutoAdvance
	}
	if src.CounterDuration != 0 {
		dst.CounterDuration = src.CounterDuration
	}
	if src.Locale != "" {
		dst.Locale = src.Locale
	}
}

// mergeDisplayConfig merges display configuration
func mergeDisplayConfig(dst, src *DisplayConfig) {
	if src.Theme != "" {
		dst.Theme = src.Theme
	}
	if src.ColorMode != "" {
		dst.ColorMode = src.ColorMode
	}
	if src.FrameRate != 0 {
		dst.FrameRate = src.FrameRate
	}
	// Both flags default to false, so true can only come from the file
	if src.NoEmoji {
		dst.NoEmoji = true
	}
	if src.DisableMouse {
		dst.DisableMouse = true
	}
}
