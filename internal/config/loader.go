package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the user and local directories.
const FileName = "pacdfa.yaml"

// SourceEmbedded and SourceBuiltin name the fallbacks returned by Load.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load reads the application config and reports where it came from.
// Search order: customPath -> ~/.pacdfa/config.yaml -> ./configs/pacdfa.yaml ->
// embedded default -> DefaultApp.
// Only an explicit customPath turns read or parse failures into errors;
// unusable files elsewhere in the chain are skipped.
func Load(customPath string) (App, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return App{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return App{}, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	for _, path := range []string{userConfigPath(), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, path, nil
		}
	}

	if cfg, err := parse(defaultAppYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultApp(), SourceBuiltin, nil
}

// parse overlays data on DefaultApp, so partial files keep the remaining defaults.
func parse(data []byte) (App, error) {
	cfg := DefaultApp()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return App{}, err
	}
	if err := cfg.Validate(); err != nil {
		return App{}, err
	}
	return cfg, nil
}

// userConfigPath returns ~/.pacdfa/config.yaml, or "" if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pacdfa", "config.yaml")
}

// ExpandPath replaces a leading "~" with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: failed to expand %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
