// Package config handles repository and global configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents repository configuration stored in .papergraph/config.json.
type Config struct {
	Unspecified           string  `json:"unspecified,omitempty"`            // Sentinel marking absent fields in source data
	CoOccurrenceThreshold int     `json:"cooccurrence_threshold,omitempty"` // Shared-paper count materials must exceed
	CanvasWidth           float64 `json:"canvas_width,omitempty"`
	CanvasHeight          float64 `json:"canvas_height,omitempty"`
}

const (
	PapergraphDir = ".papergraph"
	ConfigFile    = "config.json"
	RecordsFile   = "records.jsonl"
	CacheDir      = "cache"
	DBFile        = "records.db"
)

// PapergraphPath returns the path to the .papergraph directory from a root path.
func PapergraphPath(root string) string {
	return filepath.Join(root, PapergraphDir)
}

// ConfigPath returns the path to config.json from a root path.
func ConfigPath(root string) string {
	return filepath.Join(root, PapergraphDir, ConfigFile)
}

// RecordsPath returns the path to records.jsonl from a root path.
func RecordsPath(root string) string {
	return filepath.Join(root, PapergraphDir, RecordsFile)
}

// CachePath returns the path to the cache directory from a root path.
func CachePath(root string) string {
	return filepath.Join(root, PapergraphDir, CacheDir)
}

// DBPath returns the path to records.db from a root path.
func DBPath(root string) string {
	return filepath.Join(root, PapergraphDir, CacheDir, DBFile)
}

// IsRepository checks if the given path contains a papergraph repository.
func IsRepository(root string) bool {
	info, err := os.Stat(PapergraphPath(root))
	return err == nil && info.IsDir()
}

// FindRepository walks up from the given path to find a papergraph repository.
// Returns the repository root path or an error if not found.
func FindRepository(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsRepository(abs) {
			return abs, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("no papergraph repository found (run 'papergraph init' first)")
		}
		abs = parent
	}
}

// Load reads the repository config. A missing file returns defaults, not an
// error.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &c, nil
}

// Save writes the repository config.
func Save(root string, c *Config) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Init creates the repository layout at root.
func Init(root string) error {
	if IsRepository(root) {
		return fmt.Errorf("repository already initialized at %s", root)
	}
	if err := os.MkdirAll(CachePath(root), 0755); err != nil {
		return fmt.Errorf("creating repository directories: %w", err)
	}
	return Save(root, &Config{})
}
