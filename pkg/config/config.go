// Package config loads the YAML configuration a ulispc invocation reads
// at startup, grounded on the teacher's config package shape (top-level
// struct, yaml tags, Load(path)).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration struct.
type Config struct {
	Storage StorageConfiguration `yaml:"Storage"`
	Cache   CacheConfiguration   `yaml:"Cache"`
	Replay  ReplayConfiguration  `yaml:"Replay"`
	Names   map[string]string    `yaml:"Names"`
}

// StorageConfiguration selects and configures the Run Store backend.
type StorageConfiguration struct {
	// Backend is "bolt" or "leveldb".
	Backend string `yaml:"Backend"`
	Path    string `yaml:"Path"`
}

// CacheConfiguration configures the transcode cache.
type CacheConfiguration struct {
	Size int `yaml:"Size"`
}

// ReplayConfiguration configures the replay server.
type ReplayConfiguration struct {
	ListenAddr string `yaml:"ListenAddr"`
}

// Default returns the configuration ulispc uses when no config file is
// given: an in-tree bolt database, a 256-entry cache, and the replay
// server bound to localhost.
func Default() Config {
	return Config{
		Storage: StorageConfiguration{Backend: "bolt", Path: "ulispc.db"},
		Cache:   CacheConfiguration{Size: 256},
		Replay:  ReplayConfiguration{ListenAddr: "127.0.0.1:8080"},
	}
}

// Load reads and parses the YAML configuration file at path, layered
// over Default so a config file only needs to name what it overrides.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: unable to read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unable to parse %s: %w", path, err)
	}
	return cfg, nil
}
