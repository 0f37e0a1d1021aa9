// Package config loads the optional packedbubble.toml configuration file.
//
// The file sits between built-in defaults and command-line flags: values
// from the file override the defaults, and explicit flags override the
// file. A missing file is not an error; every field is optional.
//
// # File format
//
//	[layout]
//	width = 800.0
//	height = 600.0
//	min_size = "10%"
//	max_size = "50%"
//	size_by = "area"
//
//	[cache]
//	dir = "/var/cache/packedbubble"
//	ttl = "24h"
//
//	[server]
//	addr = ":8080"
//
//	[mongo]
//	uri = "mongodb://localhost:27017"
//	database = "packedbubble"
//
//	[redis]
//	addr = "localhost:6379"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file name searched for in the standard
// locations.
const FileName = "packedbubble.toml"

// Config mirrors the packedbubble.toml layout. Zero values mean "not set":
// consumers overlay non-zero values onto their own defaults.
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
	Mongo  MongoConfig  `toml:"mongo"`
	Redis  RedisConfig  `toml:"redis"`
}

// LayoutConfig carries default layout options for the CLI.
type LayoutConfig struct {
	Width         float64 `toml:"width"`
	Height        float64 `toml:"height"`
	MinSize       string  `toml:"min_size"`
	MaxSize       string  `toml:"max_size"`
	SizeBy        string  `toml:"size_by"`
	MaxIterations int     `toml:"max_iterations"`
}

// CacheConfig configures the local layout/artifact cache and the HTTP
// response cache underneath it.
type CacheConfig struct {
	Dir string   `toml:"dir"`
	TTL Duration `toml:"ttl"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// MongoConfig configures the MongoDB chart store.
type MongoConfig struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// RedisConfig configures the Redis cache backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Duration decodes TOML strings like "24h" or "90s" into a time.Duration.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Load reads and decodes the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadDefault loads the configuration from the first discovered file. When
// no file exists it returns an empty Config, so callers never need to
// special-case the unconfigured setup.
func LoadDefault() (*Config, error) {
	path := Discover()
	if path == "" {
		return &Config{}, nil
	}
	return Load(path)
}

// Discover returns the first configuration file found in the standard
// locations: the working directory, then $XDG_CONFIG_HOME/packedbubble,
// then ~/.config/packedbubble. It returns "" when no file exists.
func Discover() string {
	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func searchPaths() []string {
	paths := []string{FileName}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		paths = append(paths, filepath.Join(configHome, "packedbubble", FileName))
	} else if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "packedbubble", FileName))
	}
	return paths
}
