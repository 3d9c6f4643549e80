// Package config handles tool configuration loading and management.
package config

import "time"

// Config holds all tool settings.
type Config struct {
	Cache     CacheConfig     `yaml:"cache"`
	Display   DisplayConfig   `yaml:"display"`
	Scene     SceneConfig     `yaml:"scene"`
	Favorites FavoritesConfig `yaml:"favorites"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// CacheConfig sizes the bounded caches.
type CacheConfig struct {
	GeometryCapacity int `yaml:"geometry_capacity"` // entries per shape family
	DisplayCapacity  int `yaml:"display_capacity"`
}

// DisplayConfig holds display update settings.
type DisplayConfig struct {
	DebounceWindow time.Duration `yaml:"debounce_window"`
}

// SceneConfig holds scene node management settings.
type SceneConfig struct {
	PoolCapacity int `yaml:"pool_capacity"`
}

// FavoritesConfig holds favorites persistence settings.
type FavoritesConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Cache: CacheConfig{
			GeometryCapacity: 128,
			DisplayCapacity:  64,
		},
		Display: DisplayConfig{
			DebounceWindow: 100 * time.Millisecond,
		},
		Scene: SceneConfig{
			PoolCapacity: 32,
		},
		Favorites: FavoritesConfig{
			Path: "favorites.json",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
