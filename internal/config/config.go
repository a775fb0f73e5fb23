package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"faqdesk/internal/eventbus"
)

// Defaults
const (
	DefaultDebounceMs      = 300
	DefaultMinSearchLength = 2
	DefaultCacheSize       = 64
)

// Validation errors
var (
	ErrInvalidDebounce        = errors.New("search.debounce_ms must not be negative")
	ErrInvalidMinSearchLength = errors.New("search.min_search_length must not be negative")
	ErrInvalidCacheSize       = errors.New("search.cache_size must not be negative")
)

// Config represents the application configuration
type Config struct {
	Version     int            `toml:"version"`
	CatalogPath string         `toml:"catalog_path"`
	Search      SearchSettings `toml:"search"`
	UISettings  UISettings     `toml:"ui"`
}

// SearchSettings tunes the search engine
type SearchSettings struct {
	DebounceMs      int `toml:"debounce_ms"`
	MinSearchLength int `toml:"min_search_length"`
	CacheSize       int `toml:"cache_size"` // 0 disables result caching
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowCounts   bool `toml:"show_counts"`
	ShowTags     bool `toml:"show_tags"`
	WatchCatalog bool `toml:"watch_catalog"`
}

// Validate checks values that would make the engine misbehave
func (c *Config) Validate() error {
	if c.Search.DebounceMs < 0 {
		return ErrInvalidDebounce
	}
	if c.Search.MinSearchLength < 0 {
		return ErrInvalidMinSearchLength
	}
	if c.Search.CacheSize < 0 {
		return ErrInvalidCacheSize
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service rooted in the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "faqdesk", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service bound to an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// WithBus attaches an event bus so loads and saves are published
func WithBus(svc ConfigService, bus eventbus.EventBus) ConfigService {
	if cs, ok := svc.(*configService); ok {
		cs.bus = bus
	}
	return svc
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when
// the file does not exist yet
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:        cs.filePath,
			CatalogPath: cfg.CatalogPath,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so omitted keys keep sensible values
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Search: SearchSettings{
			DebounceMs:      DefaultDebounceMs,
			MinSearchLength: DefaultMinSearchLength,
			CacheSize:       DefaultCacheSize,
		},
		UISettings: UISettings{
			ShowCounts:   true,
			ShowTags:     true,
			WatchCatalog: true,
		},
	}
}
