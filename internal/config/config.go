package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"coursepage/internal/eventbus"
)

// MinInterval is the shortest autoplay interval accepted from a config file
const MinInterval = 500

// Config represents the application configuration
type Config struct {
	Version     int            `toml:"version"`
	ContentFile string         `toml:"content_file"` // empty means the embedded default page
	Autoplay    AutoplayConfig `toml:"autoplay"`
	UI          UISettings     `toml:"ui"`
	Server      ServerConfig   `toml:"server"`
	Log         LogConfig      `toml:"log"`
}

// AutoplayConfig controls the testimonial carousel timer
type AutoplayConfig struct {
	Enabled      bool `toml:"enabled"`
	IntervalMS   int  `toml:"interval_ms"`
	PauseOnFocus bool `toml:"pause_on_focus"`
}

// Interval returns the configured interval as a duration
func (a AutoplayConfig) Interval() time.Duration {
	return time.Duration(a.IntervalMS) * time.Millisecond
}

// UISettings represents UI-related configuration
type UISettings struct {
	AltScreen    bool   `toml:"alt_screen"`
	Mouse        bool   `toml:"mouse"`
	ShowHelpBar  bool   `toml:"show_help_bar"`
	GlamourStyle string `toml:"glamour_style"`
	NarrowWidth  int    `toml:"narrow_width"` // below this the featured plan is listed first
}

// ServerConfig configures the HTML preview server
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// LogConfig configures the log file
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Validation errors
var (
	ErrIntervalTooShort = errors.New("autoplay interval too short")
	ErrLogLevel         = errors.New("unknown log level")
	ErrServerAddr       = errors.New("server address is empty")
)

// Validate checks the values a TOML file can get wrong
func (c *Config) Validate() error {
	var errs []error
	if c.Autoplay.IntervalMS < MinInterval {
		errs = append(errs, fmt.Errorf("interval_ms %d below %d: %w", c.Autoplay.IntervalMS, MinInterval, ErrIntervalTooShort))
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("level %q: %w", c.Log.Level, ErrLogLevel))
	}
	if c.Server.Addr == "" {
		errs = append(errs, ErrServerAddr)
	}
	return errors.Join(errs...)
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

// DefaultPath returns config.toml inside the user config directory
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "coursepage", "config.toml")
}

// NewConfigService creates a config service for path. An empty path means DefaultPath.
// bus may be nil.
func NewConfigService(path string, bus eventbus.EventBus) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{
		bus:      bus,
		filePath: path,
	}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields the defaults.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:        cs.filePath,
			ContentFile: cfg.ContentFile,
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

// LoadFromPath loads configuration from a specific path.
// Keys missing from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Autoplay: AutoplayConfig{
			Enabled:      true,
			IntervalMS:   5000,
			PauseOnFocus: true,
		},
		UI: UISettings{
			AltScreen:    true,
			Mouse:        true,
			ShowHelpBar:  true,
			GlamourStyle: "dark",
			NarrowWidth:  100,
		},
		Server: ServerConfig{Addr: "127.0.0.1:8080"},
		Log: LogConfig{
			File:  "coursepage.log",
			Level: "info",
		},
	}
}
