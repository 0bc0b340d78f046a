package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
	"golang.org/x/text/unicode/norm"
)

// Config is the full application configuration. Values come from the
// config file, IBOX_* environment variables, and command line flags,
// in increasing order of precedence.
type Config struct {
	EdgeThreshold float64 `mapstructure:"edge_threshold"`
	Log           string  `mapstructure:"log"`

	Box   BoxConfig   `mapstructure:"box"`
	Style StyleConfig `mapstructure:"style"`
}

// BoxConfig is the initial placement of the draggable box.
type BoxConfig struct {
	X      float64 `mapstructure:"x"`
	Y      float64 `mapstructure:"y"`
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
	Title  string  `mapstructure:"title"`
}

// StyleConfig holds 256-color palette indices.
type StyleConfig struct {
	FG      int `mapstructure:"fg"`
	BG      int `mapstructure:"bg"`
	BoxFG   int `mapstructure:"box_fg"`
	BoxBG   int `mapstructure:"box_bg"`
	HoverFG int `mapstructure:"hover_fg"`
	HoverBG int `mapstructure:"hover_bg"`
}

func DefaultConfig() *Config {
	return &Config{
		EdgeThreshold: 2,
		Box:           BoxConfig{X: 4, Y: 3, Width: 40, Height: 12, Title: "ibox"},
		Style: StyleConfig{
			FG:      231,
			BG:      17,
			BoxFG:   226,
			BoxBG:   19,
			HoverFG: 17,
			HoverBG: 226,
		},
	}
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

func NewManager() *Manager {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "ibox"))
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("IBOX")
	v.SetEnvKeyReplacer(envKeyReplacer())
	v.AutomaticEnv()

	return &Manager{viper: v}
}

func envKeyReplacer() *strings.Replacer {
	return strings.NewReplacer(".", "_")
}

// SetFile pins the manager to an explicit config file instead of the
// search paths.
func (m *Manager) SetFile(file string) {
	m.viper.SetConfigFile(file)
}

// Viper exposes the underlying instance for flag binding.
func (m *Manager) Viper() *viper.Viper {
	return m.viper
}

// Load reads the configuration. A missing config file is not an error,
// defaults and environment apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config %s: %w", m.viper.ConfigFileUsed(), err)
		}
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", m.viper.ConfigFileUsed(), err)
	}
	normalizeConfig(config)
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Box.Title = norm.NFC.String(strings.TrimSpace(config.Box.Title))
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	configCopy := *m.config
	return &configCopy
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("edge_threshold", defaults.EdgeThreshold)
	m.viper.SetDefault("log", defaults.Log)

	m.viper.SetDefault("box.x", defaults.Box.X)
	m.viper.SetDefault("box.y", defaults.Box.Y)
	m.viper.SetDefault("box.width", defaults.Box.Width)
	m.viper.SetDefault("box.height", defaults.Box.Height)
	m.viper.SetDefault("box.title", defaults.Box.Title)

	m.viper.SetDefault("style.fg", defaults.Style.FG)
	m.viper.SetDefault("style.bg", defaults.Style.BG)
	m.viper.SetDefault("style.box_fg", defaults.Style.BoxFG)
	m.viper.SetDefault("style.box_bg", defaults.Style.BoxBG)
	m.viper.SetDefault("style.hover_fg", defaults.Style.HoverFG)
	m.viper.SetDefault("style.hover_bg", defaults.Style.HoverBG)
}
