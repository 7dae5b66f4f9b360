package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/klabast/wb-services/kalender-grid/internal/calendar"
	"github.com/klabast/wb-services/kalender-grid/internal/locale"
)

// Constants
const (
	AppName     = "kalender-grid"
	DefaultPort = 8080
	EnvPrefix   = "KALENDER_GRID"
	ConfigName  = "config"

	// Error messages
	ErrInvalidYear          = "Invalid year"
	ErrInvalidMonth         = "Invalid month"
	ErrInvalidDateFormat    = "Invalid date format"
	ErrInvalidWeekFormat    = "Invalid week format"
	ErrInvalidWeekday       = "Invalid first weekday"
	ErrInvalidParameter     = "Invalid parameter"
	ErrInvalidFormat        = "Invalid format"
	ErrInternalServer       = "Internal server error"
	ErrFailedToGenerateJSON = "Failed to generate JSON"
	ErrFailedToGenerateXLSX = "Failed to generate XLSX"

	// ICS constants
	ICSProductID = "-//Winterberg//Kalender-Grid//DE"
	ICSUIDDomain = "kalender-grid.winterberg.de"
)

// Config holds the defaults applied when a request or command leaves a
// value out.
type Config struct {
	Port         int    `mapstructure:"port" json:"port"`
	Locale       string `mapstructure:"locale" json:"locale"`
	FirstWeekday string `mapstructure:"first_weekday" json:"first_weekday"`
}

// Settings is the active configuration (set by the serve command)
var Settings = DefaultConfig()

// DefaultConfig returns Monday-first en-US on port 8080
func DefaultConfig() *Config {
	return &Config{
		Port:         DefaultPort,
		Locale:       locale.DefaultTag,
		FirstWeekday: "monday",
	}
}

// LoadConfig reads the optional config file and KALENDER_GRID_* environment
// variables. An explicit path must exist; the default location may not.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("port", def.Port)
	v.SetDefault("locale", def.Locale)
	v.SetDefault("first_weekday", def.FirstWeekday)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.AddConfigPath(ConfigDir())
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if _, err := calendar.ParseWeekday(cfg.FirstWeekday); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Weekday returns the configured first weekday, Monday if it does not parse
func (c *Config) Weekday() time.Weekday {
	wd, err := calendar.ParseWeekday(c.FirstWeekday)
	if err != nil {
		return time.Monday
	}
	return wd
}

// ConfigDir returns the XDG config directory for the service
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", AppName)
}
