package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/at-ishikawa/tango/internal/validation"
)

type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Dictionaries DictionariesConfig `mapstructure:"dictionaries"`
	Cache        CacheConfig        `mapstructure:"cache"`
	Speech       SpeechConfig       `mapstructure:"speech"`
	Templates    TemplatesConfig    `mapstructure:"templates"`
	Database     DatabaseConfig     `mapstructure:"database"`
}

type ServerConfig struct {
	Port     int        `mapstructure:"port" validate:"min=1,max=65535"`
	CORS     CORSConfig `mapstructure:"cors"`
	LogLevel string     `mapstructure:"log_level" validate:"oneof=debug info warn error"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type DictionariesConfig struct {
	Jisho   JishoConfig   `mapstructure:"jisho"`
	Archive ArchiveConfig `mapstructure:"archive"`
}

type JishoConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"min=1"`
	CacheDirectory string `mapstructure:"cache_directory"`
}

func (c JishoConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type ArchiveConfig struct {
	Path string `mapstructure:"path" validate:"omitempty,file"`
}

type CacheConfig struct {
	Capacity               int `mapstructure:"capacity" validate:"min=1"`
	MinEntries             int `mapstructure:"min_entries" validate:"min=1,ltefield=Capacity"`
	RefreshIntervalSeconds int `mapstructure:"refresh_interval_seconds" validate:"min=1"`
}

func (c CacheConfig) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshIntervalSeconds) * time.Second
}

type SpeechConfig struct {
	BaseURL           string  `mapstructure:"base_url" validate:"required,url"`
	Language          string  `mapstructure:"language" validate:"required"`
	TimeoutSeconds    int     `mapstructure:"timeout_seconds" validate:"min=1"`
	MaxTextLength     int     `mapstructure:"max_text_length" validate:"min=1"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second" validate:"gt=0"`
	Burst             int     `mapstructure:"burst" validate:"min=1"`
}

func (c SpeechConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type TemplatesConfig struct {
	WordListTemplate string `mapstructure:"word_list_template" validate:"omitempty,file"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type ConfigLoader struct {
	viper     *viper.Viper
	validator *validation.Validator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, err := validation.New("mapstructure")
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/tango")
	}

	return &ConfigLoader{
		viper:     v,
		validator: validate,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.log_level", "info")
	v.SetDefault("dictionaries.jisho.base_url", "https://jisho.org")
	v.SetDefault("dictionaries.jisho.timeout_seconds", 10)
	v.SetDefault("dictionaries.jisho.cache_directory", filepath.Join("dictionaries", "jisho"))
	// Archive is optional; the quiz archive command also takes a path argument
	v.SetDefault("dictionaries.archive.path", "")
	v.SetDefault("cache.capacity", 20)
	v.SetDefault("cache.min_entries", 5)
	v.SetDefault("cache.refresh_interval_seconds", 300)
	v.SetDefault("speech.base_url", "https://translate.google.com")
	v.SetDefault("speech.language", "ja")
	v.SetDefault("speech.timeout_seconds", 5)
	v.SetDefault("speech.max_text_length", 100)
	v.SetDefault("speech.requests_per_second", 2.0)
	v.SetDefault("speech.burst", 5)
	// Template is optional - if not specified, will use embedded fallback template
	v.SetDefault("templates.word_list_template", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "tango")
	v.SetDefault("database.username", "user")

	if err := v.BindEnv("server.port", "TANGO_SERVER_PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind TANGO_SERVER_PORT environment variable: %w", err)
	}
	if err := v.BindEnv("dictionaries.jisho.base_url", "TANGO_JISHO_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind TANGO_JISHO_BASE_URL environment variable: %w", err)
	}
	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
