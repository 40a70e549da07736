package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Source  SourceConfig
	Catalog CatalogConfig
	Redis   RedisConfig
	Cache   CacheConfig
	Logger  LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	StaticDir    string
}

// SourceConfig locates the question data files. BaseURL wins over Dir when both are set.
type SourceConfig struct {
	BaseURL        string
	Dir            string
	StructuredName string
	RawName        string
	Timeout        time.Duration
}

type CatalogConfig struct {
	Path string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type CacheConfig struct {
	RenderedAnswerTTL time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", "20s")
	v.SetDefault("server.write_timeout", "20s")
	v.SetDefault("server.static_dir", "./web")
	v.SetDefault("source.dir", "./web")
	v.SetDefault("source.structured_name", "questions.json")
	v.SetDefault("source.raw_name", "README.md")
	v.SetDefault("source.timeout", "10s")
	v.SetDefault("cache.rendered_answer_ttl", "24h")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
}

// LoadConfig reads config.yaml from the working directory (or ./config)
// and applies environment overrides.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		fmt.Println("No config file found, using defaults and environment")
	} else if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return Load(v)
}

// Load builds a Config from an already populated viper instance.
// Keys may be overridden by environment variables such as SERVER_PORT or SOURCE_BASE_URL.
func Load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			StaticDir:    v.GetString("server.static_dir"),
		},
		Source: SourceConfig{
			BaseURL:        v.GetString("source.base_url"),
			Dir:            v.GetString("source.dir"),
			StructuredName: v.GetString("source.structured_name"),
			RawName:        v.GetString("source.raw_name"),
			Timeout:        v.GetDuration("source.timeout"),
		},
		Catalog: CatalogConfig{
			Path: v.GetString("catalog.path"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Cache: CacheConfig{
			RenderedAnswerTTL: v.GetDuration("cache.rendered_answer_ttl"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port: %d", c.Server.Port)
	}
	if c.Source.BaseURL == "" && c.Source.Dir == "" {
		return errors.New("one of source.base_url or source.dir is required")
	}
	if c.Source.StructuredName == "" || c.Source.RawName == "" {
		return errors.New("source.structured_name and source.raw_name are required")
	}
	return nil
}

// RedisEnabled reports whether a Redis address is configured.
func (c *Config) RedisEnabled() bool {
	return c.Redis.Address != ""
}
