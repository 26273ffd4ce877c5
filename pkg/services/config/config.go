package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Server struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Upstream struct {
	URL string `mapstructure:"url"`
}

type Assistant struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type Uploads struct {
	Root string `mapstructure:"root"`
}

type Config struct {
	Server    Server    `mapstructure:"server"`
	Upstream  Upstream  `mapstructure:"upstream"`
	Assistant Assistant `mapstructure:"assistant"`
	Uploads   Uploads   `mapstructure:"uploads"`
}

// Load reads configuration from an optional YAML file and the
// environment. Environment variables take precedence over the file.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("uploads.root", "uploads")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	_ = v.BindEnv("server.host", "SERVER_HOST")
	_ = v.BindEnv("server.port", "SERVER_PORT")
	_ = v.BindEnv("upstream.url", "UPSTREAM_URL")
	_ = v.BindEnv("assistant.api_key", "ANTHROPIC_API_KEY")
	_ = v.BindEnv("assistant.model", "ANTHROPIC_MODEL")
	_ = v.BindEnv("uploads.root", "UPLOADS_ROOT")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if config.Upstream.URL == "" {
		return nil, fmt.Errorf("upstream.url is required")
	}

	return &config, nil
}
