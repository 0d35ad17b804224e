package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// ServerConfig holds the listen address of an HTTP server.
type ServerConfig struct {
	Host string
	Port int
}

func (s ServerConfig) Addr() string {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// CatalogConfig points at the static catalog document.
type CatalogConfig struct {
	File string
}

// ReviewAPIConfig configures the review API server and the client that the
// storefront uses to reach it.
type ReviewAPIConfig struct {
	Host string
	Port int
	// File is the JSON array the review server rewrites on every append.
	File string
	// BaseURL is where the storefront looks for the review API.
	BaseURL string
}

func (r ReviewAPIConfig) Addr() string {
	host := r.Host
	if host == "" {
		host = "0.0.0.0"
	}
	return fmt.Sprintf("%s:%d", host, r.Port)
}

// ReviewCacheConfig configures the local fallback tiers for review loading.
type ReviewCacheConfig struct {
	// File is the single-key persistent cache, refreshed after every
	// successful remote load or submission.
	File string
	// BundledFile is the read-only bundled review document, the last
	// non-empty fallback tier.
	BundledFile string
}

// Config is the application configuration for both binaries.
type Config struct {
	Server      ServerConfig
	Catalog     CatalogConfig
	ReviewAPI   ReviewAPIConfig
	ReviewCache ReviewCacheConfig
	LogLevel    string
}

// LoadConfig reads config.yaml from path if present and fills the rest from
// defaults, so a bare checkout runs without any config file.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("catalog.file", "./data/productscatalog.json")
	v.SetDefault("reviewapi.host", "0.0.0.0")
	v.SetDefault("reviewapi.port", 4000)
	v.SetDefault("reviewapi.file", "./data/review.json")
	v.SetDefault("reviewapi.baseurl", "http://127.0.0.1:4000")
	v.SetDefault("reviewcache.file", "./data/review-cache.json")
	v.SetDefault("reviewcache.bundledfile", "./data/review-bundled.json")
	v.SetDefault("loglevel", "info")

	if err := v.ReadInConfig(); err != nil {
		// a missing file falls back to defaults, anything else is fatal
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
