// Package config loads typed configuration for the indexer, searcher,
// web, and crawler binaries from a YAML file, with environment-variable
// overrides for values that shouldn't live in a checked-in file (Mongo
// credentials). Every subsystem gets its own struct and its own set of
// defaults, the way a config file for a multi-binary system usually does.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration shared by all four binaries. Each
// binary only reads the sections relevant to it.
type Config struct {
	Mongo   MongoConfig   `yaml:"mongo"`
	Index   IndexConfig   `yaml:"index"`
	Search  SearchConfig  `yaml:"search"`
	Web     WebConfig     `yaml:"web"`
	Crawl   CrawlConfig   `yaml:"crawl"`
	Logging LoggingConfig `yaml:"logging"`
}

// MongoConfig points at the document store the indexer and crawler read
// from and write to, respectively.
type MongoConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
}

// IndexConfig controls the indexer's output and per-run limits.
type IndexConfig struct {
	OutputPath string `yaml:"outputPath"`
	Limit      int    `yaml:"limit"`
}

// SearchConfig controls the searcher's default pagination.
type SearchConfig struct {
	DefaultLimit int `yaml:"defaultLimit"`
}

// WebConfig controls the web front end's listener.
type WebConfig struct {
	IndexPath string `yaml:"indexPath"`
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
}

// CrawlConfig controls the crawler's frontier and resume state.
type CrawlConfig struct {
	Seed      string `yaml:"seed"`
	MaxPages  int    `yaml:"maxPages"`
	StatePath string `yaml:"statePath"`
	SameHost  bool   `yaml:"sameHost"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads a YAML config file, if path is non-empty, layers it over
// defaults, and applies RUSEARCH_* environment overrides for Mongo
// credentials. A missing path is not an error: callers get defaults.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Mongo: MongoConfig{
			Host:       "localhost",
			Port:       27017,
			Database:   "search_engine_db",
			Collection: "documents",
		},
		Index: IndexConfig{
			OutputPath: "index.bin",
		},
		Search: SearchConfig{
			DefaultLimit: 50,
		},
		Web: WebConfig{
			IndexPath: "index.bin",
			Host:      "0.0.0.0",
			Port:      8080,
		},
		Crawl: CrawlConfig{
			MaxPages: 1000,
			SameHost: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RUSEARCH_MONGO_HOST"); v != "" {
		cfg.Mongo.Host = v
	}
	if v := os.Getenv("RUSEARCH_MONGO_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Mongo.Port = port
		}
	}
	if v := os.Getenv("RUSEARCH_MONGO_USERNAME"); v != "" {
		cfg.Mongo.Username = v
	}
	if v := os.Getenv("RUSEARCH_MONGO_PASSWORD"); v != "" {
		cfg.Mongo.Password = v
	}
	if v := os.Getenv("RUSEARCH_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
