package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ServerConfig holds the HTTP listener settings
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

// StorageConfig selects the durable store backend
type StorageConfig struct {
	// Driver is "memory" or "mysql"
	Driver string
	DSN    string
}

// RabbitMQConfig holds the event broker settings; an empty URL disables the
// broker and events fall back to log-only publishers.
type RabbitMQConfig struct {
	URL string
}

// UserServiceConfig points at the external user/reputation service
type UserServiceConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// SearchIndexConfig points at the search-index service fed by the index worker
type SearchIndexConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// AuctionConfig holds the engine tunables
type AuctionConfig struct {
	// AutoExtendThresholdMinutes: a winning bid landing closer than this to
	// the deadline triggers an extension
	AutoExtendThresholdMinutes int
	// AutoExtendDurationMinutes: the new deadline is now + this duration
	AutoExtendDurationMinutes int
	// SweepIntervalSeconds between expiry sweeper ticks
	SweepIntervalSeconds int
	// CommitRetries bounds optimistic-commit retries per operation
	CommitRetries int
}

func (a AuctionConfig) AutoExtendThreshold() time.Duration {
	return time.Duration(a.AutoExtendThresholdMinutes) * time.Minute
}

func (a AuctionConfig) AutoExtendDuration() time.Duration {
	return time.Duration(a.AutoExtendDurationMinutes) * time.Minute
}

func (a AuctionConfig) SweepInterval() time.Duration {
	return time.Duration(a.SweepIntervalSeconds) * time.Second
}

// Config is the application configuration tree
type Config struct {
	Server      ServerConfig
	Storage     StorageConfig
	RabbitMQ    RabbitMQConfig
	UserService UserServiceConfig
	SearchIndex SearchIndexConfig
	Auction     AuctionConfig
}

// Load reads configuration from an optional config.yaml in the given paths,
// with AUCTION_-prefixed environment variables taking precedence and built-in
// defaults below both.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("AUCTION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("storage.driver", "memory")
	v.SetDefault("storage.dsn", "")
	v.SetDefault("rabbitmq.url", "")
	v.SetDefault("userservice.baseurl", "http://127.0.0.1:8081")
	v.SetDefault("userservice.timeoutseconds", 10)
	v.SetDefault("searchindex.baseurl", "http://127.0.0.1:9200")
	v.SetDefault("searchindex.timeoutseconds", 10)
	v.SetDefault("auction.autoextendthresholdminutes", 5)
	v.SetDefault("auction.autoextenddurationminutes", 10)
	v.SetDefault("auction.sweepintervalseconds", 60)
	v.SetDefault("auction.commitretries", 3)

	if err := v.ReadInConfig(); err != nil {
		// Missing config file is fine, everything has a default
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
