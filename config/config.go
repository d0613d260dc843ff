package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	"github.com/Domenick1991/bookingrpc/internal/validation"
)

const (
	StoreDriverMemory = "memory"
	StoreDriverRedis  = "redis"
)

type Config struct {
	App     AppConfig     `mapstructure:"app"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	GRPC    GRPCConfig    `mapstructure:"grpc"`
	Store   StoreConfig   `mapstructure:"store"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Kafka   KafkaConfig   `mapstructure:"kafka"`
	Booking BookingConfig `mapstructure:"booking"`
}

type AppConfig struct {
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

func (a AppConfig) IsProduction() bool {
	return a.Env == "production"
}

type HTTPConfig struct {
	Address    string `mapstructure:"address"`
	SwaggerDir string `mapstructure:"swagger_dir"`
}

type GRPCConfig struct {
	Address string `mapstructure:"address"`
	// RateLimitRPS of zero disables the limiter.
	RateLimitRPS   float64 `mapstructure:"rate_limit_rps"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`
}

type StoreConfig struct {
	Driver    string `mapstructure:"driver"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type KafkaConfig struct {
	Brokers            []string `mapstructure:"brokers"`
	BookingEventsTopic string   `mapstructure:"booking_events_topic"`
	GroupID            string   `mapstructure:"group_id"`
}

// Enabled reports whether booking events should be published.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0 && k.BookingEventsTopic != ""
}

type BookingConfig struct {
	DefaultCurrency string `mapstructure:"default_currency"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("http.address", ":8080")
	v.SetDefault("http.swagger_dir", "")
	v.SetDefault("grpc.address", ":9090")
	v.SetDefault("grpc.rate_limit_rps", 0)
	v.SetDefault("grpc.rate_limit_burst", 0)
	v.SetDefault("store.driver", StoreDriverMemory)
	v.SetDefault("store.key_prefix", "bookingrpc:")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.booking_events_topic", "booking-events")
	v.SetDefault("kafka.group_id", "booking-notifier")
	v.SetDefault("booking.default_currency", "CAD")
}

// LoadConfig reads path (if it exists) over the defaults and then applies
// BOOKING_* environment overrides, e.g. BOOKING_GRPC_ADDRESS.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("BOOKING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			// A missing file is fine: defaults and env still apply.
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverMemory, StoreDriverRedis:
	default:
		return fmt.Errorf("config: unknown store driver %q", c.Store.Driver)
	}
	if !validation.IsCurrencyCode(c.Booking.DefaultCurrency) {
		return fmt.Errorf("config: booking.default_currency %q is not a three-letter upper-case code", c.Booking.DefaultCurrency)
	}
	if c.GRPC.RateLimitRPS < 0 || c.GRPC.RateLimitBurst < 0 {
		return errors.New("config: grpc rate limit must not be negative")
	}
	return nil
}
