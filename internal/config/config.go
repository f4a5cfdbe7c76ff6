package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"

	"github.com/hamed0406/healthmon/internal/endpoint"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

type LogConfig struct {
	Dir   string `mapstructure:"dir"`
	Level string `mapstructure:"level"`
}

type EndpointConfig struct {
	Name    string            `mapstructure:"name"`
	URL     string            `mapstructure:"url"`
	Method  string            `mapstructure:"method"`
	Headers map[string]string `mapstructure:"headers"`
	Body    string            `mapstructure:"body"`
}

type Config struct {
	Interval       time.Duration    `mapstructure:"interval"`
	RequestTimeout time.Duration    `mapstructure:"request_timeout"`
	MaxConcurrency int              `mapstructure:"max_concurrency"`
	StatusAddr     string           `mapstructure:"status_addr"` // empty disables the status API
	Log            LogConfig        `mapstructure:"log"`
	Endpoints      []EndpointConfig `mapstructure:"endpoints"`
}

// Load reads the YAML config at path, applies defaults and environment
// overrides, and validates the result. A single invalid endpoint fails
// the whole load before any check runs.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetDefault("interval", "15s")
	v.SetDefault("request_timeout", "500ms")
	v.SetDefault("max_concurrency", 200)
	v.SetDefault("status_addr", "")
	v.SetDefault("log.dir", "logs")
	v.SetDefault("log.level", LogLevelInfo)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Interval, validation.Required, validation.By(positiveDuration)),
		validation.Field(&c.RequestTimeout, validation.Required, validation.By(positiveDuration)),
		validation.Field(&c.MaxConcurrency, validation.Required, validation.Min(1)),
		validation.Field(&c.Log, validation.By(func(value interface{}) error {
			lc, ok := value.(LogConfig)
			if !ok {
				return validation.NewError("validation_invalid_type", "must be a LogConfig")
			}
			return validation.ValidateStruct(&lc,
				validation.Field(&lc.Level,
					validation.Required,
					validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError),
				),
				validation.Field(&lc.Dir, validation.Required),
			)
		})),
		validation.Field(&c.Endpoints, validation.Each(validation.By(validateEndpointConfig))),
	)
}

func validateEndpointConfig(value interface{}) error {
	ep, ok := value.(EndpointConfig)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be an EndpointConfig")
	}

	if strings.TrimSpace(ep.Name) == "" {
		return validation.NewError("validation_missing_name", "endpoint name cannot be empty")
	}
	if ep.URL == "" {
		return validation.NewError("validation_empty_url", "endpoint URL cannot be empty")
	}
	parsed, err := url.Parse(ep.URL)
	if err != nil {
		return validation.NewError("validation_invalid_url", "must be a valid URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return validation.NewError("validation_invalid_scheme", "URL must use http or https scheme")
	}
	if parsed.Host == "" {
		return validation.NewError("validation_missing_host", "URL must have a host")
	}
	return nil
}

func positiveDuration(value interface{}) error {
	d, ok := value.(time.Duration)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a duration")
	}
	if d <= 0 {
		return validation.NewError("validation_invalid_duration", "must be a positive duration (e.g., 500ms, 15s)")
	}
	return nil
}

// ParseEndpoints converts the raw endpoint entries into validated
// descriptors; this is where the domain is derived.
func (c *Config) ParseEndpoints() ([]endpoint.Endpoint, error) {
	specs := make([]endpoint.Spec, 0, len(c.Endpoints))
	for _, ec := range c.Endpoints {
		specs = append(specs, endpoint.Spec{
			Name:    ec.Name,
			URL:     ec.URL,
			Method:  ec.Method,
			Headers: ec.Headers,
			Body:    ec.Body,
		})
	}
	return endpoint.NewList(specs)
}
