package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Output formats understood by the report writer.
const (
	FormatBinary = "binary"
	FormatXML    = "xml"
)

// Config holds all configuration for the application.
type Config struct {
	Input   Input   `mapstructure:"input"`
	Output  Output  `mapstructure:"output"`
	Quote   Quote   `mapstructure:"quote"`
	Tracker Tracker `mapstructure:"tracker"`
	Logger  Logger  `mapstructure:"logger"`
}

// Input holds the location of the watchlist CSV file.
type Input struct {
	Path string `mapstructure:"path"`
}

// Output holds the location and encoding of the report file.
type Output struct {
	Path   string `mapstructure:"path"`
	Format string `mapstructure:"format"`
}

// Quote holds the configuration for the quote page scraper.
type Quote struct {
	BaseURL        string        `mapstructure:"base_url"`
	Path           string        `mapstructure:"path"` // must contain {symbol}
	UserAgent      string        `mapstructure:"user_agent"`
	AcceptLanguage string        `mapstructure:"accept_language"`
	Timeout        time.Duration `mapstructure:"timeout"`
	RateLimit      float64       `mapstructure:"rate_limit"`
	RateLimitBurst int           `mapstructure:"rate_limit_burst"`
}

// Tracker holds the configuration for the run loop.
type Tracker struct {
	Workers  int           `mapstructure:"workers"`
	Interval time.Duration `mapstructure:"interval"` // 0 runs a single cycle
}

// Logger holds the configuration for the logger.
type Logger struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

const (
	DefaultUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.36"
	DefaultAcceptLanguage = "en-US,en;q=0.5"
)

// LoadConfig reads configuration from file or environment variables.
// A missing config file is not an error; defaults are used instead.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config") // name of config file (without extension)
	v.SetConfigType("yml")

	// Allow environment variables to override config file
	v.SetEnvPrefix("STONKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("failed to decode config: %w", err)
	}
	return config, config.Validate()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input.path", "StockInfo.csv")

	v.SetDefault("output.path", "output.plist")
	v.SetDefault("output.format", FormatBinary)

	v.SetDefault("quote.base_url", "https://finance.yahoo.com")
	v.SetDefault("quote.path", "/quote/{symbol}")
	v.SetDefault("quote.user_agent", DefaultUserAgent)
	v.SetDefault("quote.accept_language", DefaultAcceptLanguage)
	v.SetDefault("quote.timeout", 10*time.Second)
	v.SetDefault("quote.rate_limit", 2)       // requests per second
	v.SetDefault("quote.rate_limit_burst", 1) // burst size

	v.SetDefault("tracker.workers", 1)
	v.SetDefault("tracker.interval", time.Duration(0))

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch {
	case c.Input.Path == "":
		return errors.New("input.path must not be empty")
	case c.Output.Path == "":
		return errors.New("output.path must not be empty")
	case c.Output.Format != FormatBinary && c.Output.Format != FormatXML:
		return fmt.Errorf("output.format %q is not one of %q, %q", c.Output.Format, FormatBinary, FormatXML)
	case !strings.Contains(c.Quote.Path, "{symbol}"):
		return fmt.Errorf("quote.path %q has no {symbol} placeholder", c.Quote.Path)
	case c.Quote.Timeout <= 0:
		return errors.New("quote.timeout must be positive")
	case c.Quote.RateLimit <= 0 || c.Quote.RateLimitBurst < 1:
		return errors.New("quote.rate_limit and quote.rate_limit_burst must be positive")
	case c.Tracker.Workers < 1:
		return errors.New("tracker.workers must be at least 1")
	case c.Tracker.Interval < 0:
		return errors.New("tracker.interval must not be negative")
	}
	return nil
}
