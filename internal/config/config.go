// Package config loads application configuration from file and environment
// and initializes the global logger.
package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store    StoreConfig    `yaml:"store" mapstructure:"store"`
	Matching MatchingConfig `yaml:"matching" mapstructure:"matching"`
	Currency CurrencyConfig `yaml:"currency" mapstructure:"currency"`
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures run persistence. An empty path disables it.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// MatchingConfig configures the matching engine and relationship mapper.
type MatchingConfig struct {
	FuzzyMatchThreshold float64  `yaml:"fuzzy_match_threshold" mapstructure:"fuzzy_match_threshold"`
	MinMatchLength      int      `yaml:"min_match_length" mapstructure:"min_match_length"`
	MaxFuzzyCandidates  int      `yaml:"max_fuzzy_candidates" mapstructure:"max_fuzzy_candidates"`
	LegalSuffixes       []string `yaml:"legal_suffixes" mapstructure:"legal_suffixes"`
	Stopwords           []string `yaml:"stopwords" mapstructure:"stopwords"`
	HighValueThreshold  float64  `yaml:"high_value_threshold" mapstructure:"high_value_threshold"`
	WatchedCurrencies   []string `yaml:"watched_currencies" mapstructure:"watched_currencies"`
}

// CurrencyConfig configures the exchange rate client.
type CurrencyConfig struct {
	PrimaryURL   string        `yaml:"primary_url" mapstructure:"primary_url"`
	BackupURL    string        `yaml:"backup_url" mapstructure:"backup_url"`
	CacheTTL     time.Duration `yaml:"cache_ttl" mapstructure:"cache_ttl"`
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	RateLimitRPS float64       `yaml:"rate_limit_rps" mapstructure:"rate_limit_rps"`
}

// ServerConfig configures the HTTP matching server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("VENDORMATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.path", "")
	v.SetDefault("matching.fuzzy_match_threshold", 0.85)
	v.SetDefault("matching.min_match_length", 3)
	v.SetDefault("matching.max_fuzzy_candidates", 3)
	v.SetDefault("matching.high_value_threshold", 1_000_000)
	v.SetDefault("matching.watched_currencies", []string{"NOK", "EUR", "GBP"})
	v.SetDefault("currency.primary_url", "https://api.exchangerate-api.com/v4/latest/USD")
	v.SetDefault("currency.backup_url", "https://api.exchangerate.host/latest?base=USD")
	v.SetDefault("currency.cache_ttl", time.Hour)
	v.SetDefault("currency.timeout", 15*time.Second)
	v.SetDefault("currency.rate_limit_rps", 1.0)
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Config file is optional; env and defaults suffice.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}
	return &cfg, nil
}

// InitLogger configures the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
