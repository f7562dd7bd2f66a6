package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/anitschke/go-dogapi/internal/errorx"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultBaseURL  = "https://dog.ceo/api/"
	DefaultLogLevel = "warn"

	envPrefix = "DOGAPI"
)

// Config holds the client settings that can be supplied through the
// environment, ie DOGAPI_BASE_URL and DOGAPI_LOG_LEVEL.
type Config struct {
	BaseURL  string `mapstructure:"base_url"`
	LogLevel string `mapstructure:"log_level"`
}

// Load reads configuration from a .env file in the working directory (if any)
// and environment variables. Variables already set in the environment take
// precedence over the .env file.
func Load() (retCfg *Config, err error) {
	defer errorx.WrapIfError("failed to load config", &err)

	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("log_level", DefaultLogLevel)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.BaseURL, err = NormalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	return &cfg, nil
}

// NormalizeBaseURL checks that base is an absolute http(s) URL and makes sure
// it ends with a slash so relative endpoint paths can be appended to it.
func NormalizeBaseURL(base string) (string, error) {
	base = strings.TrimSpace(base)
	if base == "" {
		return DefaultBaseURL, nil
	}

	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", base, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid base url %q: scheme must be http or https", base)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid base url %q: missing host", base)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return "", fmt.Errorf("invalid base url %q: query and fragment are not allowed", base)
	}

	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base, nil
}
