package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	toml "github.com/pelletier/go-toml/v2"

	"payeerapi/client/payeer"
)

// EnvPrefix is prepended to every variable, e.g. PAYEER_ACCOUNT.
const EnvPrefix = "PAYEER"

const DefaultTimeout = 30 * time.Second

// Config holds the credentials and transport settings of a client.
type Config struct {
	Account string        `envconfig:"ACCOUNT"`
	ApiId   string        `envconfig:"API_ID"`
	Secret  string        `envconfig:"API_SECRET"`
	BaseURL string        `envconfig:"BASE_URL"`
	Timeout time.Duration `envconfig:"TIMEOUT"`
}

// FileConfig mirrors Config with the timeout as a string, e.g. "15s".
type FileConfig struct {
	Account string `toml:"account"`
	ApiId   string `toml:"api_id"`
	Secret  string `toml:"api_secret"`
	BaseURL string `toml:"base_url"`
	Timeout string `toml:"timeout"`
}

func DefaultConfig() Config {
	return Config{
		BaseURL: payeer.DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// DefaultConfigPath returns ~/.payeer/config.toml, or "" without a home dir.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".payeer", "config.toml")
	}
	return ""
}

// Load starts from the defaults, applies the TOML file at path when it is
// not empty and finally the PAYEER_* environment variables.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		fc, err := LoadFileConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := ApplyFileConfig(&cfg, fc); err != nil {
			return cfg, fmt.Errorf("apply config %s: %w", path, err)
		}
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("read environment: %w", err)
	}
	return cfg, cfg.Validate()
}

func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// ApplyFileConfig copies the non-empty file values into cfg.
func ApplyFileConfig(cfg *Config, fc FileConfig) error {
	setString(fc.Account, &cfg.Account)
	setString(fc.ApiId, &cfg.ApiId)
	setString(fc.Secret, &cfg.Secret)
	setString(fc.BaseURL, &cfg.BaseURL)
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", fc.Timeout, err)
		}
		cfg.Timeout = d
	}
	return nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Account == "" {
		errs = append(errs, errors.New("account is required"))
	} else if err := payeer.ValidateWallet(c.Account); err != nil {
		errs = append(errs, fmt.Errorf("account %q: %w", c.Account, err))
	}
	if c.ApiId == "" {
		errs = append(errs, errors.New("api id is required"))
	}
	if c.Secret == "" {
		errs = append(errs, errors.New("api secret is required"))
	}
	if c.Timeout < 0 {
		errs = append(errs, errors.New("timeout must not be negative"))
	}
	return errors.Join(errs...)
}

func (c Config) ClientConfig() *payeer.Config {
	return &payeer.Config{
		Account: c.Account,
		ApiId:   c.ApiId,
		Secret:  c.Secret,
	}
}

func (c Config) Options() []payeer.Option {
	var opts []payeer.Option
	if c.BaseURL != "" {
		opts = append(opts, payeer.WithBaseURL(c.BaseURL))
	}
	if c.Timeout > 0 {
		opts = append(opts, payeer.WithTimeout(c.Timeout))
	}
	return opts
}

func setString(value string, dst *string) {
	if value != "" {
		*dst = value
	}
}
