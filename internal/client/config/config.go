package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// Config holds runtime settings for the shiftboard CLI.
//
// Fields:
//   - APIBaseURL: absolute URL of the marketplace API, including its base path.
//   - TokenStorePath: SQLite file holding the credential; "" keeps it in memory.
//   - RedisAddr: host:port of a Redis server used as the credential store; "" disables it.
//   - LogLevel: debug, info, warn or error.
//   - Environment: "dev" selects human-readable logs, anything else JSON.
type Config struct {
	APIBaseURL     string
	TokenStorePath string
	RedisAddr      string
	LogLevel       string
	Environment    string
}

const (
	DefaultAPIBaseURL  = "http://localhost:8080/api/v1"
	DefaultLogLevel    = "info"
	DefaultEnvironment = "prod"
)

var userConfigDir = os.UserConfigDir

// DefaultTokenStorePath returns <user config dir>/shiftboard/credentials.db,
// or a file in the working directory when the user config dir is unknown.
func DefaultTokenStorePath() string {
	dir, err := userConfigDir()
	if err != nil {
		return filepath.Join(".shiftboard", "credentials.db")
	}
	return filepath.Join(dir, "shiftboard", "credentials.db")
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = DefaultAPIBaseURL
	c.TokenStorePath = DefaultTokenStorePath()
	c.RedisAddr = ""
	c.LogLevel = DefaultLogLevel
	c.Environment = DefaultEnvironment
}

// Load builds a Config from defaults, then the JSON file named by -c/-config,
// then environ, then the flags in args. Later sources take precedence.
func Load(args, environ []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, environ); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig is Load over the process arguments and environment.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:], os.Environ())
}

// Validate reports settings the client cannot start with.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("api base url is required")
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("invalid api base url %q: %w", c.APIBaseURL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("api base url %q must be absolute", c.APIBaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api base url %q must use http or https", c.APIBaseURL)
	}
	return nil
}
