package config

import (
	"fmt"

	env "github.com/Netflix/go-env"
)

type envConfig struct {
	APIBaseURL     string `env:"API_BASE_URL"`
	TokenStorePath string `env:"SHIFTBOARD_TOKEN_STORE"`
	RedisAddr      string `env:"SHIFTBOARD_REDIS_ADDR"`
	LogLevel       string `env:"LOG_LEVEL"`
	Environment    string `env:"ENVIRONMENT"`
}

// parseEnv overlays cfg with the variables present in environ. Unset
// variables keep the current value; a variable set to "" overrides it.
func parseEnv(cfg *Config, environ []string) error {
	es, err := env.EnvironToEnvSet(environ)
	if err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}

	ec := envConfig{
		APIBaseURL:     cfg.APIBaseURL,
		TokenStorePath: cfg.TokenStorePath,
		RedisAddr:      cfg.RedisAddr,
		LogLevel:       cfg.LogLevel,
		Environment:    cfg.Environment,
	}
	if err := env.Unmarshal(es, &ec); err != nil {
		return fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	cfg.APIBaseURL = ec.APIBaseURL
	cfg.TokenStorePath = ec.TokenStorePath
	cfg.RedisAddr = ec.RedisAddr
	cfg.LogLevel = ec.LogLevel
	cfg.Environment = ec.Environment
	return nil
}
