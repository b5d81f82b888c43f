package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/shiftboard/internal/flagx"
)

// JsonConfig is the on-disk shape of the config file. Absent keys leave the
// current value untouched.
type JsonConfig struct {
	APIBaseURL     *string `json:"api_base_url"`
	TokenStorePath *string `json:"token_store"`
	RedisAddr      *string `json:"redis_addr"`
	LogLevel       *string `json:"log_level"`
	Environment    *string `json:"environment"`
}

// parseJson overlays cfg with the JSON file named by -c or -config in args.
// Without either flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	set(&cfg.APIBaseURL, jc.APIBaseURL)
	set(&cfg.TokenStorePath, jc.TokenStorePath)
	set(&cfg.RedisAddr, jc.RedisAddr)
	set(&cfg.LogLevel, jc.LogLevel)
	set(&cfg.Environment, jc.Environment)
	return nil
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
