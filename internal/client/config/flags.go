package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/shiftboard/internal/flagx"
)

// parseFlags populates Config fields from the flags it knows about in args:
//
//	-a string   API base URL
//	-s string   token store file ("" keeps the token in memory)
//	-r string   Redis address for the token store
//	-l string   log level
//
// Everything else in args is ignored.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("shiftboard", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	fs.StringVar(&cfg.TokenStorePath, "s", cfg.TokenStorePath, "token store file")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address for the token store")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, []string{"-a", "-s", "-r", "-l"})); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
