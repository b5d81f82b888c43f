// Package config loads runtime configuration for the shiftboard CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   API base URL (default http://localhost:8080/api/v1)
//	-s string   token store file (default <user config dir>/shiftboard/credentials.db)
//	-r string   Redis address for the token store (default: disabled)
//	-l string   log level: debug, info, warn, error
//
// Environment
//
//	API_BASE_URL, SHIFTBOARD_TOKEN_STORE, SHIFTBOARD_REDIS_ADDR, LOG_LEVEL, ENVIRONMENT
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://market.example/api/v1",
//	  "token_store": "/home/me/.config/shiftboard/credentials.db",
//	  "redis_addr": "localhost:6379",
//	  "log_level": "debug",
//	  "environment": "dev"
//	}
//
// Keys that are absent leave the previous value in place.
package config
