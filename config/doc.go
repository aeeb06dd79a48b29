// Package config loads configuration for applications embedding listkit.
//
// Configuration is resolved from a config.yml file (explicit path or
// standard search locations), a .env file, and LISTKIT_* environment
// variables, in that order of increasing precedence:
//
//	cfg, err := config.Load("my-app", config.LoaderConfig{})
//	log := logger.New(&cfg.Logging, cfg.Name)
package config
