package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// LoaderConfig controls where Load looks for files. Empty fields fall
// back to the standard search locations.
type LoaderConfig struct {
	ConfigFile string
	EnvFile    string
	FileSystem FileSystem
}

// Load resolves and loads configuration for the named application.
// Precedence: environment variables (LISTKIT_*), then the env file, then
// the config file, then defaults.
func Load(name string, opts LoaderConfig) (*Config, error) {
	fs := opts.FileSystem
	if fs == nil {
		fs = &RealFileSystem{}
	}

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = findFirst(fs, ".env", "../.env")
	}
	if envFile != "" && fs.Exists(envFile) {
		if err := fs.LoadEnv(envFile); err != nil {
			return nil, fmt.Errorf("loading env file %s: %w", envFile, err)
		}
	}

	configFile := opts.ConfigFile
	if configFile == "" {
		configFile = findFirst(fs,
			"./config.yml",
			"./config/config.yml",
			"../config/config.yml",
		)
	}

	v := viper.New()
	v.SetEnvPrefix("LISTKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	cfg := &Config{Name: name}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if cfg.Name == "" {
		cfg.Name = name
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func findFirst(fs FileSystem, paths ...string) string {
	for _, path := range paths {
		if fs.Exists(path) {
			return path
		}
	}
	return ""
}
