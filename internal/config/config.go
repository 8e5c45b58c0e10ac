package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"handeval-server/internal/util"
)

// Config provides configuration for the hand evaluation server
type Config struct {
	loaded       bool
	Addr         string        `yaml:"addr" envconfig:"addr"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"read_timeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"write_timeout"`
	Log          struct {
		Level             string `yaml:"level" envconfig:"level"`
		Format            string `yaml:"format" envconfig:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	} `yaml:"cors"`
}

var config Config

// DefaultConfig returns the configuration used when no file or environment overrides it
func DefaultConfig() Config {
	c := Config{
		Addr:         ":3000",
		ReadTimeout:  time.Second * 5,
		WriteTimeout: time.Second * 10,
	}

	c.Log.Level = "info"
	c.Log.Format = "text"
	c.CORS.AllowedOrigins = []string{"*"}

	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The config file is optional, environment variables prefixed with HANDEVAL_ take precedence
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("HANDEVAL_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := envconfig.Process("handeval", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
