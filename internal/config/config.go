package config

import "github.com/kelseyhightower/envconfig"

// Config captures application runtime configuration loaded from environment
// variables. Every field has a working default so the terminal starts with an
// empty environment.
type Config struct {
	AppName  string `envconfig:"WALLET_APP_NAME" default:"wallet-tracker"`
	LogDir   string `envconfig:"WALLET_LOG_DIR" default:"logs"`
	LogLevel string `envconfig:"WALLET_LOG_LEVEL" default:"info"`
}

// Load reads configuration values from the environment and populates a
// Config instance.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
