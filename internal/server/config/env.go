package config

import "github.com/ilyakaznacheev/cleanenv"

// parseEnv overlays values from environment variables onto config.
// Variables that are not set leave the current value untouched, so defaults
// and JSON-provided values survive.
func parseEnv(config *Config) {
	if err := cleanenv.ReadEnv(config); err != nil {
		panic(err)
	}
}
