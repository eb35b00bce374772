// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment variables and
// command-line flags. Later sources take precedence over earlier ones.
package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config holds runtime settings for the usersvc server.
//
// Fields:
//   - Address: bind address for the HTTP endpoint.
//   - DBHost / DBName / DBUser / DBPassword / DBPort: PostgreSQL connection
//     parameters. All five are required; the server refuses to start when any
//     of them is empty.
//   - ReadTimeout / WriteTimeout: HTTP server timeouts.
type Config struct {
	Address      string `env:"ADDRESS"`
	DBHost       string `env:"DB_HOST"`
	DBName       string `env:"DB_NAME"`
	DBUser       string `env:"DB_USER"`
	DBPassword   string `env:"DB_PASSWORD"`
	DBPort       string `env:"DB_PORT"`
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// LoadDefaults populates Config with development defaults. Database
// parameters intentionally stay empty: they must come from the environment,
// a JSON file or flags.
func (c *Config) LoadDefaults() {
	c.Address = ":8000"
	c.ReadTimeout = 30 * time.Second
	c.WriteTimeout = 30 * time.Second
}

// DatabaseComplete reports whether every required database parameter is set.
func (c *Config) DatabaseComplete() bool {
	return len(c.MissingDatabaseVars()) == 0
}

// MissingDatabaseVars returns the environment-variable names of every
// database parameter that is still empty, for a helpful startup message.
func (c *Config) MissingDatabaseVars() []string {
	var missing []string
	for _, v := range []struct {
		name  string
		value string
	}{
		{"DB_HOST", c.DBHost},
		{"DB_NAME", c.DBName},
		{"DB_USER", c.DBUser},
		{"DB_PASSWORD", c.DBPassword},
		{"DB_PORT", c.DBPort},
	} {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	return missing
}

// DatabaseDSN builds the pgx connection string from the individual
// parameters. The password is URL-escaped so it never breaks the DSN.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		url.QueryEscape(c.DBUser), url.QueryEscape(c.DBPassword),
		c.DBHost, c.DBPort, c.DBName)
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
