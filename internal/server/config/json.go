package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/usersvc/internal/flagx"
	"github.com/dmitrijs2005/usersvc/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "30s" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON configuration
// files; its fields are copied into the runtime Config afterwards.
type JsonConfig struct {
	Address      string         `json:"address"`
	DBHost       string         `json:"db_host"`
	DBName       string         `json:"db_name"`
	DBUser       string         `json:"db_user"`
	DBPassword   string         `json:"db_password"`
	DBPort       string         `json:"db_port"`
	ReadTimeout  timex.Duration `json:"read_timeout"`
	WriteTimeout timex.Duration `json:"write_timeout"`
}

// parseJson loads configuration values from the JSON file given via the
// -c or -config flags. If no file is specified, nothing is loaded. A file
// that cannot be read or parsed is a fatal misconfiguration, so the
// function panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Address != "" {
		config.Address = c.Address
	}
	if c.DBHost != "" {
		config.DBHost = c.DBHost
	}
	if c.DBName != "" {
		config.DBName = c.DBName
	}
	if c.DBUser != "" {
		config.DBUser = c.DBUser
	}
	if c.DBPassword != "" {
		config.DBPassword = c.DBPassword
	}
	if c.DBPort != "" {
		config.DBPort = c.DBPort
	}
	if c.ReadTimeout.Duration != 0 {
		config.ReadTimeout = time.Duration(c.ReadTimeout.Duration)
	}
	if c.WriteTimeout.Duration != 0 {
		config.WriteTimeout = time.Duration(c.WriteTimeout.Duration)
	}
}
