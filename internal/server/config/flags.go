package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/usersvc/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8000")
//	-h string   database host
//	-n string   database name
//	-u string   database user
//	-w string   database password
//	-p string   database port
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-h", "-n", "-u", "-w", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Address, "a", config.Address, "address and port to run server")
	fs.StringVar(&config.DBHost, "h", config.DBHost, "database host")
	fs.StringVar(&config.DBName, "n", config.DBName, "database name")
	fs.StringVar(&config.DBUser, "u", config.DBUser, "database user")
	fs.StringVar(&config.DBPassword, "w", config.DBPassword, "database password")
	fs.StringVar(&config.DBPort, "p", config.DBPort, "database port")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
