package config

import (
	"flag"
	"os"

	"github.com/redhub-app/redhub-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the RedHub gateway (default from Config)
//	-d string   path to the local credential database (default from Config)
//	-r string   default redirect for unknown routes (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.GatewayBaseURL, "a", cfg.GatewayBaseURL, "base URL of the gateway")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local credential database")
	fs.StringVar(&cfg.DefaultRedirect, "r", cfg.DefaultRedirect, "default redirect for unknown routes")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
