package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/medico/internal/flagx"
)

// parseFlags overlays cfg with the flags it owns; anything else in args is
// ignored. Invalid values panic.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-r", "-s", "-j", "-l", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIURL, "a", cfg.APIURL, "backend base URL")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.IntVar(&cfg.ClinicianRoleID, "r", cfg.ClinicianRoleID, "clinician role id")
	fs.StringVar(&cfg.IdentityStrategy, "s", cfg.IdentityStrategy, "identity strategy: auto, claims or profile")
	fs.StringVar(&cfg.JournalDSN, "j", cfg.JournalDSN, "local journal DSN")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format: text or json")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
