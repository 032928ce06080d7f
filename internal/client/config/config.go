package config

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

// Identity strategies understood by the auth service.
const (
	IdentityAuto    = "auto"
	IdentityClaims  = "claims"
	IdentityProfile = "profile"
)

// Config holds runtime settings for the Médico CLI.
type Config struct {
	APIURL           string
	RequestTimeout   time.Duration
	ClinicianRoleID  int
	IdentityStrategy string
	JournalDSN       string
	LogLevel         string
	LogFormat        string
}

// LoadDefaults populates c with defaults suitable for a local backend.
func (c *Config) LoadDefaults() {
	c.APIURL = "http://localhost:8000"
	c.RequestTimeout = 15 * time.Second
	c.ClinicianRoleID = 2
	c.IdentityStrategy = IdentityAuto
	c.JournalDSN = "journal.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig applies defaults, then .env/environment, then JSON, then flags.
// Malformed JSON, flags or environment values cause a panic.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	loadDotEnv(".env")
	parseEnv(cfg, os.LookupEnv)
	parseJson(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}

// Validate reports settings that would make the client unusable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("api url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("api url %q: want http(s)://host[:port]", c.APIURL)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	switch c.IdentityStrategy {
	case IdentityAuto, IdentityClaims, IdentityProfile:
	default:
		return fmt.Errorf("unknown identity strategy %q", c.IdentityStrategy)
	}
	return nil
}
