package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type lookupFunc func(key string) (string, bool)

// loadDotEnv exports variables from path into the process environment.
// A missing file is not an error; existing variables are never overridden.
func loadDotEnv(path string) {
	_ = godotenv.Load(path)
}

func parseEnv(cfg *Config, lookup lookupFunc) {
	if v, ok := lookup("API_URL"); ok && v != "" {
		cfg.APIURL = v
	}
	if v, ok := lookup("MEDICO_REQUEST_TIMEOUT"); ok && v != "" {
		d, err := parseTimeout(v)
		if err != nil {
			panic(fmt.Errorf("MEDICO_REQUEST_TIMEOUT: %w", err))
		}
		cfg.RequestTimeout = d
	}
	if v, ok := lookup("MEDICO_ROLE_ID"); ok && v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			panic(fmt.Errorf("MEDICO_ROLE_ID: %w", err))
		}
		cfg.ClinicianRoleID = id
	}
	if v, ok := lookup("MEDICO_IDENTITY"); ok && v != "" {
		cfg.IdentityStrategy = v
	}
	if v, ok := lookup("MEDICO_JOURNAL"); ok && v != "" {
		cfg.JournalDSN = v
	}
	if v, ok := lookup("MEDICO_LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup("MEDICO_LOG_FORMAT"); ok && v != "" {
		cfg.LogFormat = v
	}
}

// parseTimeout accepts "30s"-style durations or a bare number of seconds.
func parseTimeout(v string) (time.Duration, error) {
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(v)
}
