package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expected    Config
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://10.0.0.5:8000", "-t", "20", "-r", "7", "-s", "claims", "-j", "x.db", "-l", "debug", "-f", "json"},
			expected: Config{
				APIURL:           "http://10.0.0.5:8000",
				RequestTimeout:   20 * time.Second,
				ClinicianRoleID:  7,
				IdentityStrategy: "claims",
				JournalDSN:       "x.db",
				LogLevel:         "debug",
				LogFormat:        "json",
			},
		},
		{
			name: "foreign flags ignored, timeout untouched",
			args: []string{"-c", "cfg.json", "-a", "http://api:1"},
			expected: Config{
				APIURL:           "http://api:1",
				RequestTimeout:   1500 * time.Millisecond,
				ClinicianRoleID:  2,
				IdentityStrategy: "auto",
				JournalDSN:       "journal.db",
				LogLevel:         "info",
				LogFormat:        "text",
			},
		},
		{name: "bad timeout", args: []string{"-t", "abc"}, expectPanic: true},
		{name: "bad role", args: []string{"-r", "doctor"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			cfg.LoadDefaults()
			cfg.RequestTimeout = 1500 * time.Millisecond

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(&cfg, tt.args) })
				return
			}
			require.NotPanics(t, func() { parseFlags(&cfg, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
