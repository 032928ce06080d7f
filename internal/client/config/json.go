package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/medico/internal/flagx"
	"github.com/dmitrijs2005/medico/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Pointer fields let an
// absent key leave the earlier value untouched.
type JsonConfig struct {
	APIURL           *string         `json:"api_url"`
	RequestTimeout   *timex.Duration `json:"request_timeout"`
	ClinicianRoleID  *int            `json:"clinician_role_id"`
	IdentityStrategy *string         `json:"identity_strategy"`
	JournalDSN       *string         `json:"journal_dsn"`
	LogLevel         *string         `json:"log_level"`
	LogFormat        *string         `json:"log_format"`
}

// parseJson overlays cfg with the file named by -c/-config in args.
// Without the flag it does nothing; read or decode errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIURL != nil {
		cfg.APIURL = *jc.APIURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.ClinicianRoleID != nil {
		cfg.ClinicianRoleID = *jc.ClinicianRoleID
	}
	if jc.IdentityStrategy != nil {
		cfg.IdentityStrategy = *jc.IdentityStrategy
	}
	if jc.JournalDSN != nil {
		cfg.JournalDSN = *jc.JournalDSN
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogFormat != nil {
		cfg.LogFormat = *jc.LogFormat
	}
}
