// Package config loads runtime configuration for the Médico CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory, if present, and the process
//     environment (see parseEnv).
//  3. Optional JSON file selected with -c or -config (see parseJson).
//  4. Command-line flags (see parseFlags).
//
// Later sources override earlier ones.
//
// # Environment
//
//	API_URL                  backend base URL
//	MEDICO_REQUEST_TIMEOUT   per-request timeout ("15s" or whole seconds)
//	MEDICO_ROLE_ID           role id required to use the client
//	MEDICO_IDENTITY          auto | claims | profile
//	MEDICO_JOURNAL           SQLite DSN of the local encounter journal
//	MEDICO_LOG_LEVEL         debug | info | warn | error
//	MEDICO_LOG_FORMAT        text | json
//
// # Flags
//
//	-a string   backend base URL
//	-t int      request timeout (seconds)
//	-r int      clinician role id
//	-s string   identity strategy
//	-j string   journal DSN
//	-l string   log level
//	-f string   log format
//
// # JSON schema
//
//	{
//	  "api_url": "http://localhost:8000",
//	  "request_timeout": "15s",
//	  "clinician_role_id": 2,
//	  "identity_strategy": "auto",
//	  "journal_dsn": "journal.db",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
package config
