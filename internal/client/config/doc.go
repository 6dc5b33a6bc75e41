// Package config loads runtime configuration for the authgate CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the account API
//	-t int      request timeout (seconds)
//	-d string   path of the local session database
//
// # JSON schema
//
// Durations accept either strings like "15s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "http://localhost:8000",
//	  "request_timeout": "15s",
//	  "token_db_path": "session.db",
//	  "toast_duration": "3s"
//	}
package config
