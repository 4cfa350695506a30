// Package config loads runtime configuration for the imagefeed client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-t string   transport: http or grpc
//	-a string   address:port of the identity gateway
//	-b string   provider REST API base URL
//	-d string   path to the local database
//	-r int      request timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
// The JSON loader uses timex.Duration for timeouts, so values can be either
// strings like "30s" or integer nanoseconds:
//
//	{
//	  "transport": "http",
//	  "client_id": "your-access-key",
//	  "client_secret": "your-secret-key",
//	  "storage_secret": "change-me",
//	  "request_timeout": "30s"
//	}
//
// Application credentials (client_id, client_secret) and storage_secret are
// only read from the JSON file, never from flags.
package config
