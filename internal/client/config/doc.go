// Package config loads runtime configuration for the LocAgri CLI.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags.
//
// Flags
//
//	-a string    address:port of the remote store
//	-f string    local session database file
//	-b string    object storage bucket for profile images
//	-n string    image folder inside the bucket
//	-l string    collation locale for the directory ("fr", "ar", ...)
//	-k int       concurrent image lookups
//	-t duration  per-request timeout
//	-j string    land plot join strategy: server | sequential
//	-p bool      probe image URLs on the detail screen (use -p=false)
//	-v string    log level
//
// JSON keys use snake_case, durations accept "10s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "request_timeout": "10s",
//	  "join_strategy": "sequential"
//	}
package config
