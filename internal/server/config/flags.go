package config

import (
	"flag"

	"github.com/dmitrijs2005/locagri/internal/flagx"
)

var serverFlags = []string{"-a", "-d", "-s", "-t", "-r", "-u", "-p", "-b", "-g", "-e", "-w", "-x", "-l"}

// parseFlags overlays flag values onto config.
//
//	-a  gRPC bind address
//	-d  PostgreSQL DSN
//	-s  JWT secret
//	-t  access token lifetime (Go duration, e.g. "15m")
//	-r  refresh token lifetime
//	-u  S3 user
//	-p  S3 password
//	-b  S3 bucket
//	-g  S3 region
//	-e  S3 endpoint
//	-w  public base URL for objects
//	-x  presigned URL lifetime (0 for plain public URLs)
//	-l  log level (debug|info|warn|error)
func parseFlags(config *Config, args []string) {
	fs := flag.NewFlagSet("locagri-server", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.DurationVar(&config.AccessTokenValidityDuration, "t", config.AccessTokenValidityDuration, "access token validity")
	fs.DurationVar(&config.RefreshTokenValidityDuration, "r", config.RefreshTokenValidityDuration, "refresh token validity")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 endpoint")
	fs.StringVar(&config.S3PublicBaseURL, "w", config.S3PublicBaseURL, "public base URL for stored objects")
	fs.DurationVar(&config.S3PresignExpiry, "x", config.S3PresignExpiry, "presigned URL lifetime")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, serverFlags)); err != nil {
		panic(err)
	}
}
