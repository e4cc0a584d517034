package config

import (
	"flag"

	"github.com/dmitrijs2005/locagri/internal/flagx"
)

var clientFlags = []string{"-a", "-f", "-b", "-n", "-l", "-k", "-t", "-j", "-p", "-v"}

func parseFlags(config *Config, args []string) {
	fs := flag.NewFlagSet("locagri", flag.ContinueOnError)

	fs.StringVar(&config.ServerEndpointAddr, "a", config.ServerEndpointAddr, "remote store address and port")
	fs.StringVar(&config.DatabasePath, "f", config.DatabasePath, "local session database file")
	fs.StringVar(&config.StorageBucket, "b", config.StorageBucket, "storage bucket")
	fs.StringVar(&config.ImageNamespace, "n", config.ImageNamespace, "image folder")
	fs.StringVar(&config.Locale, "l", config.Locale, "collation locale")
	fs.IntVar(&config.FetchConcurrency, "k", config.FetchConcurrency, "concurrent image lookups")
	fs.DurationVar(&config.RequestTimeout, "t", config.RequestTimeout, "request timeout")
	fs.StringVar(&config.JoinStrategy, "j", config.JoinStrategy, "land plot join strategy (server|sequential)")
	fs.BoolVar(&config.ProbeImages, "p", config.ProbeImages, "probe image URLs")
	fs.StringVar(&config.LogLevel, "v", config.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, clientFlags)); err != nil {
		panic(err)
	}
}
