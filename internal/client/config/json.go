package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/locagri/internal/flagx"
	"github.com/dmitrijs2005/locagri/internal/timex"
)

// JsonConfig is the on-disk shape of the CLI config file. Pointer fields
// distinguish "absent" from zero values.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	DatabasePath       string         `json:"database_path"`
	StorageBucket      string         `json:"storage_bucket"`
	ImageNamespace     string         `json:"image_namespace"`
	ImageExtension     string         `json:"image_extension"`
	DefaultImage       string         `json:"default_image"`
	PlaceholderURL     string         `json:"placeholder_url"`
	Locale             string         `json:"locale"`
	FetchConcurrency   int            `json:"fetch_concurrency"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	JoinStrategy       string         `json:"join_strategy"`
	ProbeImages        *bool          `json:"probe_images"`
	LogLevel           string         `json:"log_level"`
}

func parseJson(config *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	for dst, v := range map[*string]string{
		&config.ServerEndpointAddr: c.ServerEndpointAddr,
		&config.DatabasePath:       c.DatabasePath,
		&config.StorageBucket:      c.StorageBucket,
		&config.ImageNamespace:     c.ImageNamespace,
		&config.ImageExtension:     c.ImageExtension,
		&config.DefaultImage:       c.DefaultImage,
		&config.PlaceholderURL:     c.PlaceholderURL,
		&config.Locale:             c.Locale,
		&config.JoinStrategy:       c.JoinStrategy,
		&config.LogLevel:           c.LogLevel,
	} {
		if v != "" {
			*dst = v
		}
	}
	if c.FetchConcurrency > 0 {
		config.FetchConcurrency = c.FetchConcurrency
	}
	if c.RequestTimeout.Duration > 0 {
		config.RequestTimeout = c.RequestTimeout.Duration
	}
	if c.ProbeImages != nil {
		config.ProbeImages = *c.ProbeImages
	}
}
