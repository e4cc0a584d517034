package config

import "time"

const (
	JoinServer     = "server"
	JoinSequential = "sequential"
)

type Config struct {
	ServerEndpointAddr string
	DatabasePath       string
	StorageBucket      string
	ImageNamespace     string
	ImageExtension     string
	DefaultImage       string
	PlaceholderURL     string
	Locale             string
	FetchConcurrency   int
	RequestTimeout     time.Duration
	JoinStrategy       string
	ProbeImages        bool
	LogLevel           string
}

func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DatabasePath = "locagri.db"
	c.StorageBucket = "locagri"
	c.ImageNamespace = "Agriculteur_PP"
	c.ImageExtension = "png"
	c.DefaultImage = "Default.png"
	c.PlaceholderURL = "https://via.placeholder.com/100"
	c.Locale = "fr"
	c.FetchConcurrency = 8
	c.RequestTimeout = 10 * time.Second
	c.JoinStrategy = JoinServer
	c.ProbeImages = true
	c.LogLevel = "warn"
}

// LoadConfig applies defaults, then the JSON file, then flags from args.
// Invalid input panics.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	cfg.normalize()
	return cfg
}

func (c *Config) normalize() {
	if c.FetchConcurrency < 1 {
		c.FetchConcurrency = 1
	}
	if c.JoinStrategy != JoinSequential {
		c.JoinStrategy = JoinServer
	}
}
