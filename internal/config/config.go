package config

import (
	"os"
	"runtime"
)

const (
	DefaultOutputDir = "docs/assets/images"
	DefaultSiteURL   = "https://fb.lscode.me"
	DefaultPort      = "8080"
)

// Config is the CLI's runtime configuration. The composers take none of it.
type Config struct {
	OutputDir string
	SiteURL   string
	Addr      string
	Workers   int
	Verbose   bool
}

// Default returns the configuration used when no flags are given. The
// preview server port comes from $PORT when set.
func Default() Config {
	return Config{
		OutputDir: DefaultOutputDir,
		SiteURL:   DefaultSiteURL,
		Addr:      ":" + getEnv("PORT", DefaultPort),
		Workers:   runtime.NumCPU(),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
