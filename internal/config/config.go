// ABOUTME: Application configuration loading
// ABOUTME: Reads TOML config from XDG config home and the working directory via koanf
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// DefaultTickMs is the bounded poll interval of the playback worker.
	// Any bounded value is correct; 100ms trades UI latency against CPU.
	DefaultTickMs = 100

	// DefaultVolume is the initial output volume in percent
	DefaultVolume = 100

	// DefaultLogFile is where the application log goes (the TUI owns stdout)
	DefaultLogFile = "audition.log"
)

type Config struct {
	TickMs  int    `koanf:"tick_ms"`
	Volume  int    `koanf:"volume"`
	LogFile string `koanf:"log_file"`
}

// Load reads configuration. If explicit is non-empty only that file is
// read; otherwise config files are tried in priority order (last
// wins): XDG config home, then ./config.toml. Missing files are fine.
func Load(explicit string) (*Config, error) {
	k := koanf.New(".")

	paths := []string{explicit}
	if explicit == "" {
		paths = configPaths()
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		TickMs:  DefaultTickMs,
		Volume:  DefaultVolume,
		LogFile: DefaultLogFile,
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.clamp()

	return cfg, nil
}

// clamp keeps loaded values inside sane bounds
func (c *Config) clamp() {
	if c.TickMs <= 0 {
		c.TickMs = DefaultTickMs
	}
	if c.Volume < 0 {
		c.Volume = 0
	}
	if c.Volume > 100 {
		c.Volume = 100
	}
	if c.LogFile == "" {
		c.LogFile = DefaultLogFile
	}
}

func configPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, "audition", "config.toml"),
		"config.toml",
	}
}
