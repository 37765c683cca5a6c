package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultConfigSearchPaths lists the locations probed for a TOML
// configuration file, in order.  The first file that exists wins.
var DefaultConfigSearchPaths = []string{
	filepath.Join(os.Getenv("HOME"), ".asrel.toml"),
	filepath.Join(os.Getenv("HOME"), ".config", ".asrel.toml"),
}

// Config is the TOML configuration struct.  When a config file is found, the
// values contained therein will override the compiled-in defaults.
type Config struct {
	File string `toml:"-"` // Path of the file the values were read from.

	Feed    string
	Quiet   bool
	Verbose bool
}

func NewConfig() *Config {
	return &Config{}
}

// Do locates, parses, and applies the configuration file, if any.
func (config *Config) Do() error {
	file, err := findConfigFile()
	if err != nil {
		return err
	}

	if len(file) == 0 {
		// No configuration file found.
		return nil
	}

	config.File = file
	if _, err := toml.DecodeFile(file, config); err != nil {
		return err
	}

	config.Apply()
	return nil
}

func (config *Config) Apply() {
	if len(config.Feed) > 0 {
		FeedFile = config.Feed
	}
	if config.Quiet {
		Quiet = true
	}
	if config.Verbose {
		Verbose = true
	}
}

// findConfigFile probes DefaultConfigSearchPaths for an existing file.
//
// If no config file is found, ("", nil) is returned.
func findConfigFile() (string, error) {
	for _, path := range DefaultConfigSearchPaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if os.IsNotExist(err) {
			continue
		} else if err != nil {
			return "", err
		}
	}
	return "", nil
}
