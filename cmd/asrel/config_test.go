package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	// Note: quiet and verbose cannot both be set to true, this is only done
	// here to test that the settings are applied.
	const content = `
feed = "/data/20130801.as-rel.txt.gz"
quiet = true
verbose = true
`

	tempDir, err := os.MkdirTemp("", "asrel-config")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tempDir)

	file := filepath.Join(tempDir, "asrel.toml")

	origSearchPaths := DefaultConfigSearchPaths
	DefaultConfigSearchPaths = append([]string{file}, DefaultConfigSearchPaths...)
	defer func() { DefaultConfigSearchPaths = origSearchPaths }()

	if err := os.WriteFile(file, []byte(content), os.FileMode(int(0600))); err != nil {
		t.Fatal(err)
	}

	var (
		origFeed    = FeedFile
		origQuiet   = Quiet
		origVerbose = Verbose
	)
	defer func() {
		FeedFile = origFeed
		Quiet = origQuiet
		Verbose = origVerbose
	}()

	cfg := NewConfig()

	if err := cfg.Do(); err != nil {
		t.Fatal(err)
	}

	if cfg.File != file {
		t.Errorf("Expected cfg.File=%v but actual=%v", file, cfg.File)
	}

	if FeedFile == origFeed {
		t.Errorf("FeedFile value did not change")
	}

	if expected, actual := "/data/20130801.as-rel.txt.gz", FeedFile; actual != expected {
		t.Errorf("Expected FeedFile=%v but actual=%v", expected, actual)
	}
	if expected, actual := true, Quiet; actual != expected {
		t.Errorf("Expected Quiet=%v but actual=%v", expected, actual)
	}
	if expected, actual := true, Verbose; actual != expected {
		t.Errorf("Expected Verbose=%v but actual=%v", expected, actual)
	}
}

func TestConfigSurvivesFlagRegistration(t *testing.T) {
	// The config file is applied before the root command is built; flag
	// registration must not reset the bound variables to literal defaults.
	var (
		origFeed    = FeedFile
		origQuiet   = Quiet
		origVerbose = Verbose
	)
	defer func() {
		FeedFile = origFeed
		Quiet = origQuiet
		Verbose = origVerbose
	}()

	FeedFile = "/data/20130801.as-rel.txt.gz"
	Quiet = true
	Verbose = true

	newRootCmd()

	if expected, actual := "/data/20130801.as-rel.txt.gz", FeedFile; actual != expected {
		t.Errorf("Expected FeedFile=%v after flag registration but actual=%v", expected, actual)
	}
	if expected, actual := true, Quiet; actual != expected {
		t.Errorf("Expected Quiet=%v after flag registration but actual=%v", expected, actual)
	}
	if expected, actual := true, Verbose; actual != expected {
		t.Errorf("Expected Verbose=%v after flag registration but actual=%v", expected, actual)
	}
}
