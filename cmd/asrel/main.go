package main

import (
	"encoding/json"
	"fmt"

	"github.com/onrik/logrus/filename"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	FeedFile = "as-rel.txt.gz"
	Quiet    bool
	Verbose  bool

	FetchOutputFile string
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "asrel",
		Short: "CAIDA AS relationship lookups",
		Long:  "Loads CAIDA's AS relationship dataset and answers direction-aware relationship queries",
	}

	// Flag defaults must be the current variable values: the TOML config is
	// applied before command construction, and registering with a literal
	// default would erase what the config file just set.
	rootCmd.PersistentFlags().BoolVarP(&Quiet, "quiet", "q", Quiet, "Activate quiet log output")
	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "v", Verbose, "Activate verbose log output")
	rootCmd.PersistentFlags().StringVarP(&FeedFile, "file", "f", FeedFile, "Path to gzip-compressed AS relationship feed (\"-\" reads from STDIN)")

	rootCmd.AddCommand(
		newLookupCmd(),
		newNeighborsCmd(),
		newStatsCmd(),
		newCliqueCmd(),
		newIXPsCmd(),
		newFetchCmd(),
	)

	return rootCmd
}

func main() {
	if err := NewConfig().Do(); err != nil {
		log.Fatalf("applying asrel TOML configuration: %s", err)
	}
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func initLogging() {
	level := log.InfoLevel
	if Verbose {
		log.AddHook(filename.NewHook())
		level = log.DebugLevel
	}
	if Quiet {
		level = log.ErrorLevel
	}
	log.SetLevel(level)
}

func emitJSON(x interface{}) error {
	bs, err := json.MarshalIndent(x, "", "    ")
	if err != nil {
		return err
	}
	fmt.Printf("%v\n", string(bs))
	return nil
}
