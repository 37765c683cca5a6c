package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cunha/asrel/feed"
)

func newFetchCmd() *cobra.Command {
	fetchCmd := &cobra.Command{
		Use:   "fetch <serial>",
		Short: "Download a dataset snapshot",
		Long:  "Downloads the AS relationship snapshot for the given serial (e.g. 20130801) from CAIDA's public dataset directory",
		Args:  cobra.ExactArgs(1),
		PreRun: func(_ *cobra.Command, _ []string) {
			initLogging()
		},
		Run: func(cmd *cobra.Command, args []string) {
			serial := args[0]
			out := FetchOutputFile
			if out == "" {
				out = fmt.Sprintf("%v.as-rel.txt.gz", serial)
			}

			f, err := os.Create(out)
			if err != nil {
				log.Fatalf("main: %s", err)
			}
			if err := feed.Fetch(serial, f); err != nil {
				f.Close()
				os.Remove(out)
				log.Fatalf("main: %s", err)
			}
			if err := f.Close(); err != nil {
				log.Fatalf("main: %s", err)
			}
			log.WithField("file", out).Info("Snapshot saved")
		},
	}

	fetchCmd.Flags().StringVarP(&FetchOutputFile, "output", "o", FetchOutputFile, "Destination filename (defaults to <serial>.as-rel.txt.gz)")

	return fetchCmd
}
