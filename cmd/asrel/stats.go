package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cunha/asrel/db"
	"github.com/cunha/asrel/domain"
)

func newStatsCmd() *cobra.Command {
	statsCmd := &cobra.Command{
		Use:     "statistics",
		Aliases: []string{"stats", "stat", "st"},
		Short:   "Feed container counts",
		Long:    "Displays source, clique, IXP, and relationship counts for the loaded feed",
		PreRun: func(_ *cobra.Command, _ []string) {
			initLogging()
		},
		Run: func(cmd *cobra.Command, args []string) {
			table, err := db.Load(FeedFile)
			if err != nil {
				log.Fatalf("main: %s", err)
			}

			counts := struct {
				Sources       int                 `json:"sources"`
				Clique        int                 `json:"clique"`
				IXPs          int                 `json:"ixps"`
				Relationships int                 `json:"relationships"`
				ByType        map[string]int      `json:"by_type"`
				SourceList    []domain.DataSource `json:"source_list"`
			}{
				Sources:       len(table.Sources()),
				Clique:        len(table.Clique()),
				IXPs:          len(table.IXPs()),
				Relationships: table.Len(),
				ByType:        map[string]int{},
				SourceList:    table.Sources(),
			}
			table.EachRelationship(func(_ domain.Pair, rel domain.Relationship) {
				counts.ByType[rel.String()]++
			})

			if err := emitJSON(counts); err != nil {
				log.Fatalf("main: %s", err)
			}
		},
	}
	return statsCmd
}

func newCliqueCmd() *cobra.Command {
	cliqueCmd := &cobra.Command{
		Use:   "clique",
		Short: "Inferred clique members",
		Long:  "Lists the ASes the feed identifies as the inferred top-tier clique",
		PreRun: func(_ *cobra.Command, _ []string) {
			initLogging()
		},
		Run: func(cmd *cobra.Command, args []string) {
			table, err := db.Load(FeedFile)
			if err != nil {
				log.Fatalf("main: %s", err)
			}
			if err := emitJSON(table.Clique()); err != nil {
				log.Fatalf("main: %s", err)
			}
		},
	}
	return cliqueCmd
}

func newIXPsCmd() *cobra.Command {
	ixpsCmd := &cobra.Command{
		Use:   "ixps",
		Short: "IXP ASes",
		Long:  "Lists the ASes the feed identifies as representing Internet exchange points",
		PreRun: func(_ *cobra.Command, _ []string) {
			initLogging()
		},
		Run: func(cmd *cobra.Command, args []string) {
			table, err := db.Load(FeedFile)
			if err != nil {
				log.Fatalf("main: %s", err)
			}
			if err := emitJSON(table.IXPs()); err != nil {
				log.Fatalf("main: %s", err)
			}
		},
	}
	return ixpsCmd
}
