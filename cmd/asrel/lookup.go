package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cunha/asrel/db"
	"github.com/cunha/asrel/domain"
)

func newLookupCmd() *cobra.Command {
	lookupCmd := &cobra.Command{
		Use:     "lookup <as1> <as2>",
		Aliases: []string{"rel", "get"},
		Short:   "Relationship between two ASes",
		Long:    "Looks up the relationship between two ASes as seen from the first AS, inferring the inverse when only the reverse direction is stored",
		Args:    cobra.ExactArgs(2),
		PreRun: func(_ *cobra.Command, _ []string) {
			initLogging()
		},
		Run: func(cmd *cobra.Command, args []string) {
			from, err := domain.ParseASN(args[0])
			if err != nil {
				log.Fatalf("main: %s", err)
			}
			to, err := domain.ParseASN(args[1])
			if err != nil {
				log.Fatalf("main: %s", err)
			}

			table, err := db.Load(FeedFile)
			if err != nil {
				log.Fatalf("main: %s", err)
			}
			rel, err := table.Relationship(from, to)
			if err != nil {
				log.Fatalf("main: %s", err)
			}

			result := struct {
				From         domain.ASN          `json:"from"`
				To           domain.ASN          `json:"to"`
				Relationship domain.Relationship `json:"relationship"`
			}{
				From:         from,
				To:           to,
				Relationship: rel,
			}
			if err := emitJSON(result); err != nil {
				log.Fatalf("main: %s", err)
			}
		},
	}
	return lookupCmd
}

func newNeighborsCmd() *cobra.Command {
	neighborsCmd := &cobra.Command{
		Use:     "neighbors <asn>",
		Aliases: []string{"nbrs"},
		Short:   "Providers, customers, and peers of an AS",
		Long:    "Enumerates every AS with a stored relationship to the given AS, grouped by relationship type",
		Args:    cobra.ExactArgs(1),
		PreRun: func(_ *cobra.Command, _ []string) {
			initLogging()
		},
		Run: func(cmd *cobra.Command, args []string) {
			asn, err := domain.ParseASN(args[0])
			if err != nil {
				log.Fatalf("main: %s", err)
			}

			table, err := db.Load(FeedFile)
			if err != nil {
				log.Fatalf("main: %s", err)
			}

			result := struct {
				ASN       domain.ASN   `json:"asn"`
				Providers []domain.ASN `json:"providers"`
				Customers []domain.ASN `json:"customers"`
				Peers     []domain.ASN `json:"peers"`
			}{
				ASN:       asn,
				Providers: table.Providers(asn),
				Customers: table.Customers(asn),
				Peers:     table.Peers(asn),
			}
			if err := emitJSON(result); err != nil {
				log.Fatalf("main: %s", err)
			}
		},
	}
	return neighborsCmd
}
