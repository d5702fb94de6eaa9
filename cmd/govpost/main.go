package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/govpost/internal/checkpoint"
	"github.com/govpost/internal/config"
	"github.com/govpost/internal/directory"
	"github.com/govpost/internal/mailing"
	"github.com/govpost/internal/usps"
	"github.com/govpost/internal/web"
)

var (
	settings config.Settings

	dataDir string
	limit   int
	debug   bool
)

func main() {
	config.LoadEnv()
	settings = config.FromEnv()

	rootCmd := &cobra.Command{
		Use:   "govpost",
		Short: "US government mailing-address scraper",
		Long:  `Scrapes postal addresses for federal officeholders, standardizes them against the USPS zip lookup, and assembles mailpieces.`,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", settings.DataDir, "Checkpoint directory")
	rootCmd.PersistentFlags().IntVar(&limit, "limit", 0, "Maximum unresolved persons to process this run (0 = all)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", settings.Debug, "Dump line sequences before and after editing")

	rootCmd.AddCommand(createScrapeCmd("house", "Scrape House member addresses", directory.HouseSource))
	rootCmd.AddCommand(createScrapeCmd("senate", "Scrape Senate member addresses", directory.SenateSource))
	rootCmd.AddCommand(createScrapeCmd("governors", "Scrape state governor addresses", directory.GovernorsSource))
	rootCmd.AddCommand(createScrapeCmd("military", "Scrape defense leadership addresses", directory.MilitarySource))
	rootCmd.AddCommand(createAllCmd())
	rootCmd.AddCommand(createMailingCmd())
	rootCmd.AddCommand(createServeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// sources in the order the full run processes them.
var allSources = []func() directory.Source{
	directory.HouseSource,
	directory.SenateSource,
	directory.GovernorsSource,
	directory.MilitarySource,
}

func createScrapeCmd(use, short string, source func() directory.Source) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runSources(cmd.Context(), source); err != nil {
				log.Fatalf("%s: %v", use, err)
			}
		},
	}
}

func createAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Scrape every roster in sequence",
		Run: func(cmd *cobra.Command, args []string) {
			if err := runSources(cmd.Context(), allSources...); err != nil {
				log.Fatalf("all: %v", err)
			}
		},
	}
}

func runSources(ctx context.Context, sources ...func() directory.Source) error {
	store, err := checkpoint.NewStore(dataDir)
	if err != nil {
		return err
	}
	p := &directory.Processor{
		Fetcher: directory.NewFetcher(settings.Timeout),
		Store:   store,
		USPS:    usps.NewClient(settings.USPSEndpoint, settings.Timeout, settings.RateLimit),
		Limit:   limit,
		Debug:   debug,
	}
	for _, source := range sources {
		src := source()
		roster, err := p.Run(ctx, src)
		if err != nil {
			return err
		}
		log.Printf("%s: %d/%d resolved", src.Name, roster.Resolved(), len(roster.Persons))
	}
	return nil
}

func createMailingCmd() *cobra.Command {
	var lastID int
	cmd := &cobra.Command{
		Use:   "mailing",
		Short: "Assemble mailpieces from every resolved roster",
		Run: func(cmd *cobra.Command, args []string) {
			if err := runMailing(lastID); err != nil {
				log.Fatalf("mailing: %v", err)
			}
		},
	}
	cmd.Flags().IntVar(&lastID, "last-id", 0, "Highest mailpiece id already used; new ids start after it")
	return cmd
}

func runMailing(lastID int) error {
	store, err := checkpoint.NewStore(dataDir)
	if err != nil {
		return err
	}
	names, err := store.Names()
	if err != nil {
		return err
	}
	var pieces []mailing.Piece
	for _, name := range names {
		if name == "mailing" {
			continue
		}
		roster := &directory.Roster{}
		if err := store.Load(name, roster); err != nil {
			return err
		}
		batch, err := mailing.Build(roster.Persons, lastID)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		lastID += len(batch)
		pieces = append(pieces, batch...)
	}
	if len(pieces) == 0 {
		return fmt.Errorf("no resolved rosters under %s", dataDir)
	}
	if err := store.Save("mailing", pieces); err != nil {
		return err
	}
	log.Printf("mailing: %d pieces written to %s", len(pieces), store.Path("mailing"))
	return nil
}

func createServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a read-only HTTP view of the checkpoints",
		Run: func(cmd *cobra.Command, args []string) {
			store, err := checkpoint.NewStore(dataDir)
			if err != nil {
				log.Fatalf("serve: %v", err)
			}
			if err := web.NewServer(addr, store).Start(); err != nil {
				log.Fatalf("serve: %v", err)
			}
		},
	}
	cmd.Flags().StringVar(&addr, "addr", settings.ListenAddr, "Listen address")
	return cmd
}
