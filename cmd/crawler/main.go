// Command crawler fetches pages breadth-first from a seed URL and
// stores their HTML in MongoDB for the indexer to consume, resuming
// from a SQLite-backed frontier across restarts.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"rusearch/internal/config"
	"rusearch/internal/crawl"
	"rusearch/internal/logging"
	"rusearch/internal/source"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("crawler", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to YAML config file")
	seed := fs.String("seed", "", "seed URL to start crawling from")
	maxPages := fs.Int("max-pages", 0, "maximum pages to fetch this run (0 = config default)")
	statePath := fs.String("state", "", "path to the resumable crawl state file (default: crawl.db)")
	sameHost := fs.Bool("same-host", true, "restrict crawling to the seed URL's host")
	host := fs.String("host", "", "MongoDB host (default: localhost)")
	db := fs.String("db", "", "database name")
	collection := fs.String("collection", "", "collection name")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	if *seed != "" {
		cfg.Crawl.Seed = *seed
	}
	if *maxPages != 0 {
		cfg.Crawl.MaxPages = *maxPages
	}
	if *statePath != "" {
		cfg.Crawl.StatePath = *statePath
	}
	cfg.Crawl.SameHost = *sameHost
	if *host != "" {
		cfg.Mongo.Host = *host
	}
	if *db != "" {
		cfg.Mongo.Database = *db
	}
	if *collection != "" {
		cfg.Mongo.Collection = *collection
	}

	if cfg.Crawl.Seed == "" {
		fmt.Fprintln(os.Stderr, "Error: a seed URL is required (--seed or crawl.seed in the config file)")
		return 1
	}
	if cfg.Crawl.StatePath == "" {
		cfg.Crawl.StatePath = "crawl.db"
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	logger := logging.WithComponent("crawler")

	ctx := context.Background()

	sink, err := source.NewMongoSource(ctx, cfg.Mongo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	defer sink.Close(ctx)

	state, err := crawl.OpenState(cfg.Crawl.StatePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	defer state.Close()

	crawler := crawl.New(state, sink, cfg.Crawl.SameHost, cfg.Crawl.MaxPages, logger)

	fetched, err := crawler.Run(ctx, cfg.Crawl.Seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	fmt.Printf("Fetched %d pages\n", fetched)
	return 0
}
