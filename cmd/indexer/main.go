// Command indexer reads documents from MongoDB, builds a boolean
// inverted index, and writes it to disk. Grounded on
// original_source/src/main_indexer.cpp's flag set.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"rusearch/internal/config"
	"rusearch/internal/indexer"
	"rusearch/internal/logging"
	"rusearch/internal/source"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("indexer", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to YAML config file")
	host := fs.String("host", "", "MongoDB host (default: localhost)")
	port := fs.Int("port", 0, "MongoDB port (default: 27017)")
	db := fs.String("db", "", "database name")
	collection := fs.String("collection", "", "collection name")
	output := fs.String("output", "", "output file (default: index.bin)")
	limit := fs.Int("limit", 0, "limit the number of documents indexed (0 = no limit)")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	if *host != "" {
		cfg.Mongo.Host = *host
	}
	if *port != 0 {
		cfg.Mongo.Port = *port
	}
	if *db != "" {
		cfg.Mongo.Database = *db
	}
	if *collection != "" {
		cfg.Mongo.Collection = *collection
	}
	if *output != "" {
		cfg.Index.OutputPath = *output
	}
	if *limit != 0 {
		cfg.Index.Limit = *limit
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	logger := logging.WithComponent("indexer")

	ctx := context.Background()

	src, err := source.NewMongoSource(ctx, cfg.Mongo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	defer src.Close(ctx)

	stats, err := indexer.Build(ctx, src, cfg.Index.OutputPath, cfg.Index.Limit, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	fmt.Printf("Indexed %d documents, %d unique terms, in %s\n",
		stats.TotalDocuments, stats.UniqueTerms, stats.IndexingTime.Round(time.Millisecond))
	return 0
}
