// Command web serves the search front end and JSON API over an index
// file built by the indexer. Grounded on
// original_source/src/main_web.cpp's flag set.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"rusearch/internal/config"
	"rusearch/internal/logging"
	"rusearch/internal/search"
	"rusearch/internal/webapi"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to YAML config file")
	index := fs.String("index", "", "index file (default: index.bin)")
	host := fs.String("host", "", "host (default: 0.0.0.0)")
	port := fs.Int("port", 0, "port (default: 8080)")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	if *index != "" {
		cfg.Web.IndexPath = *index
	}
	if *host != "" {
		cfg.Web.Host = *host
	}
	if *port != 0 {
		cfg.Web.Port = *port
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	logger := logging.WithComponent("web")

	searcher, err := search.Open(cfg.Web.IndexPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	mux := webapi.NewMux(searcher)
	addr := fmt.Sprintf("%s:%d", cfg.Web.Host, cfg.Web.Port)
	logger.Info("listening", "addr", addr, "index", cfg.Web.IndexPath)

	if err := http.ListenAndServe(addr, mux); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
