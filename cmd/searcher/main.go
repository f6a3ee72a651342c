// Command searcher runs boolean queries against an index file built by
// the indexer, either as a one-shot query, an interactive REPL, or a
// filter reading queries from stdin. Grounded on
// original_source/src/main_search.cpp's flag set and execute_query loop.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"rusearch/internal/search"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin *os.File, stdout, stderr *os.File) int {
	if len(args) < 1 || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintf(stderr, "Usage: %s <index.bin> [options]\n\nOptions:\n"+
			"  -q QUERY     Single query\n"+
			"  -i           Interactive mode\n"+
			"  -l LIMIT     Results limit (default: 10)\n"+
			"  --stats      Show statistics\n", os.Args[0])
		return 1
	}

	indexPath := args[0]

	fs := flag.NewFlagSet("searcher", flag.ContinueOnError)
	query := fs.String("q", "", "single query")
	interactive := fs.Bool("i", false, "interactive mode")
	limit := fs.Int("l", 10, "results limit")
	showStats := fs.Bool("stats", false, "show statistics")
	if err := fs.Parse(args[1:]); err != nil {
		return 1
	}

	searcher, err := search.Open(indexPath)
	if err != nil {
		fmt.Fprintln(stderr, "Error opening index:", err)
		return 1
	}

	if *showStats {
		fmt.Fprintf(stdout, "Documents: %d\n", searcher.NumDocuments())
		fmt.Fprintf(stdout, "Terms: %d\n", searcher.NumTerms())
	}

	executeQuery := func(q string) {
		resp := searcher.Search(q, *limit, 0)
		fmt.Fprintf(stdout, "\n=== Query: %s ===\n", q)
		fmt.Fprintf(stdout, "Found: %d in %.2f ms\n\n", resp.TotalCount, resp.QueryTimeMs)
		for i, r := range resp.Results {
			fmt.Fprintf(stdout, "%d. %s\n   %s\n\n", i+1, r.Title, r.URL)
		}
	}

	switch {
	case *query != "":
		executeQuery(*query)
	case *interactive:
		fmt.Fprintln(stdout, "Interactive mode. Ctrl+D to exit.")
		fmt.Fprintln(stdout)
		scanner := bufio.NewScanner(stdin)
		fmt.Fprint(stdout, ">>> ")
		for scanner.Scan() {
			line := scanner.Text()
			if line != "" {
				executeQuery(line)
			}
			fmt.Fprint(stdout, ">>> ")
		}
		fmt.Fprintln(stdout)
	default:
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			line := scanner.Text()
			if line != "" {
				executeQuery(line)
			}
		}
	}

	return 0
}
