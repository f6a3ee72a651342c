// Package crawl fetches pages breadth-first from a seed URL, storing
// each page's HTML in a document source and its own progress in a
// SQLite-backed frontier so a crawl can resume after being killed.
// Grounded on the teacher's crawl.go/download.go/clean.go (BFS shape,
// same-host filtering) and original_source/crawler.py (resumable
// frontier persisted outside process memory), scaled down to what a
// same-host crawl without robots.txt handling needs.
package crawl

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"rusearch/internal/source"
)

// Crawler fetches pages reachable from a seed URL and hands each one's
// HTML to Sink.
type Crawler struct {
	Client   *http.Client
	State    *State
	Sink     source.DocumentSource
	SameHost bool
	MaxPages int
	Logger   *slog.Logger
}

// New builds a Crawler with sane defaults for the HTTP client.
func New(state *State, sink source.DocumentSource, sameHost bool, maxPages int, logger *slog.Logger) *Crawler {
	return &Crawler{
		Client:   http.DefaultClient,
		State:    state,
		Sink:     sink,
		SameHost: sameHost,
		MaxPages: maxPages,
		Logger:   logger,
	}
}

// Run seeds the frontier with seedURL if the state is empty, then
// fetches pages breadth-first until MaxPages have been visited or the
// frontier is exhausted. It returns the number of pages fetched in this
// call.
func (c *Crawler) Run(ctx context.Context, seedURL string) (int, error) {
	visited, err := c.State.VisitedCount()
	if err != nil {
		return 0, err
	}
	if visited == 0 {
		if err := c.State.Enqueue(seedURL, 0); err != nil {
			return 0, err
		}
	}

	fetched := 0
	for c.MaxPages <= 0 || visited+fetched < c.MaxPages {
		if err := ctx.Err(); err != nil {
			return fetched, err
		}

		url, depth, ok, err := c.State.Dequeue()
		if err != nil {
			return fetched, err
		}
		if !ok {
			break
		}

		body, err := c.download(ctx, url)
		if err != nil {
			c.Logger.Warn("skipping page after fetch error", "url", url, "error", err)
			if markErr := c.State.MarkVisited(url); markErr != nil {
				return fetched, markErr
			}
			continue
		}

		if err := c.Sink.Insert(ctx, source.Document{URL: url, HTMLContent: string(body)}); err != nil {
			return fetched, err
		}
		if err := c.State.MarkVisited(url); err != nil {
			return fetched, err
		}
		fetched++

		for _, href := range ExtractLinks(body) {
			abs := CleanHref(url, href)
			if abs == "" {
				continue
			}
			if c.SameHost && !SameHost(seedURL, abs) {
				continue
			}
			if err := c.State.Enqueue(abs, depth+1); err != nil {
				return fetched, err
			}
		}

		c.Logger.Info("crawled page", "url", url, "depth", depth, "fetched", fetched)
	}

	return fetched, nil
}

func (c *Crawler) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(resp.Status)
	}

	return io.ReadAll(resp.Body)
}
