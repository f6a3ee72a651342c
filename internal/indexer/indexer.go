// Package indexer drives the extract -> tokenize -> stem pipeline over
// a document source and writes the result as an on-disk index, grounded
// on original_source/src/indexer.cpp's Indexer::build.
package indexer

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"

	"rusearch/internal/extract"
	"rusearch/internal/indexfmt"
	"rusearch/internal/source"
	"rusearch/internal/stem"
	"rusearch/internal/tokenize"
)

// Stats summarizes one indexing run, mirroring IndexStats.
type Stats struct {
	TotalDocuments int
	TotalTokens    int
	UniqueTerms    int
	TotalPostings  int
	TotalTextBytes int64
	AvgTermLength  float64
	IndexingTime   time.Duration
}

// DocsPerSecond is the throughput of the run in documents per second.
func (s Stats) DocsPerSecond() float64 {
	secs := s.IndexingTime.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(s.TotalDocuments) / secs
}

// KBPerSecond is the throughput of the run in kilobytes of source text
// per second.
func (s Stats) KBPerSecond() float64 {
	secs := s.IndexingTime.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(s.TotalTextBytes) / 1024.0 / secs
}

// Build reads documents from src (up to limit, or all of them if limit
// is 0), extracts title and body text, tokenizes and stems each
// document's text, and writes the accumulated inverted index plus
// forward index to outputPath. Terms are stemmed after tokenization so
// "музыка" and "музыку" collapse to the same posting-list key ("музык").
func Build(ctx context.Context, src source.DocumentSource, outputPath string, limit int, logger *slog.Logger) (Stats, error) {
	logger.Info("building index", "output", outputPath, "limit", limit)

	total, err := src.Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	if limit > 0 && limit < total {
		total = limit
	}
	logger.Info("documents to index", "count", total)

	tokCfg := tokenize.IndexConfig()

	var docs []indexfmt.DocumentInfo
	inverted := make(map[string][]uint32)
	var stats Stats
	termByteLen := 0

	start := time.Now()
	var docID uint32

	err = src.Fetch(ctx, limit, func(doc source.Document) error {
		if doc.HTMLContent == "" {
			return nil
		}

		title := extract.Title(doc.HTMLContent)
		text := extract.Text(doc.HTMLContent)
		tokens := tokenize.Tokenize(text, tokCfg)

		docs = append(docs, indexfmt.DocumentInfo{
			DocID: docID,
			Title: title,
			URL:   doc.URL,
		})

		unique := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			unique[stem.Stem(tok)] = struct{}{}
		}
		for term := range unique {
			if _, seen := inverted[term]; !seen {
				termByteLen += len(term)
			}
			inverted[term] = append(inverted[term], docID)
		}

		stats.TotalTokens += len(tokens)
		stats.TotalTextBytes += int64(len(text))

		docID++
		if docID%500 == 0 {
			elapsed := time.Since(start).Seconds()
			speed := float64(docID) / elapsed
			logger.Info("indexing progress",
				"docs", docID, "total", total,
				"docs_per_sec", speed, "terms", len(inverted))
		}
		return nil
	})
	if err != nil {
		return Stats{}, err
	}

	stats.IndexingTime = time.Since(start)
	stats.TotalDocuments = len(docs)
	stats.UniqueTerms = len(inverted)
	for _, postings := range inverted {
		stats.TotalPostings += len(postings)
	}

	logger.Info("indexing complete", "elapsed", stats.IndexingTime)
	logger.Info("writing index", "path", outputPath)

	if err := indexfmt.Write(outputPath, docs, inverted); err != nil {
		return Stats{}, err
	}

	if stats.UniqueTerms > 0 {
		stats.AvgTermLength = float64(termByteLen) / float64(stats.UniqueTerms)
	}

	logger.Info("indexing statistics",
		"documents", stats.TotalDocuments,
		"unique_terms", stats.UniqueTerms,
		"total_tokens", stats.TotalTokens,
		"avg_term_length", stats.AvgTermLength,
		"total_postings", stats.TotalPostings,
		"docs_per_sec", stats.DocsPerSecond(),
		"text_size", humanize.Bytes(uint64(stats.TotalTextBytes)),
		"elapsed", stats.IndexingTime.Round(time.Millisecond),
	)

	return stats, nil
}
