// Package source abstracts the external document store the indexer and
// crawler read from and write to. The MongoDB-like store described in
// original_source/src/mongodb_client.cpp is one implementation; tests
// use SliceSource instead of standing up a real database.
package source

import "context"

// Document is one crawled page as stored in the document collection.
type Document struct {
	URL         string
	HTMLContent string
}

// DocumentSource yields (url, html) pairs for indexing and accepts new
// ones from a crawler. Fetch stops early if fn returns an error or if
// limit documents have been delivered; limit <= 0 means no limit.
type DocumentSource interface {
	Count(ctx context.Context) (int, error)
	Fetch(ctx context.Context, limit int, fn func(Document) error) error
	Insert(ctx context.Context, doc Document) error
	Close(ctx context.Context) error
}
