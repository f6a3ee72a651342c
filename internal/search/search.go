package search

import (
	"time"

	"rusearch/internal/indexfmt"
	"rusearch/internal/query"
)

// Result is one matching document as returned to a caller.
type Result struct {
	DocID uint32
	Title string
	URL   string
}

// Response is the full answer to a Search call: the echoed query, the
// page of results, the total match count (for pagination), and how long
// evaluation took.
type Response struct {
	Query       string
	Results     []Result
	TotalCount  int
	QueryTimeMs float64
}

// Searcher evaluates boolean queries against one open index file.
type Searcher struct {
	reader *indexfmt.Reader
}

// Open opens the index file at path for searching.
func Open(path string) (*Searcher, error) {
	reader, err := indexfmt.Open(path)
	if err != nil {
		return nil, err
	}
	return &Searcher{reader: reader}, nil
}

// NumDocuments returns the number of documents recorded in the index
// header.
func (s *Searcher) NumDocuments() int {
	return int(s.reader.Header().NumDocuments)
}

// NumTerms returns the number of distinct terms recorded in the index
// header.
func (s *Searcher) NumTerms() int {
	return int(s.reader.Header().NumTerms)
}

// Search parses query, evaluates it, and returns a page of at most
// limit results starting at offset, ordered by ascending document ID.
// An empty or unparseable query returns a zero-result Response rather
// than an error, matching the original's "no AST -> empty response"
// behavior.
func (s *Searcher) Search(q string, limit, offset int) Response {
	start := time.Now()

	response := Response{Query: q}

	ast := query.Parse(q)
	if ast == nil {
		return response
	}

	ids := evaluate(ast, s.reader)
	response.TotalCount = len(ids)

	startIdx := offset
	if startIdx > len(ids) {
		startIdx = len(ids)
	}
	endIdx := offset + limit
	if endIdx > len(ids) {
		endIdx = len(ids)
	}
	if endIdx < startIdx {
		endIdx = startIdx
	}

	for _, docID := range ids[startIdx:endIdx] {
		doc, ok := s.reader.GetDocument(docID)
		if !ok {
			continue
		}
		response.Results = append(response.Results, Result{
			DocID: docID,
			Title: doc.Title,
			URL:   doc.URL,
		})
	}

	response.QueryTimeMs = float64(time.Since(start).Microseconds()) / 1000.0
	return response
}
