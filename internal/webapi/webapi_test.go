package webapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"rusearch/internal/indexfmt"
	"rusearch/internal/search"
	"rusearch/internal/stem"
)

// newTestSearcher builds an index keyed by stem.Stem of each plain word,
// matching what the indexer actually stores and what a query for that
// word resolves to once evaluate stems it before the lookup.
func newTestSearcher(t *testing.T) *search.Searcher {
	t.Helper()
	path := filepath.Join(t.TempDir(), "index.bin")
	docs := []indexfmt.DocumentInfo{
		{DocID: 0, Title: "Mozart", URL: "u0"},
		{DocID: 1, Title: "Bach", URL: "u1"},
	}
	inverted := map[string][]uint32{
		stem.Stem("mozart"):   {0},
		stem.Stem("bach"):     {1},
		stem.Stem("composer"): {0, 1},
	}
	if err := indexfmt.Write(path, docs, inverted); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	s, err := search.Open(path)
	if err != nil {
		t.Fatalf("search.Open() error = %v", err)
	}
	return s
}

func TestIndexPageServesForm(t *testing.T) {
	mux := NewMux(newTestSearcher(t))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET / error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d; want 200", resp.StatusCode)
	}
}

func TestSearchPageRendersResults(t *testing.T) {
	mux := NewMux(newTestSearcher(t))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/search?q=composer")
	if err != nil {
		t.Fatalf("GET /search error = %v", err)
	}
	defer resp.Body.Close()

	buf := make([]byte, 4096)
	n, _ := resp.Body.Read(buf)
	body := string(buf[:n])

	if !strings.Contains(body, "Mozart") || !strings.Contains(body, "Bach") {
		t.Fatalf("results page missing expected titles: %s", body)
	}
}

func TestAPISearchReturnsJSON(t *testing.T) {
	mux := NewMux(newTestSearcher(t))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/search?q=mozart")
	if err != nil {
		t.Fatalf("GET /api/search error = %v", err)
	}
	defer resp.Body.Close()

	var decoded apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if decoded.Total != 1 || len(decoded.Results) != 1 || decoded.Results[0].Title != "Mozart" {
		t.Fatalf("decoded = %+v; want a single Mozart result", decoded)
	}
}

func TestAPISearchRespectsLimitAndPage(t *testing.T) {
	mux := NewMux(newTestSearcher(t))
	srv := httptest.NewServer(mux)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/search?q=composer&limit=1&page=2")
	if err != nil {
		t.Fatalf("GET /api/search error = %v", err)
	}
	defer resp.Body.Close()

	var decoded apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if decoded.Total != 2 || len(decoded.Results) != 1 || decoded.Results[0].Title != "Bach" {
		t.Fatalf("decoded = %+v; want total=2, one Bach result", decoded)
	}
}
