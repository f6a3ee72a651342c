// Package webapi renders the search front end and its JSON API,
// grounded on original_source/src/web_server.cpp's render_index_page
// and render_results_page and the teacher's server.go NewMux
// (library-only handler construction; the caller decides whether and
// how to serve it).
package webapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"rusearch/internal/search"
)

const resultsPerPage = 50

// NewMux builds an http.Handler serving "/" (search box), "/search"
// (HTML results with pagination), and "/api/search" (JSON, for
// programmatic callers). It does not call ListenAndServe itself.
func NewMux(searcher *search.Searcher) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		indexTemplate.Execute(w, nil)
	})

	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		page := parsePage(r.URL.Query().Get("page"))

		resp := searcher.Search(query, resultsPerPage, (page-1)*resultsPerPage)

		totalPages := (resp.TotalCount + resultsPerPage - 1) / resultsPerPage
		if totalPages == 0 {
			totalPages = 1
		}

		rows := make([]resultRow, 0, len(resp.Results))
		for _, res := range resp.Results {
			rows = append(rows, resultRow{Title: res.Title, URL: res.URL})
		}

		data := resultsPageData{
			Query:       query,
			TotalCount:  resp.TotalCount,
			QueryTimeMs: resp.QueryTimeMs,
			Results:     rows,
			Page:        page,
			TotalPages:  totalPages,
			HasPrev:     page > 1,
			HasNext:     page < totalPages,
			PrevPage:    page - 1,
			NextPage:    page + 1,
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		resultsTemplate.Execute(w, data)
	})

	mux.HandleFunc("/api/search", func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		limit := parseIntDefault(r.URL.Query().Get("limit"), 10)
		page := parsePage(r.URL.Query().Get("page"))
		offset := (page - 1) * limit

		resp := searcher.Search(query, limit, offset)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(apiResponse{
			Query:   resp.Query,
			Total:   resp.TotalCount,
			TimeMs:  resp.QueryTimeMs,
			Results: toAPIResults(resp.Results),
		})
	})

	return mux
}

type apiResult struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type apiResponse struct {
	Query   string      `json:"query"`
	Total   int         `json:"total"`
	TimeMs  float64     `json:"time_ms"`
	Results []apiResult `json:"results"`
}

func toAPIResults(results []search.Result) []apiResult {
	out := make([]apiResult, 0, len(results))
	for _, r := range results {
		out = append(out, apiResult{Title: r.Title, URL: r.URL})
	}
	return out
}

func parsePage(s string) int {
	n := parseIntDefault(s, 1)
	if n < 1 {
		return 1
	}
	return n
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
