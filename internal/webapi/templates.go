package webapi

import "html/template"

// The two pages this front end serves: a bare search box, and a
// results page with pagination. Escaping is handled by html/template
// rather than the hand-rolled html_escape in original_source's
// WebServer — the standard library's contextual escaping is the
// idiomatic Go answer here since nothing in the retrieved corpus wires
// up a templating library of its own.
var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="ru">
<head>
<meta charset="UTF-8">
<title>Search</title>
</head>
<body>
<h1>Search</h1>
<form action="/search" method="get">
<input type="text" name="q" placeholder="Enter search query..." autofocus>
<button type="submit">Search</button>
</form>
<div class="hints">
<h3>Query syntax</h3>
<ul>
<li><code>word1 word2</code> - both words (AND)</li>
<li><code>word1 || word2</code> - any word (OR)</li>
<li><code>!word</code> - exclude word (NOT)</li>
<li><code>(word1 || word2) word3</code> - grouping</li>
</ul>
</div>
</body>
</html>`))

type resultsPageData struct {
	Query       string
	TotalCount  int
	QueryTimeMs float64
	Results     []resultRow
	Page        int
	TotalPages  int
	HasPrev     bool
	HasNext     bool
	PrevPage    int
	NextPage    int
}

type resultRow struct {
	Title string
	URL   string
}

var resultsTemplate = template.Must(template.New("results").Parse(`<!DOCTYPE html>
<html lang="ru">
<head>
<meta charset="UTF-8">
<title>{{.Query}} - Search Results</title>
</head>
<body>
<header>
<h1><a href="/">Search</a></h1>
<form action="/search" method="get">
<input type="text" name="q" value="{{.Query}}">
<button type="submit">Search</button>
</form>
</header>
<div class="stats">Found: <strong>{{.TotalCount}}</strong> documents in <strong>{{printf "%.2f" .QueryTimeMs}}</strong> ms</div>
{{if .Results}}
<div class="results">
{{range .Results}}<div class="result">
<h3><a href="{{.URL}}" target="_blank">{{.Title}}</a></h3>
<cite>{{.URL}}</cite>
</div>
{{end}}
</div>
<div class="pagination">
{{if .HasPrev}}<a href="/search?q={{.Query}}&page={{.PrevPage}}">Previous</a>{{end}}
<span>Page {{.Page}} of {{.TotalPages}}</span>
{{if .HasNext}}<a href="/search?q={{.Query}}&page={{.NextPage}}">Next</a>{{end}}
</div>
{{else}}
<div class="no-results"><p>No results found for <strong>{{.Query}}</strong></p></div>
{{end}}
</body>
</html>`))
