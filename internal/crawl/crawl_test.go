package crawl

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"rusearch/internal/source"
)

func TestCleanHrefResolvesRelativeLinks(t *testing.T) {
	got := CleanHref("https://example.org/wiki/Mozart", "Bach")
	want := "https://example.org/wiki/Bach"
	if got != want {
		t.Fatalf("CleanHref() = %q; want %q", got, want)
	}
}

func TestCleanHrefStripsFragment(t *testing.T) {
	got := CleanHref("https://example.org/page", "other#section")
	want := "https://example.org/other"
	if got != want {
		t.Fatalf("CleanHref() = %q; want %q", got, want)
	}
}

func TestCleanHrefRejectsPseudoSchemes(t *testing.T) {
	for _, href := range []string{"#top", "javascript:void(0)", "data:text/plain,x", "mailto:a@b.com", "  "} {
		if got := CleanHref("https://example.org/", href); got != "" {
			t.Fatalf("CleanHref(%q) = %q; want empty", href, got)
		}
	}
}

func TestSameHost(t *testing.T) {
	if !SameHost("https://example.org/a", "https://example.org/b") {
		t.Fatalf("expected same host")
	}
	if SameHost("https://example.org/a", "https://other.org/b") {
		t.Fatalf("expected different host")
	}
}

func TestExtractLinksSkipsScriptAndStyle(t *testing.T) {
	html := `<html><body>
		<a href="/keep">keep</a>
		<script><a href="/skip1">skip</a></script>
		<style><a href="/skip2">skip</a></style>
	</body></html>`
	links := ExtractLinks([]byte(html))
	if len(links) != 1 || links[0] != "/keep" {
		t.Fatalf("ExtractLinks() = %v; want [/keep]", links)
	}
}

func TestStateEnqueueSkipsVisited(t *testing.T) {
	st, err := OpenState(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("OpenState() error = %v", err)
	}
	defer st.Close()

	if err := st.MarkVisited("https://example.org/a"); err != nil {
		t.Fatalf("MarkVisited() error = %v", err)
	}
	if err := st.Enqueue("https://example.org/a", 1); err != nil {
		t.Fatalf("Enqueue() error = %v", err)
	}

	_, _, ok, err := st.Dequeue()
	if err != nil {
		t.Fatalf("Dequeue() error = %v", err)
	}
	if ok {
		t.Fatalf("expected empty frontier after enqueueing an already-visited URL")
	}
}

func TestCrawlerRunFetchesSameHostPages(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/a", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<html><body><a href="/b">b</a><a href="https://external.example/x">ext</a></body></html>`)
	})
	mux.HandleFunc("/b", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<html><body>no more links</body></html>`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	st, err := OpenState(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("OpenState() error = %v", err)
	}
	defer st.Close()

	sink := source.NewSliceSource(nil)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	crawler := New(st, sink, true, 0, logger)

	fetched, err := crawler.Run(context.Background(), srv.URL+"/a")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if fetched != 2 {
		t.Fatalf("fetched = %d; want 2 (/a and /b, external link excluded)", fetched)
	}

	count, err := st.VisitedCount()
	if err != nil {
		t.Fatalf("VisitedCount() error = %v", err)
	}
	if count != 2 {
		t.Fatalf("VisitedCount() = %d; want 2", count)
	}
}

func TestCrawlerRunRespectsMaxPages(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/a", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<html><body><a href="/b">b</a></body></html>`)
	})
	mux.HandleFunc("/b", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<html><body><a href="/c">c</a></body></html>`)
	})
	mux.HandleFunc("/c", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<html><body>leaf</body></html>`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	st, err := OpenState(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("OpenState() error = %v", err)
	}
	defer st.Close()

	sink := source.NewSliceSource(nil)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	crawler := New(st, sink, true, 1, logger)

	fetched, err := crawler.Run(context.Background(), srv.URL+"/a")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if fetched != 1 {
		t.Fatalf("fetched = %d; want 1 (MaxPages clamps the run)", fetched)
	}
}
