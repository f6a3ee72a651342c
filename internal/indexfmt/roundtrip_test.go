package indexfmt

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestWriteThenReadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.bin")

	docs := []DocumentInfo{
		{DocID: 1, Title: "Москва", URL: "https://ru.wikipedia.org/wiki/Москва"},
		{DocID: 2, Title: "Санкт-Петербург", URL: "https://ru.wikipedia.org/wiki/Санкт-Петербург"},
		{DocID: 3, Title: "Empty URL Doc", URL: ""},
	}
	inverted := map[string][]uint32{
		"москва":    {1},
		"петербург": {2},
		"город":     {1, 2, 3},
	}

	if err := Write(path, docs, inverted); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if r.Header().NumDocuments != uint32(len(docs)) {
		t.Fatalf("NumDocuments = %d; want %d", r.Header().NumDocuments, len(docs))
	}
	if r.Header().NumTerms != uint32(len(inverted)) {
		t.Fatalf("NumTerms = %d; want %d", r.Header().NumTerms, len(inverted))
	}

	for _, doc := range docs {
		got, ok := r.GetDocument(doc.DocID)
		if !ok {
			t.Fatalf("GetDocument(%d) not found", doc.DocID)
		}
		if got != doc {
			t.Fatalf("GetDocument(%d) = %+v; want %+v", doc.DocID, got, doc)
		}
	}

	for term, want := range inverted {
		got := r.GetPostingList(term)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("GetPostingList(%q) = %v; want %v (sorted)", term, got, want)
		}
	}

	if got := r.GetPostingList("nonexistent"); got != nil {
		t.Fatalf("GetPostingList(nonexistent) = %v; want nil", got)
	}

	wantIDs := []uint32{1, 2, 3}
	if got := r.GetAllDocIDs(); !reflect.DeepEqual(got, wantIDs) {
		t.Fatalf("GetAllDocIDs() = %v; want %v", got, wantIDs)
	}
}

func TestWritePostingListsAreSortedRegardlessOfInputOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.bin")

	docs := []DocumentInfo{{DocID: 1}, {DocID: 2}, {DocID: 3}}
	inverted := map[string][]uint32{
		"term": {3, 1, 2},
	}

	if err := Write(path, docs, inverted); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	want := []uint32{1, 2, 3}
	if got := r.GetPostingList("term"); !reflect.DeepEqual(got, want) {
		t.Fatalf("GetPostingList(term) = %v; want sorted %v", got, want)
	}
}

func TestOpenRejectsBadMagic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.bin")

	docs := []DocumentInfo{{DocID: 1, Title: "x"}}
	if err := Write(path, docs, nil); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	// Corrupt the magic bytes.
	corrupt := []byte{0, 0, 0, 0}
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	if _, err := f.WriteAt(corrupt, 0); err != nil {
		t.Fatalf("WriteAt() error = %v", err)
	}
	f.Close()

	if _, err := Open(path); err == nil {
		t.Fatalf("Open() with corrupted magic: want error, got nil")
	}
}

func TestReaderCachesLoadOnlyOnce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.bin")

	docs := []DocumentInfo{{DocID: 1, Title: "one"}}
	inverted := map[string][]uint32{"one": {1}}
	if err := Write(path, docs, inverted); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	first := r.GetAllDocIDs()
	second := r.GetAllDocIDs()
	if &first[0] != &second[0] {
		t.Fatalf("GetAllDocIDs() recomputed instead of returning the cached slice")
	}
}
