package search

import (
	"reflect"
	"testing"

	"rusearch/internal/query"
	"rusearch/internal/stem"
)

type fakeSource struct {
	postings map[string][]uint32
	allDocs  []uint32
}

func (f *fakeSource) GetPostingList(term string) []uint32 { return f.postings[term] }
func (f *fakeSource) GetAllDocIDs() []uint32               { return f.allDocs }

// newFakeSource keys its postings by stem.Stem of the plain word rather
// than the word itself, matching what evaluate does to a Term node's
// value before the lookup: it stems it first, the same as the indexer
// does when building the postings it stands in for.
func newFakeSource() *fakeSource {
	return &fakeSource{
		postings: map[string][]uint32{
			stem.Stem("composer"): {0, 1},
			stem.Stem("mozart"):   {0},
			stem.Stem("bach"):     {1},
			stem.Stem("a"):        {0, 1, 2},
		},
		allDocs: []uint32{0, 1, 2},
	}
}

func TestEvaluateTermReturnsPostings(t *testing.T) {
	src := newFakeSource()
	got := evaluate(query.Parse("composer"), src)
	want := []uint32{0, 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("evaluate(composer) = %v; want %v", got, want)
	}
}

func TestEvaluateAndIsIntersection(t *testing.T) {
	src := newFakeSource()
	got := evaluate(query.Parse("composer && mozart"), src)
	want := []uint32{0}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("evaluate(composer && mozart) = %v; want %v", got, want)
	}
}

func TestEvaluateOrIsUnion(t *testing.T) {
	src := newFakeSource()
	got := evaluate(query.Parse("mozart || bach"), src)
	want := []uint32{0, 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("evaluate(mozart || bach) = %v; want %v", got, want)
	}
}

func TestEvaluateNotIsComplement(t *testing.T) {
	src := newFakeSource()
	got := evaluate(query.Parse("composer && !mozart"), src)
	want := []uint32{1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("evaluate(composer && !mozart) = %v; want %v", got, want)
	}
}

func TestEvaluateDeMorgan(t *testing.T) {
	src := newFakeSource()
	left := evaluate(query.Parse("!(composer && mozart)"), src)
	right := evaluate(query.Parse("!composer || !mozart"), src)
	if !reflect.DeepEqual(left, right) {
		t.Fatalf("De Morgan violated: !(a&&b)=%v, !a||!b=%v", left, right)
	}
}

func TestEvaluateImplicitAndMatchesExplicit(t *testing.T) {
	src := newFakeSource()
	implicit := evaluate(query.Parse("composer mozart"), src)
	explicit := evaluate(query.Parse("composer && mozart"), src)
	if !reflect.DeepEqual(implicit, explicit) {
		t.Fatalf("implicit AND %v != explicit AND %v", implicit, explicit)
	}
}

func TestEvaluateGrouping(t *testing.T) {
	src := newFakeSource()
	got := evaluate(query.Parse("(mozart || bach) a"), src)
	want := []uint32{0, 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("evaluate(grouping) = %v; want %v", got, want)
	}
}

func TestEvaluateUnknownTermIsEmpty(t *testing.T) {
	src := newFakeSource()
	got := evaluate(query.Parse("nonexistent"), src)
	if len(got) != 0 {
		t.Fatalf("evaluate(nonexistent) = %v; want empty", got)
	}
}

func TestSetOperationsPreserveSortedOrder(t *testing.T) {
	a := []uint32{1, 3, 5, 7}
	b := []uint32{2, 3, 6, 7, 9}

	if got := setUnion(a, b); !sortedAscending(got) {
		t.Fatalf("setUnion result not sorted: %v", got)
	}
	if got := setIntersect(a, b); !reflect.DeepEqual(got, []uint32{3, 7}) {
		t.Fatalf("setIntersect = %v; want [3 7]", got)
	}
	if got := setDifference(a, b); !reflect.DeepEqual(got, []uint32{1, 5}) {
		t.Fatalf("setDifference = %v; want [1 5]", got)
	}
}

func sortedAscending(s []uint32) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] >= s[i] {
			return false
		}
	}
	return true
}
