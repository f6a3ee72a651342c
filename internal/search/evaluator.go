// Package search evaluates a parsed boolean query against an on-disk
// index and paginates the result, grounded on
// original_source/src/searcher.cpp's Searcher::evaluate and
// Searcher::search.
package search

import (
	"rusearch/internal/query"
	"rusearch/internal/stem"
)

// postingSource is the slice of indexfmt.Reader this package depends
// on; a fake implementing it stands in for tests that don't need a real
// index file on disk.
type postingSource interface {
	GetPostingList(term string) []uint32
	GetAllDocIDs() []uint32
}

// evaluate walks the AST, returning a sorted slice of matching document
// IDs for each node. Term stems its (already folded) value before the
// lookup, mirroring the indexer's tokenize-then-stem pipeline, so a
// query for "музыку" finds the postings the indexer stored under
// "музык"; And/Or/Not combine child results with ordered-set operations
// over sorted slices rather than a hash set, since every input is
// already ordered.
func evaluate(node *query.Node, src postingSource) []uint32 {
	if node == nil {
		return nil
	}

	switch node.Type {
	case query.Term:
		if node.TermValue == "" {
			return nil
		}
		return src.GetPostingList(stem.Stem(node.TermValue))

	case query.Not:
		operand := evaluate(node.Operand, src)
		return setDifference(src.GetAllDocIDs(), operand)

	case query.And:
		if len(node.Operands) == 0 {
			return nil
		}
		result := evaluate(node.Operands[0], src)
		for _, operand := range node.Operands[1:] {
			if len(result) == 0 {
				break
			}
			result = setIntersect(result, evaluate(operand, src))
		}
		return result

	case query.Or:
		var result []uint32
		for _, operand := range node.Operands {
			result = setUnion(result, evaluate(operand, src))
		}
		return result

	default:
		return nil
	}
}

// setIntersect returns the sorted intersection of two sorted,
// duplicate-free slices via an ordered merge walk.
func setIntersect(a, b []uint32) []uint32 {
	result := make([]uint32, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			result = append(result, a[i])
			i++
			j++
		}
	}
	return result
}

// setUnion returns the sorted union of two sorted, duplicate-free
// slices via an ordered merge walk.
func setUnion(a, b []uint32) []uint32 {
	result := make([]uint32, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			result = append(result, a[i])
			i++
		case a[i] > b[j]:
			result = append(result, b[j])
			j++
		default:
			result = append(result, a[i])
			i++
			j++
		}
	}
	result = append(result, a[i:]...)
	result = append(result, b[j:]...)
	return result
}

// setDifference returns the sorted a-minus-b via an ordered merge walk.
func setDifference(a, b []uint32) []uint32 {
	result := make([]uint32, 0, len(a))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			result = append(result, a[i])
			i++
		case a[i] > b[j]:
			j++
		default:
			i++
			j++
		}
	}
	result = append(result, a[i:]...)
	return result
}
