package source

import "context"

// SliceSource is an in-memory DocumentSource used by tests in place of
// a real MongoDB collection.
type SliceSource struct {
	docs []Document
}

// NewSliceSource wraps docs as a DocumentSource.
func NewSliceSource(docs []Document) *SliceSource {
	return &SliceSource{docs: append([]Document(nil), docs...)}
}

func (s *SliceSource) Count(ctx context.Context) (int, error) {
	return len(s.docs), nil
}

func (s *SliceSource) Fetch(ctx context.Context, limit int, fn func(Document) error) error {
	n := len(s.docs)
	if limit > 0 && limit < n {
		n = limit
	}
	for i := 0; i < n; i++ {
		if err := fn(s.docs[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *SliceSource) Insert(ctx context.Context, doc Document) error {
	s.docs = append(s.docs, doc)
	return nil
}

func (s *SliceSource) Close(ctx context.Context) error {
	return nil
}
