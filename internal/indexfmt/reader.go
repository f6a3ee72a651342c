package indexfmt

import (
	"encoding/binary"
	"io"
	"os"
	"sort"
	"sync"

	"rusearch/internal/apperr"
)

// Reader opens an index file and lazily loads its regions on first use.
// A Reader is safe for concurrent use by multiple goroutines: each
// region is populated at most once, guarded by its own sync.Once, the
// way a read-mostly server would share one Reader across request
// handlers.
type Reader struct {
	path   string
	header Header

	documentsOnce sync.Once
	documents     map[uint32]DocumentInfo

	invertedOnce sync.Once
	inverted     map[string][]uint32

	allDocIDsOnce sync.Once
	allDocIDs     []uint32
}

// Open reads and validates the header of the index file at path. It
// does not load the inverted or forward regions; those are loaded on
// first access.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.New(apperr.ErrIndexOpen, "opening index file %s: %v", path, err)
	}
	defer f.Close()

	buf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, apperr.New(apperr.ErrIndexOpen, "reading header of %s: %v", path, err)
	}

	header := unmarshalHeader(buf)
	if header.Magic != Magic {
		return nil, apperr.New(apperr.ErrIndexOpen, "%s is not a valid index file (bad magic)", path)
	}

	return &Reader{path: path, header: header}, nil
}

// Header returns the file's parsed header.
func (r *Reader) Header() Header {
	return r.header
}

func (r *Reader) loadDocuments() {
	r.documentsOnce.Do(func() {
		r.documents = make(map[uint32]DocumentInfo, r.header.NumDocuments)

		f, err := os.Open(r.path)
		if err != nil {
			return
		}
		defer f.Close()

		if _, err := f.Seek(int64(r.header.ForwardOffset), io.SeekStart); err != nil {
			return
		}

		for i := uint32(0); i < r.header.NumDocuments; i++ {
			doc, err := readDocument(f)
			if err != nil {
				return
			}
			r.documents[doc.DocID] = doc
		}
	})
}

func readDocument(f *os.File) (DocumentInfo, error) {
	var doc DocumentInfo

	docID, err := readUint32(f)
	if err != nil {
		return doc, err
	}
	doc.DocID = docID

	titleLen, err := readUint16(f)
	if err != nil {
		return doc, err
	}
	title, err := readString(f, int(titleLen))
	if err != nil {
		return doc, err
	}
	doc.Title = title

	urlLen, err := readUint16(f)
	if err != nil {
		return doc, err
	}
	url, err := readString(f, int(urlLen))
	if err != nil {
		return doc, err
	}
	doc.URL = url

	return doc, nil
}

func (r *Reader) loadInverted() {
	r.invertedOnce.Do(func() {
		r.inverted = make(map[string][]uint32, r.header.NumTerms)

		f, err := os.Open(r.path)
		if err != nil {
			return
		}
		defer f.Close()

		if _, err := f.Seek(HeaderSize, io.SeekStart); err != nil {
			return
		}

		numTerms, err := readUint32(f)
		if err != nil {
			return
		}

		for i := uint32(0); i < numTerms; i++ {
			termLen, err := readUint8(f)
			if err != nil {
				return
			}
			term, err := readString(f, int(termLen))
			if err != nil {
				return
			}

			df, err := readUint32(f)
			if err != nil {
				return
			}
			postings := make([]uint32, df)
			for j := uint32(0); j < df; j++ {
				docID, err := readUint32(f)
				if err != nil {
					return
				}
				postings[j] = docID
			}

			r.inverted[term] = postings
		}
	})
}

// GetPostingList returns the sorted document IDs containing term, or
// nil if the term isn't indexed.
func (r *Reader) GetPostingList(term string) []uint32 {
	r.loadInverted()
	return r.inverted[term]
}

// GetAllDocIDs returns every indexed document ID in ascending order,
// the universe a NOT query complements against.
func (r *Reader) GetAllDocIDs() []uint32 {
	r.allDocIDsOnce.Do(func() {
		r.loadDocuments()
		ids := make([]uint32, 0, len(r.documents))
		for id := range r.documents {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		r.allDocIDs = ids
	})
	return r.allDocIDs
}

// GetDocument returns the forward-index entry for docID.
func (r *Reader) GetDocument(docID uint32) (DocumentInfo, bool) {
	r.loadDocuments()
	doc, ok := r.documents[docID]
	return doc, ok
}

func readUint8(f *os.File) (uint8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(f, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func readUint16(f *os.File) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(f, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

func readUint32(f *os.File) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(f, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func readString(f *os.File, n int) (string, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(f, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
