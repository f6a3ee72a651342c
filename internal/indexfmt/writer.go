package indexfmt

import (
	"encoding/binary"
	"os"
	"sort"

	"rusearch/internal/apperr"
)

// Write serializes docs and the inverted index to path as a single
// index file: header, inverted region, forward region. Terms are
// written in sorted order and each posting list is sorted ascending,
// matching write_inverted_index's std::sort calls, so a Reader never
// needs to sort on load.
func Write(path string, docs []DocumentInfo, inverted map[string][]uint32) error {
	f, err := os.Create(path)
	if err != nil {
		return apperr.New(apperr.ErrIndexIO, "creating index file %s: %v", path, err)
	}
	defer f.Close()

	if _, err := f.Write(make([]byte, HeaderSize)); err != nil {
		return apperr.New(apperr.ErrIndexIO, "writing header placeholder: %v", err)
	}

	numTerms, err := writeInverted(f, inverted)
	if err != nil {
		return err
	}

	forwardOffset, err := f.Seek(0, os.SEEK_CUR)
	if err != nil {
		return apperr.New(apperr.ErrIndexIO, "locating forward offset: %v", err)
	}

	if err := writeForward(f, docs); err != nil {
		return err
	}

	header := Header{
		Magic:         Magic,
		VersionMajor:  VersionMajor,
		VersionMinor:  VersionMinor,
		NumDocuments:  uint32(len(docs)),
		NumTerms:      numTerms,
		ForwardOffset: uint64(forwardOffset),
	}

	if _, err := f.Seek(0, os.SEEK_SET); err != nil {
		return apperr.New(apperr.ErrIndexIO, "seeking to header: %v", err)
	}
	if _, err := f.Write(header.marshal()); err != nil {
		return apperr.New(apperr.ErrIndexIO, "writing header: %v", err)
	}

	return nil
}

func writeInverted(f *os.File, inverted map[string][]uint32) (uint32, error) {
	terms := make([]string, 0, len(inverted))
	for term := range inverted {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	if err := writeUint32(f, uint32(len(terms))); err != nil {
		return 0, err
	}

	for _, term := range terms {
		if len(term) > 255 {
			term = term[:255]
		}
		if err := writeUint8(f, uint8(len(term))); err != nil {
			return 0, err
		}
		if _, err := f.WriteString(term); err != nil {
			return 0, apperr.New(apperr.ErrIndexIO, "writing term %q: %v", term, err)
		}

		postings := append([]uint32(nil), inverted[term]...)
		sort.Slice(postings, func(i, j int) bool { return postings[i] < postings[j] })

		if err := writeUint32(f, uint32(len(postings))); err != nil {
			return 0, err
		}
		for _, docID := range postings {
			if err := writeUint32(f, docID); err != nil {
				return 0, err
			}
		}
	}

	return uint32(len(terms)), nil
}

func writeForward(f *os.File, docs []DocumentInfo) error {
	for _, doc := range docs {
		if err := writeUint32(f, doc.DocID); err != nil {
			return err
		}

		title := doc.Title
		if len(title) > 65535 {
			title = title[:65535]
		}
		if err := writeUint16(f, uint16(len(title))); err != nil {
			return err
		}
		if _, err := f.WriteString(title); err != nil {
			return apperr.New(apperr.ErrIndexIO, "writing title for doc %d: %v", doc.DocID, err)
		}

		url := doc.URL
		if len(url) > 65535 {
			url = url[:65535]
		}
		if err := writeUint16(f, uint16(len(url))); err != nil {
			return err
		}
		if _, err := f.WriteString(url); err != nil {
			return apperr.New(apperr.ErrIndexIO, "writing url for doc %d: %v", doc.DocID, err)
		}
	}
	return nil
}

func writeUint8(f *os.File, v uint8) error {
	_, err := f.Write([]byte{v})
	if err != nil {
		return apperr.New(apperr.ErrIndexIO, "writing uint8: %v", err)
	}
	return nil
}

func writeUint16(f *os.File, v uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	if _, err := f.Write(buf[:]); err != nil {
		return apperr.New(apperr.ErrIndexIO, "writing uint16: %v", err)
	}
	return nil
}

func writeUint32(f *os.File, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	if _, err := f.Write(buf[:]); err != nil {
		return apperr.New(apperr.ErrIndexIO, "writing uint32: %v", err)
	}
	return nil
}
