// Package indexfmt reads and writes the on-disk inverted-index format:
// a fixed 32-byte header, a sorted inverted region, and a forward region
// mapping document IDs to title/URL. Ported from
// original_source/include/index_format.hpp and index_format.cpp, with
// one deliberate change: the physical layout here is header, then
// inverted region, then forward region, in that order — original_source
// actually writes the forward region before the inverted region (its
// reader only gets away with it because load_inverted_index calls
// load_documents first, which happens to leave the file position at the
// right spot). header.ForwardOffset always points at the forward
// region's first byte regardless of layout, so this package's readers
// don't depend on read order the way the original's does.
package indexfmt

import "encoding/binary"

// Magic identifies a valid index file; its hex digits spell the ASCII
// codes of "IDX1" read as a big-endian number, matching MAGIC_NUMBER.
// Written little-endian, the file's first four bytes are "1XDI".
const Magic uint32 = 0x49445831

// VersionMajor and VersionMinor are the format version this package
// reads and writes.
const (
	VersionMajor uint16 = 1
	VersionMinor uint16 = 0
)

// HeaderSize is the fixed byte size of Header on disk.
const HeaderSize = 32

// Header is the fixed-size preamble of an index file.
type Header struct {
	Magic         uint32
	VersionMajor  uint16
	VersionMinor  uint16
	Flags         uint32
	NumDocuments  uint32
	NumTerms      uint32
	Reserved      uint32
	ForwardOffset uint64
}

// DocumentInfo is one entry in the forward region: a document ID paired
// with the title and URL shown in search results.
type DocumentInfo struct {
	DocID uint32
	Title string
	URL   string
}

func (h Header) marshal() []byte {
	buf := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(buf[0:4], h.Magic)
	binary.LittleEndian.PutUint16(buf[4:6], h.VersionMajor)
	binary.LittleEndian.PutUint16(buf[6:8], h.VersionMinor)
	binary.LittleEndian.PutUint32(buf[8:12], h.Flags)
	binary.LittleEndian.PutUint32(buf[12:16], h.NumDocuments)
	binary.LittleEndian.PutUint32(buf[16:20], h.NumTerms)
	binary.LittleEndian.PutUint32(buf[20:24], h.Reserved)
	binary.LittleEndian.PutUint64(buf[24:32], h.ForwardOffset)
	return buf
}

func unmarshalHeader(buf []byte) Header {
	return Header{
		Magic:         binary.LittleEndian.Uint32(buf[0:4]),
		VersionMajor:  binary.LittleEndian.Uint16(buf[4:6]),
		VersionMinor:  binary.LittleEndian.Uint16(buf[6:8]),
		Flags:         binary.LittleEndian.Uint32(buf[8:12]),
		NumDocuments:  binary.LittleEndian.Uint32(buf[12:16]),
		NumTerms:      binary.LittleEndian.Uint32(buf[16:20]),
		Reserved:      binary.LittleEndian.Uint32(buf[20:24]),
		ForwardOffset: binary.LittleEndian.Uint64(buf[24:32]),
	}
}
