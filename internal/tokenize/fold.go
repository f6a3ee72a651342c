// Package tokenize implements byte-level UTF-8 case folding and word
// splitting for the mixed Cyrillic/Latin corpus, grounded on
// original_source/src/tokenizer.cpp's to_lower and tokenize. Only ASCII
// and Russian Cyrillic are in scope (spec §9's Unicode scope note); any
// other multi-byte sequence passes through unfolded and untokenized.
package tokenize

import "strings"

// Fold lowercases s using the same byte-level rules the index and query
// pipelines share: ASCII letters fold normally; two-byte UTF-8 sequences
// starting 0xD0 with a second byte in 0x90..0x9F (Cyrillic А..П) get
// their second byte shifted up by 0x20 (а..п); 0xD0 with a second byte
// in 0xA0..0xAF (Р..Я) becomes 0xD1 with the second byte shifted down by
// 0x20 (р..я); the pair 0xD0 0x81 (Ё) maps to the canonical 0xD1 0x91
// (ё). Every other byte passes through unchanged.
func Fold(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c < 0x80:
			out.WriteByte(toASCIILower(c))
		case c == 0xD0 && i+1 < len(s):
			c2 := s[i+1]
			switch {
			case c2 >= 0x90 && c2 <= 0x9F: // А..П -> а..п
				out.WriteByte(0xD0)
				out.WriteByte(c2 + 0x20)
			case c2 >= 0xA0 && c2 <= 0xAF: // Р..Я -> р..я
				out.WriteByte(0xD1)
				out.WriteByte(c2 - 0x20)
			case c2 == 0x81: // Ё -> ё
				out.WriteByte(0xD1)
				out.WriteByte(0x91)
			default:
				out.WriteByte(c)
				out.WriteByte(c2)
			}
			i++
		default:
			out.WriteByte(c)
		}
	}
	return out.String()
}

func toASCIILower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// isASCIILetter reports whether c is an ASCII letter.
func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isASCIIDigit reports whether c is an ASCII digit.
func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isCyrillicPair reports whether the two bytes starting at s[i] form a
// Cyrillic letter recognized by the word-splitting rules in spec §4.B:
// 0xD0 [0x90..0xBF], 0xD1 [0x80..0x8F], plus the Ё/ё pairs.
func isCyrillicPair(c1, c2 byte) bool {
	switch c1 {
	case 0xD0:
		return (c2 >= 0x90 && c2 <= 0xBF) || c2 == 0x81
	case 0xD1:
		return (c2 >= 0x80 && c2 <= 0x8F) || c2 == 0x91
	default:
		return false
	}
}

// IsLetterOrDigit reports whether the UTF-8 byte sequence starting at
// s[i] is a recognized letter (ASCII or Cyrillic) or, if includeDigits,
// an ASCII digit. It returns the byte width of the character (1 or 2)
// and whether it counted as a letter-or-digit; width is always >= 1 so
// callers can advance even on a non-match.
func IsLetterOrDigit(s string, i int, includeDigits bool) (width int, ok bool) {
	c := s[i]

	if c < 0x80 {
		if isASCIILetter(c) || (includeDigits && isASCIIDigit(c)) {
			return 1, true
		}
		return 1, false
	}

	if (c == 0xD0 || c == 0xD1) && i+1 < len(s) {
		if isCyrillicPair(c, s[i+1]) {
			return 2, true
		}
		return 2, false
	}

	return 1, false
}
