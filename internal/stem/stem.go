package stem

import "github.com/kljensen/snowball/english"

// Stem reduces term to its stem, dispatching by script: a term whose
// first byte is a two-byte Cyrillic lead byte (0xD0 or 0xD1) goes
// through the Russian stemmer above; everything else goes through
// snowball's English stemmer. stemStopWords is false so a literal
// stopword survives stemming unchanged, matching how the tokenizer's
// stopword filter is meant to be the only thing that removes them.
func Stem(term string) string {
	if term == "" {
		return term
	}

	switch term[0] {
	case 0xD0, 0xD1:
		return russianStem(term)
	default:
		return english.Stem(term, false)
	}
}
