// Package stem reduces tokens to a normalized stem before they enter the
// postings list, so that "программист", "программиста", and
// "программистом" collapse to one indexed term. Russian tokens go
// through a hand-ported Porter/Snowball-style stemmer grounded on
// original_source/src/stemmer.cpp; ASCII tokens go through
// github.com/kljensen/snowball's English stemmer.
package stem

import "strings"

// Word-ending groups for the Russian stemmer, reproduced verbatim from
// RussianStemmer's static member initializers. perfectiveGerund1 entries
// are tried with a leading "а"/"я" prepended (step1 requires that vowel
// immediately before the suffix); the rest are matched directly.
var (
	perfectiveGerund1 = []string{"вшись", "вши", "в"}
	perfectiveGerund2 = []string{"ившись", "ывшись", "ивши", "ывши", "ив", "ыв"}

	adjective = []string{
		"ими", "ыми", "его", "ого", "ему", "ому", "ее", "ие", "ые", "ое",
		"ей", "ий", "ый", "ой", "ем", "им", "ым", "ом", "их", "ых",
		"ую", "юю", "ая", "яя", "ою", "ею",
	}

	// participle1 is part of the original ending table but, as in
	// original_source, step1 only ever consults participle2.
	participle1 = []string{"ем", "нн", "вш", "ющ", "щ"}
	participle2 = []string{"ивш", "ывш", "ующ"}

	reflexive = []string{"ся", "сь"}

	verb1 = []string{
		"ете", "йте", "ешь", "нно", "ла", "на", "ли", "ем", "ло",
		"но", "ет", "ют", "ны", "ть", "й", "л", "н",
	}
	verb2 = []string{
		"ейте", "уйте", "ила", "ыла", "ена", "ите", "или", "ыли", "ило",
		"ыло", "ено", "ует", "уют", "ены", "ить", "ыть", "ишь",
		"ую", "ей", "уй", "ил", "ыл", "им", "ым", "ен", "ят", "ит", "ыт",
		"ую", "ю",
	}

	noun = []string{
		"иями", "ями", "ами", "ией", "иям", "ием", "иях", "ев", "ов",
		"ие", "ье", "е|", "ьи", "ей", "ой", "ий", "ям", "ем", "ам",
		"ом", "ах", "ях", "ию", "ью", "ия", "ья", "и", "ы", "ь",
		"ю", "у", "о", "а", "е", "й",
	}

	superlative  = []string{"ейше", "ейш"}
	derivational = []string{"ость", "ост"}
)

// vowels lists the Cyrillic vowels used to locate the RV/R1/R2 regions.
const vowels = "аеиоуыэюяё"

func isVowel(r rune) bool {
	return strings.ContainsRune(vowels, r)
}

func endsWith(word, suffix string) bool {
	return len(suffix) <= len(word) && word[len(word)-len(suffix):] == suffix
}

func removeSuffix(word, suffix string) string {
	if endsWith(word, suffix) {
		return word[:len(word)-len(suffix)]
	}
	return word
}

// regions holds the RV/R1/R2 boundaries used by the Russian stemming
// steps, expressed as byte offsets into the original word.
type regions struct {
	rv, r1, r2 int
}

// findRegions locates RV (first position after the first vowel), R1
// (first position after the first consonant that follows a vowel), and
// R2 (R1's rule applied starting at R1), matching find_regions. Runs
// over runes rather than a fixed 2-bytes-per-character assumption, since
// Go strings are already valid UTF-8 and rune iteration is exact where
// the original's "each Cyrillic char is 2 bytes" shortcut was only an
// approximation.
func findRegions(word string) regions {
	var reg regions
	runes := []rune(word)

	foundVowel := false
	for i, r := range runes {
		if isVowel(r) {
			if reg.rv == 0 {
				reg.rv = i + 1
			}
			foundVowel = true
		} else if foundVowel && reg.r1 == 0 {
			reg.r1 = i + 1
			break
		}
	}

	foundVowel = false
	startIdx := reg.r1
	if startIdx > len(runes) {
		startIdx = len(runes)
	}
	for i := startIdx; i < len(runes); i++ {
		if isVowel(runes[i]) {
			foundVowel = true
		} else if foundVowel {
			reg.r2 = i + 1
			break
		}
	}

	reg.rv = runeOffsetToByteOffset(runes, reg.rv)
	reg.r1 = runeOffsetToByteOffset(runes, reg.r1)
	reg.r2 = runeOffsetToByteOffset(runes, reg.r2)
	return reg
}

func runeOffsetToByteOffset(runes []rune, n int) int {
	if n > len(runes) {
		n = len(runes)
	}
	return len(string(runes[:n]))
}

func step1(word string, reg regions) string {
	result := word

	for _, suffix := range perfectiveGerund2 {
		if endsWith(result, suffix) && len(result)-len(suffix) >= reg.rv {
			return removeSuffix(result, suffix)
		}
	}

	for _, suffix := range perfectiveGerund1 {
		test1 := "а" + suffix
		test2 := "я" + suffix
		if endsWith(result, test1) && len(result)-len(test1) >= reg.rv {
			return removeSuffix(result, suffix)
		}
		if endsWith(result, test2) && len(result)-len(test2) >= reg.rv {
			return removeSuffix(result, suffix)
		}
	}

	for _, suffix := range reflexive {
		if endsWith(result, suffix) && len(result)-len(suffix) >= reg.rv {
			result = removeSuffix(result, suffix)
			break
		}
	}

	foundAdj := false
	for _, suffix := range adjective {
		if endsWith(result, suffix) && len(result)-len(suffix) >= reg.rv {
			result = removeSuffix(result, suffix)
			foundAdj = true

			for _, pSuffix := range participle2 {
				if endsWith(result, pSuffix) {
					result = removeSuffix(result, pSuffix)
					break
				}
			}
			break
		}
	}

	if !foundAdj {
		found := false
		for _, suffix := range verb2 {
			if endsWith(result, suffix) && len(result)-len(suffix) >= reg.rv {
				result = removeSuffix(result, suffix)
				found = true
				break
			}
		}

		if !found {
			for _, suffix := range verb1 {
				test1 := "а" + suffix
				test2 := "я" + suffix
				if (endsWith(result, test1) || endsWith(result, test2)) &&
					len(result)-len(suffix)-2 >= reg.rv {
					result = removeSuffix(result, suffix)
					found = true
					break
				}
			}
		}

		if !found {
			for _, suffix := range noun {
				if endsWith(result, suffix) && len(result)-len(suffix) >= reg.rv {
					result = removeSuffix(result, suffix)
					break
				}
			}
		}
	}

	return result
}

func step2(word string, reg regions) string {
	if endsWith(word, "и") && len(word)-2 >= reg.rv {
		return removeSuffix(word, "и")
	}
	return word
}

func step3(word string, reg regions) string {
	result := word
	for _, suffix := range derivational {
		if endsWith(result, suffix) && len(result)-len(suffix) >= reg.r2 {
			result = removeSuffix(result, suffix)
			break
		}
	}
	return result
}

func step4(word string, reg regions) string {
	result := word

	for _, suffix := range superlative {
		if endsWith(result, suffix) && len(result)-len(suffix) >= reg.rv {
			result = removeSuffix(result, suffix)
			break
		}
	}

	if endsWith(result, "нн") && len(result)-2 >= reg.rv {
		result = removeSuffix(result, "н")
	} else if endsWith(result, "ь") && len(result)-2 >= reg.rv {
		result = removeSuffix(result, "ь")
	}

	return result
}

// russianStem reduces a lowercased Russian word to its stem. Words
// shorter than four bytes (fewer than two Cyrillic characters) are
// returned unchanged, matching the original's length guard.
func russianStem(word string) string {
	if len(word) < 4 {
		return word
	}

	reg := findRegions(word)

	result := word
	result = step1(result, reg)
	result = step2(result, reg)
	result = step3(result, reg)
	result = step4(result, reg)

	return result
}
