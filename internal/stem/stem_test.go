package stem

import "testing"

func TestStemRussianAdjective(t *testing.T) {
	got := Stem("красивая")
	if got == "красивая" {
		t.Fatalf("Stem(%q) left the word unstemmed", "красивая")
	}
}

func TestStemRussianVerbForms(t *testing.T) {
	forms := []string{"делать", "делал", "делает", "делали"}
	stems := make(map[string]int)
	for _, f := range forms {
		stems[Stem(f)]++
	}
	if len(stems) > 2 {
		t.Fatalf("expected verb forms to collapse to at most 2 stems, got %d: %v", len(stems), stems)
	}
}

func TestStemRussianShortWordUnchanged(t *testing.T) {
	got := Stem("он")
	if got != "он" {
		t.Fatalf("Stem(%q) = %q; want unchanged (no suffix in any group matches)", "он", got)
	}
}

func TestStemEnglishWord(t *testing.T) {
	got := Stem("running")
	if got != "run" {
		t.Fatalf("Stem(%q) = %q; want %q", "running", got, "run")
	}
}

func TestStemEnglishStopwordSurvives(t *testing.T) {
	// stemStopWords is false, so a common function word must not be
	// mangled or dropped by the stemmer itself.
	got := Stem("to")
	if got != "to" {
		t.Fatalf("Stem(%q) = %q; want unchanged", "to", got)
	}
}

func TestStemNeverGrowsTheWord(t *testing.T) {
	words := []string{"москва", "программирование", "running", "красивыми", "университета"}
	for _, w := range words {
		stemmed := Stem(w)
		if len(stemmed) > len(w) {
			t.Fatalf("Stem(%q) = %q is longer than the input", w, stemmed)
		}
		// A second pass over an already-reduced word should never grow
		// it back either.
		if again := Stem(stemmed); len(again) > len(stemmed) {
			t.Fatalf("Stem(Stem(%q)) = %q is longer than %q", w, again, stemmed)
		}
	}
}

func TestStemEmptyString(t *testing.T) {
	if got := Stem(""); got != "" {
		t.Fatalf("Stem(\"\") = %q; want empty", got)
	}
}

func TestFindRegionsOnPureVowelWord(t *testing.T) {
	// Regression guard: a word with no consonant after the first vowel
	// must not panic when R1/R2 stay at their zero default.
	reg := findRegions("аиуеы")
	if reg.rv == 0 {
		t.Fatalf("expected rv to be set for a word starting with a vowel")
	}
}
