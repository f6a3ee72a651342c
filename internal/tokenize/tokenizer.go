package tokenize

// Config controls how Tokenize splits and filters text. The indexer uses
// IndexConfig, which keeps digits and drops nothing (stopwords still
// matter for postings); the general purpose Default drops stopwords and
// ignores digits. The query parser does not use a Config: it scans terms
// with IsLetterOrDigit and folds them with Normalize.
type Config struct {
	MinLength       int
	Lowercase       bool
	RemoveStopwords bool
	IncludeDigits   bool
}

// Default is the general-purpose tokenizer configuration: two-byte
// minimum, lowercased, stopwords removed, digits ignored.
func Default() Config {
	return Config{
		MinLength:       2,
		Lowercase:       true,
		RemoveStopwords: true,
		IncludeDigits:   false,
	}
}

// IndexConfig is the tokenizer configuration the indexer uses to build
// postings: digits count as term characters (so "1812" is indexable) and
// stopwords are kept, since a boolean query may legitimately search for
// one ("to be or not to be").
func IndexConfig() Config {
	return Config{
		MinLength:       2,
		Lowercase:       true,
		RemoveStopwords: false,
		IncludeDigits:   true,
	}
}

// Tokenize splits text into terms according to cfg. A term is a maximal
// run of letter (or, if cfg.IncludeDigits, digit) characters as
// recognized by IsLetterOrDigit. Terms shorter than cfg.MinLength bytes
// are dropped, matching original_source's byte-length comparison rather
// than a rune count. If cfg.Lowercase, each term is folded with Fold
// before the length and stopword checks so folding never changes a
// term's byte length in a way the original wouldn't already reflect.
func Tokenize(text string, cfg Config) []string {
	var tokens []string

	start := -1
	for i := 0; i < len(text); {
		width, ok := IsLetterOrDigit(text, i, cfg.IncludeDigits)
		if ok {
			if start == -1 {
				start = i
			}
			i += width
			continue
		}

		if start != -1 {
			tokens = append(tokens, emit(text[start:i], cfg))
			start = -1
		}
		i += width
	}
	if start != -1 {
		tokens = append(tokens, emit(text[start:], cfg))
	}

	out := tokens[:0]
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if len(tok) < cfg.MinLength {
			continue
		}
		if cfg.RemoveStopwords && isStopWord(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func emit(raw string, cfg Config) string {
	if cfg.Lowercase {
		return Fold(raw)
	}
	return raw
}

// Normalize folds a single query term the same way Tokenize folds terms
// pulled out of document text, so a lookup against the postings list
// compares like with like regardless of the case the user typed.
func Normalize(term string) string {
	return Fold(term)
}
