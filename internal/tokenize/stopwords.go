package tokenize

// stopWords is the fixed set of common Russian and English function
// words dropped when a Config has RemoveStopwords set, reproduced from
// original_source/src/tokenizer.cpp's init_stop_words verbatim.
var stopWords = buildStopWords([]string{
	"и", "в", "во", "не", "что", "он", "на", "я", "с", "со", "как", "а", "то", "все",
	"она", "так", "его", "но", "да", "ты", "к", "у", "же", "вы", "за", "бы", "по",
	"только", "её", "мне", "было", "вот", "от", "меня", "ещё", "нет", "о", "из", "ему",
	"для", "при", "без", "до", "под", "над", "об", "про", "это", "этот", "эта", "эти",
	"был", "была", "были", "быть", "есть", "или", "также", "году", "года", "лет",
	"который", "которая", "которое", "которые", "где", "когда", "если", "чем",
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with",
	"is", "was", "are", "were", "been", "be", "have", "has", "had", "it", "its",
})

func buildStopWords(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

func isStopWord(term string) bool {
	_, ok := stopWords[term]
	return ok
}
