package topicquality

// Vocabulary indexes every distinct token observed in a corpus.
type Vocabulary struct {
	index map[string]int
	terms []string
}

// NewVocabulary builds the term index from a tokenized corpus.
func NewVocabulary(corpus [][]string) *Vocabulary {
	v := &Vocabulary{index: make(map[string]int)}
	for _, doc := range corpus {
		for _, token := range doc {
			if _, ok := v.index[token]; !ok {
				v.index[token] = len(v.terms)
				v.terms = append(v.terms, token)
			}
		}
	}
	return v
}

// Contains reports whether the term was observed in the corpus.
func (v *Vocabulary) Contains(term string) bool {
	_, ok := v.index[term]
	return ok
}

// Size returns the number of distinct terms.
func (v *Vocabulary) Size() int {
	return len(v.terms)
}
