package topicquality

// wordPair keys a co-occurrence count; A and B are lexicographically ordered.
type wordPair struct {
	A, B string
}

func makePair(a, b string) wordPair {
	if b < a {
		a, b = b, a
	}
	return wordPair{A: a, B: b}
}

// WindowCounts holds occurrence and co-occurrence counts over sliding windows
// of a tokenized corpus, restricted to a relevant word set. A word counts at
// most once per window. Documents shorter than the window contribute a single
// window covering the whole document.
type WindowCounts struct {
	Window int
	// Total is the number of windows observed across the corpus.
	Total float64

	occurrence   map[string]float64
	cooccurrence map[wordPair]float64
}

// CountWindows slides a fixed window over every document and tallies, for each
// relevant word and word pair, the number of windows containing it. The result
// is read-only afterwards and safe for concurrent scoring.
func CountWindows(corpus [][]string, relevant map[string]struct{}, window int) *WindowCounts {
	wc := &WindowCounts{
		Window:       window,
		occurrence:   make(map[string]float64, len(relevant)),
		cooccurrence: make(map[wordPair]float64),
	}

	present := make(map[string]struct{}, len(relevant))
	for _, doc := range corpus {
		steps := len(doc) - window + 1
		if steps < 1 {
			steps = 1
		}
		for start := 0; start < steps; start++ {
			end := start + window
			if end > len(doc) {
				end = len(doc)
			}

			clear(present)
			for _, token := range doc[start:end] {
				if _, ok := relevant[token]; ok {
					present[token] = struct{}{}
				}
			}

			wc.Total++
			for a := range present {
				wc.occurrence[a]++
				for b := range present {
					if a < b {
						wc.cooccurrence[wordPair{A: a, B: b}]++
					}
				}
			}
		}
	}
	return wc
}

// P returns the window probability of a single word.
func (wc *WindowCounts) P(word string) float64 {
	if wc.Total == 0 {
		return 0
	}
	return wc.occurrence[word] / wc.Total
}

// PJoint returns the window probability of two words co-occurring. A word
// always co-occurs with itself.
func (wc *WindowCounts) PJoint(a, b string) float64 {
	if wc.Total == 0 {
		return 0
	}
	if a == b {
		return wc.occurrence[a] / wc.Total
	}
	return wc.cooccurrence[makePair(a, b)] / wc.Total
}

// Seen reports whether the word appeared in at least one window.
func (wc *WindowCounts) Seen(word string) bool {
	return wc.occurrence[word] > 0
}
