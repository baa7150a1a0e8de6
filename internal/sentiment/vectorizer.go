package sentiment

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

var tokenPattern = regexp.MustCompile(`\b\w\w+\b`)

// Vectorizer turns raw text into an L2-normalized TF-IDF feature vector over a
// fixed vocabulary of unigrams and bigrams.
type Vectorizer struct {
	Vocabulary  map[string]int // term -> feature index
	IDF         []float64      // per feature index
	MaxFeatures int
}

// tokenize lowercases the text and extracts word tokens of length >= 2,
// then appends adjacent-pair bigrams.
func tokenize(text string) []string {
	words := tokenPattern.FindAllString(strings.ToLower(text), -1)
	terms := make([]string, 0, len(words)*2)
	terms = append(terms, words...)
	for i := 0; i+1 < len(words); i++ {
		terms = append(terms, words[i]+" "+words[i+1])
	}
	return terms
}

// Transform maps text to a sparse TF-IDF vector, L2-normalized. Terms outside
// the vocabulary are ignored; an all-unknown text yields the zero vector.
func (v *Vectorizer) Transform(text string) map[int]float64 {
	counts := make(map[int]float64)
	for _, term := range tokenize(text) {
		if idx, ok := v.Vocabulary[term]; ok {
			counts[idx]++
		}
	}

	var norm float64
	for idx, tf := range counts {
		w := tf * v.IDF[idx]
		counts[idx] = w
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range counts {
			counts[idx] /= norm
		}
	}
	return counts
}

// fitVectorizer builds the vocabulary and smoothed IDF weights from a corpus,
// keeping at most maxFeatures terms by document frequency.
func fitVectorizer(texts []string, maxFeatures int) *Vectorizer {
	df := make(map[string]int)
	for _, text := range texts {
		seen := make(map[string]bool)
		for _, term := range tokenize(text) {
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	// Highest document frequency first; alphabetical tie-break keeps the
	// vocabulary deterministic across runs.
	sort.Slice(terms, func(i, j int) bool {
		if df[terms[i]] != df[terms[j]] {
			return df[terms[i]] > df[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if maxFeatures > 0 && len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}
	sort.Strings(terms)

	n := float64(len(texts))
	vocab := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	for i, term := range terms {
		vocab[term] = i
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	return &Vectorizer{Vocabulary: vocab, IDF: idf, MaxFeatures: maxFeatures}
}
