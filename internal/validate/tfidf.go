package validate

import (
	"math"
	"strings"
	"unicode"
)

var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"but": {}, "by": {}, "for": {}, "from": {}, "has": {}, "have": {},
	"in": {}, "is": {}, "it": {}, "its": {}, "of": {}, "on": {}, "or": {},
	"that": {}, "the": {}, "this": {}, "to": {}, "was": {}, "were": {},
	"which": {}, "will": {}, "with": {},
}

// tokenize lowercases text and splits on non-alphanumeric runes, dropping
// stopwords.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := fields[:0]
	for _, f := range fields {
		if _, skip := stopwords[f]; !skip {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// vectorize represents each text as a term-frequency/inverse-document-
// frequency vector over the shared vocabulary of the given texts.
func vectorize(texts []string) [][]float64 {
	docs := make([][]string, len(texts))
	vocab := make(map[string]int)
	docFreq := make(map[string]int)

	for i, text := range texts {
		docs[i] = tokenize(text)
		seen := make(map[string]struct{})
		for _, tok := range docs[i] {
			if _, ok := vocab[tok]; !ok {
				vocab[tok] = len(vocab)
			}
			if _, dup := seen[tok]; !dup {
				seen[tok] = struct{}{}
				docFreq[tok]++
			}
		}
	}

	n := float64(len(texts))
	vectors := make([][]float64, len(texts))
	for i, doc := range docs {
		vec := make([]float64, len(vocab))
		if len(doc) == 0 {
			vectors[i] = vec
			continue
		}
		counts := make(map[string]int)
		for _, tok := range doc {
			counts[tok]++
		}
		for tok, count := range counts {
			tf := float64(count) / float64(len(doc))
			idf := math.Log(n/float64(docFreq[tok])) + 1
			vec[vocab[tok]] = tf * idf
		}
		vectors[i] = vec
	}

	return vectors
}
