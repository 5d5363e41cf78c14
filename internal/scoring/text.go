// Package scoring converts a free-text interview response into an
// eight-dimension score breakdown plus derived feedback.
package scoring

import (
	"regexp"
	"strings"
)

var wordSplitRe = regexp.MustCompile(`[^a-zA-Z0-9']+`)

// tokenize splits text into lowercase word tokens.
func tokenize(text string) []string {
	fields := wordSplitRe.Split(strings.ToLower(text), -1)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			words = append(words, f)
		}
	}
	return words
}

// splitSentences splits text on terminal punctuation, dropping empties.
func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			sentences = append(sentences, strings.TrimSpace(p))
		}
	}
	return sentences
}

// stopwords excluded when comparing question terms against the response.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "as": true, "is": true, "are": true,
	"was": true, "were": true, "be": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "do": true, "does": true, "did": true,
	"will": true, "would": true, "could": true, "should": true, "can": true,
	"you": true, "your": true, "it": true, "its": true, "this": true, "that": true,
	"what": true, "when": true, "where": true, "which": true, "who": true,
	"how": true, "why": true, "tell": true, "me": true, "about": true,
	"describe": true, "explain": true, "us": true, "please": true,
}

// contentWords returns the non-stopword tokens of text, deduplicated.
func contentWords(text string) []string {
	seen := make(map[string]bool)
	var words []string
	for _, w := range tokenize(text) {
		if stopwords[w] || len(w) < 2 || seen[w] {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}
	return words
}

// countOccurrences counts non-overlapping occurrences of each phrase in text.
// Matching is case-insensitive substring matching.
func countOccurrences(text string, phrases []string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, p := range phrases {
		count += strings.Count(lower, p)
	}
	return count
}

// containsAny reports whether text contains any of the given phrases.
func containsAny(text string, phrases []string) bool {
	lower := strings.ToLower(text)
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
