package posting

import (
	"regexp"
	"sort"
	"strings"
)

// maxTableSize caps how many keywords a derived table keeps.
const maxTableSize = 20

var tokenRe = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+#.-]{1,}`)

// commonWords are excluded from derived keyword tables; they carry no
// role-specific signal in job posting text.
var commonWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "you": true,
	"our": true, "are": true, "will": true, "have": true, "this": true,
	"that": true, "your": true, "work": true, "team": true, "role": true,
	"job": true, "experience": true, "years": true, "skills": true,
	"ability": true, "strong": true, "including": true, "required": true,
	"preferred": true, "about": true, "company": true, "benefits": true,
	"apply": true, "position": true, "candidates": true, "more": true,
	"from": true, "all": true, "who": true, "what": true, "can": true,
	"not": true, "their": true, "they": true, "across": true, "within": true,
	"other": true, "well": true, "new": true, "out": true, "into": true,
}

// BuildKeywordTable derives a weighted keyword table from one or more job
// posting texts. Term weight is proportional to document frequency, scaled
// so the most frequent term weighs 1.0. The table feeds the
// technical-accuracy heuristic's keyword matching.
func BuildKeywordTable(texts []string) map[string]float64 {
	counts := make(map[string]int)
	for _, text := range texts {
		for _, token := range tokenRe.FindAllString(strings.ToLower(text), -1) {
			if len(token) < 3 || commonWords[token] {
				continue
			}
			counts[token]++
		}
	}

	type entry struct {
		term  string
		count int
	}
	entries := make([]entry, 0, len(counts))
	for term, count := range counts {
		if count < 2 {
			continue
		}
		entries = append(entries, entry{term, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].term < entries[j].term
	})

	if len(entries) > maxTableSize {
		entries = entries[:maxTableSize]
	}
	if len(entries) == 0 {
		return nil
	}

	maxCount := float64(entries[0].count)
	table := make(map[string]float64, len(entries))
	for _, e := range entries {
		table[e.term] = float64(e.count) / maxCount
	}
	return table
}
