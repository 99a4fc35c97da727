// Package fuzzy implements typo-tolerant matching for short catalog text.
package fuzzy

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Distance calculates the Levenshtein edit distance between two strings
// after normalization
func Distance(s1, s2 string) int {
	r1 := []rune(Normalize(s1))
	r2 := []rune(Normalize(s2))

	if len(r1) == 0 {
		return len(r2)
	}
	if len(r2) == 0 {
		return len(r1)
	}

	// Two rows are enough since each cell only looks one row back
	prev := make([]int, len(r2)+1)
	curr := make([]int, len(r2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(r1); i++ {
		curr[0] = i
		for j := 1; j <= len(r2); j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(r2)]
}

// Threshold is the edit budget allowed for a query of this length
func Threshold(query string) int {
	n := len([]rune(Normalize(query)))
	switch {
	case n <= 3:
		return 0
	case n <= 6:
		return 1
	default:
		return 2
	}
}

// Match reports whether query matches text as a substring, a word prefix or
// a word within the query's edit budget
func Match(query, text string) bool {
	query = Normalize(query)
	text = Normalize(text)
	if query == "" {
		return true
	}
	if strings.Contains(text, query) {
		return true
	}

	threshold := Threshold(query)
	for _, word := range strings.Fields(text) {
		if strings.HasPrefix(word, query) {
			return true
		}
		if Distance(query, word) <= threshold {
			return true
		}
	}
	return false
}

// Field is one searchable piece of text and how much a hit on it counts
type Field struct {
	Text   string
	Weight float64
}

// Score ranks how relevant the fields are to query. Zero means no match.
func Score(query string, fields ...Field) float64 {
	query = Normalize(query)
	if query == "" {
		return 0
	}
	threshold := Threshold(query)

	score := 0.0
	for _, f := range fields {
		text := Normalize(f.Text)
		if strings.Contains(text, query) {
			score += f.Weight
			if containsWord(text, query) {
				score += f.Weight / 2
			}
			continue
		}

		best := 0.0
		for _, word := range strings.Fields(text) {
			if strings.HasPrefix(word, query) && best < f.Weight*0.8 {
				best = f.Weight * 0.8
			}
			if d := Distance(query, word); d <= threshold {
				if s := f.Weight * (0.6 - 0.15*float64(d)); s > best {
					best = s
				}
			}
		}
		score += best
	}
	return score
}

// Normalize lowercases, strips diacritics and collapses whitespace
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if stripped, _, err := transform.String(t, s); err == nil {
		s = stripped
	}
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func containsWord(text, query string) bool {
	for _, word := range strings.Fields(text) {
		if word == query {
			return true
		}
	}
	return false
}
