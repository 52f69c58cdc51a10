package ui

import (
	"sort"
	"strings"
)

// MaxDistance is the largest edit distance FindSimilar accepts
const MaxDistance = 3

// MaxSuggestions caps the number of names FindSimilar returns
const MaxSuggestions = 3

// FindSimilar returns up to MaxSuggestions candidates within MaxDistance
// edits of target, closest first. Matching ignores case.
//
//	FindSimilar("Colr", []string{"Color", "Weekday"}) // ["Color"]
func FindSimilar(target string, candidates []string) []string {
	type match struct {
		name string
		dist int
	}

	lower := strings.ToLower(target)
	var matches []match
	for _, c := range candidates {
		if d := LevenshteinDistance(lower, strings.ToLower(c)); d <= MaxDistance {
			matches = append(matches, match{c, d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].dist < matches[j].dist
	})

	out := make([]string, 0, MaxSuggestions)
	for i := 0; i < len(matches) && i < MaxSuggestions; i++ {
		out = append(out, matches[i].name)
	}
	return out
}

// LevenshteinDistance returns the number of single-rune insertions,
// deletions and substitutions that turn a into b.
func LevenshteinDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}
