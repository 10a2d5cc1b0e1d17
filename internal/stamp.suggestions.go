package internal

import (
	"sort"
	"strings"
)

// MaxSuggestions caps how many similar names SimilarNames returns.
const MaxSuggestions = 3

// SimilarNames returns up to limit candidates within edit distance of
// target, closest first. Comparison ignores case. Ties keep candidate order.
func SimilarNames(target string, candidates []string, limit int) []string {
	if target == "" || len(candidates) == 0 || limit <= 0 {
		return nil
	}

	threshold := max(len(target)/2, 2)
	lower := strings.ToLower(target)

	type scored struct {
		name string
		dist int
	}
	var near []scored
	for _, c := range candidates {
		if d := editDistance(lower, strings.ToLower(c)); d <= threshold {
			near = append(near, scored{name: c, dist: d})
		}
	}
	sort.SliceStable(near, func(i, j int) bool { return near[i].dist < near[j].dist })

	out := make([]string, 0, min(limit, len(near)))
	for i := 0; i < len(near) && i < limit; i++ {
		out = append(out, near[i].name)
	}
	return out
}

// editDistance is the Levenshtein distance over bytes, kept to two rows.
func editDistance(a, b string) int {
	if a == "" {
		return len(b)
	}
	if b == "" {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
