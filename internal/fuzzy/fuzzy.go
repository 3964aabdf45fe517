// Package fuzzy provides the edit-distance matching behind go-spar's
// unknown-token suggestions.
package fuzzy

// Matcher finds near matches among candidate names.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher with the given maximum edit distance.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // don't suggest for very short inputs
	}
}

// FindBest returns the candidate closest to input within the maximum edit
// distance, or an empty string when nothing is close enough. Ties are broken
// by the longer common prefix, then by candidate order.
func (m *Matcher) FindBest(input string, candidates []string) string {
	if len(input) < m.minLength {
		return ""
	}

	best := ""
	bestDistance := m.maxDistance + 1
	bestPrefix := -1

	for _, candidate := range candidates {
		if candidate == input {
			continue // exact matches are not fuzzy
		}
		distance := m.distance(input, candidate)
		if distance > m.maxDistance {
			continue
		}
		prefix := commonPrefixLength(input, candidate)
		if distance < bestDistance || (distance == bestDistance && prefix > bestPrefix) {
			best = candidate
			bestDistance = distance
			bestPrefix = prefix
		}
	}

	return best
}

// distance computes the Levenshtein distance between a and b, returning
// maxDistance+1 early when the result is guaranteed to exceed the bound.
func (m *Matcher) distance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	// Two rolling rows instead of the full matrix.
	previous := make([]int, len(a)+1)
	current := make([]int, len(a)+1)
	for i := range previous {
		previous[i] = i
	}

	for i := 1; i <= len(b); i++ {
		current[0] = i
		minInRow := i

		for j := 1; j <= len(a); j++ {
			cost := 0
			if a[j-1] != b[i-1] {
				cost = 1
			}
			current[j] = minThree(
				current[j-1]+1,     // insertion
				previous[j]+1,      // deletion
				previous[j-1]+cost, // substitution
			)
			if current[j] < minInRow {
				minInRow = current[j]
			}
		}

		if minInRow > m.maxDistance {
			return m.maxDistance + 1
		}
		previous, current = current, previous
	}

	return previous[len(a)]
}

func commonPrefixLength(a, b string) int {
	limit := len(a)
	if len(b) < limit {
		limit = len(b)
	}
	for i := 0; i < limit; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return limit
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func minThree(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// FindBest is the convenience entry point used by the parser.
func FindBest(input string, candidates []string, maxDistance int) string {
	return NewMatcher(maxDistance).FindBest(input, candidates)
}
