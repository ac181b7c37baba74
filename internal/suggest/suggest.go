package suggest

// MinSimilarity is the lowest Similarity score Closest accepts.
const MinSimilarity = 0.6

// Closest returns the candidate most similar to name, if any scores at least
// MinSimilarity. Ties go to the earliest candidate.
func Closest(name string, candidates []string) (string, bool) {
	best, bestScore := "", 0.0

	for _, c := range candidates {
		if c == name {
			continue
		}

		if score := Similarity(name, c); score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < MinSimilarity {
		return "", false
	}

	return best, true
}

// Hint formats a " (did you mean X?)" suffix, or "" when nothing is close.
func Hint(name string, candidates []string) string {
	best, ok := Closest(name, candidates)
	if !ok {
		return ""
	}

	return " (did you mean " + best + "?)"
}
