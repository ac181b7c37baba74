package common

// Duplicates returns the values that occur more than once in s, in order of
// their second occurrence.
func Duplicates[S ~[]E, E comparable](s S) []E {
	seen := make(map[E]int, len(s))

	var dups []E

	for _, v := range s {
		seen[v]++
		if seen[v] == 2 {
			dups = append(dups, v)
		}
	}

	return dups
}

// Map applies fn to each element of s.
func Map[S ~[]E, E, R any](s S, fn func(E) R) []R {
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}

	return out
}
