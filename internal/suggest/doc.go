// Package suggest finds the closest known name to a misspelled one, for
// "did you mean" hints in error messages.
//
// Names are compared after normalization (case folded, separators removed)
// using Levenshtein edit distance over runes.
package suggest
