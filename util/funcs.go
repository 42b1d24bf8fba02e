package util

import (
	"iter"
	"strings"
)

// All reports whether pred holds for every element of seq.
// It is vacuously true on an empty sequence.
func All[A any](seq iter.Seq[A], pred func(A) bool) bool {
	for v := range seq {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Any reports whether pred holds for at least one element of seq.
func Any[A any](seq iter.Seq[A], pred func(A) bool) bool {
	for v := range seq {
		if pred(v) {
			return true
		}
	}
	return false
}

// JoinFunc renders elems separated by sep, using show for each element.
func JoinFunc[A any](elems []A, sep string, show func(A) string) string {
	var sb strings.Builder
	for i, elem := range elems {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(show(elem))
	}
	return sb.String()
}
