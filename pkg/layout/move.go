package layout

import "slices"

// MoveElement moves the element at from to position to, keeping the relative
// order of every other element. It returns s unchanged and false when the
// indices are equal or either one is outside [0, len(s)).
//
// The returned slice is freshly allocated; s is never modified.
func MoveElement[T any](s []T, from, to int) ([]T, bool) {
	if from == to || from < 0 || to < 0 || from >= len(s) || to >= len(s) {
		return s, false
	}

	moved := s[from]
	out := make([]T, 0, len(s))
	out = append(out, s[:from]...)
	out = append(out, s[from+1:]...)
	return slices.Insert(out, to, moved), true
}
