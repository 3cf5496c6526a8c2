// SPDX-License-Identifier: MIT

package tour

import (
	"fmt"
	"strings"
)

// Tour is a visiting order over cities 0..n-1.
type Tour []int

// Identity returns the tour 0, 1, …, n-1.
//
// Complexity: O(n).
func Identity(n int) Tour {
	if n <= 0 {
		return Tour{}
	}
	t := make(Tour, n)

	var i int
	for i = 0; i < n; i++ {
		t[i] = i
	}

	return t
}

// Clone returns an independent copy of t. A nil tour clones to nil.
func (t Tour) Clone() Tour {
	if t == nil {
		return nil
	}
	cp := make(Tour, len(t))
	copy(cp, t)

	return cp
}

// Equal reports whether t and u visit the same cities in the same order.
func (t Tour) Equal(u Tour) bool {
	if len(t) != len(u) {
		return false
	}
	var i int
	for i = range t {
		if t[i] != u[i] {
			return false
		}
	}

	return true
}

// String renders the tour as "0→3→1→2".
func (t Tour) String() string {
	var sb strings.Builder
	var i int
	for i = range t {
		if i > 0 {
			sb.WriteString("→")
		}
		fmt.Fprintf(&sb, "%d", t[i])
	}

	return sb.String()
}

// Validate checks that t is a permutation of {0..n-1}.
// The returned error wraps ErrInvalidTour and names the first violation.
//
// Complexity: O(n) time, O(n) space for the marker slice.
func Validate(t Tour, n int) error {
	if n <= 0 || len(t) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidTour, len(t), n)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = t[i]
		if v < 0 || v >= n {
			return fmt.Errorf("%w: city %d at position %d out of range", ErrInvalidTour, v, i)
		}
		if seen[v] {
			return fmt.Errorf("%w: city %d repeated at position %d", ErrInvalidTour, v, i)
		}
		seen[v] = true
	}

	return nil
}
