// SPDX-License-Identifier: MIT

package tour

import "math/rand"

// DefaultSeed is the stream used when callers pass seed == 0.
// The value is arbitrary but fixed so that zero-valued options reproduce.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func NewRand(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// Shuffle performs an in-place Fisher–Yates shuffle of t, so every ordering
// is equally likely. A nil rng falls back to the DefaultSeed stream.
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle(t Tour, rng *rand.Rand) {
	var n = len(t)
	if n <= 1 {
		return
	}

	var r = rng
	if r == nil {
		r = NewRand(0)
	}

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		t[i], t[j] = t[j], t[i]
	}
}

// Random returns a uniformly random permutation of {0..n-1}.
//
// Complexity: O(n).
func Random(n int, rng *rand.Rand) Tour {
	t := Identity(n)
	Shuffle(t, rng)

	return t
}
