// Package permute implements the YSC2 state permutation P: a deterministic
// bijection over 16 64-bit words, run for a variant-specified number of
// rounds. Two interchangeable back-ends exist — a portable scalar one and
// a 4-lane vectorized one — and must agree bit-for-bit on every input;
// permute_test.go enforces this as a hard correctness invariant.
//
// The permutation contains no data-dependent branches: it runs the same
// sequence of XORs, rotations, ANDs and word moves regardless of state
// content.
package permute

import "github.com/newsniper-org/ysc2/consts"

// Backend permutes a 16-word state in place for the given number of
// rounds. Implementations must be bit-identical to each other.
type Backend interface {
	Permute(state *[consts.StateWords]uint64, rounds int)
}

// Selected is the back-end chosen for this process: the vector back-end
// where the running CPU supports it, the scalar back-end otherwise. The
// choice is made once, at init, via runtime feature detection rather
// than a build-time switch.
var Selected Backend = selectBackend()

// g is the non-linear, word-local map used by both back-ends:
// g(x) = x ^ (rotl(x, ROT_A) & rotl(x, ROT_B)).
func g(x uint64) uint64 {
	a := (x << consts.ROT_A) | (x >> (64 - consts.ROT_A))
	b := (x << consts.ROT_B) | (x >> (64 - consts.ROT_B))
	return x ^ (a & b)
}
