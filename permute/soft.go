package permute

import "github.com/newsniper-org/ysc2/consts"

// softBackend is the portable scalar implementation of P. It has no
// platform requirements and is always available as a fallback.
type softBackend struct{}

// Permute runs the three-layer round structure: round-constant
// injection, the Lai-Massey-style g coupling between the two state
// halves, and the fixed word permutation.
func (softBackend) Permute(state *[consts.StateWords]uint64, rounds int) {
	for r := 0; r < rounds; r++ {
		state[0] ^= consts.RC[r]

		var t [8]uint64
		for i := 0; i < 8; i++ {
			t[i] = g(state[i])
		}
		for i := 0; i < 8; i++ {
			state[i+8] ^= t[i]
		}
		for i := 0; i < 8; i++ {
			state[i] ^= state[i+8]
		}

		var next [consts.StateWords]uint64
		for i := 0; i < consts.StateWords; i++ {
			next[i] = state[consts.P[i]]
		}
		*state = next
	}
}
