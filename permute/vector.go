package permute

import "github.com/newsniper-org/ysc2/consts"

// vectorBackend mirrors the lane-grouped layout the original's portable-
// SIMD back-end uses: the 16-word state is split into four 4-wide lanes
// (words 0-3, 4-7, 8-11, 12-15). g is applied lane-wise to the first two
// lanes and folded into the last two, exactly as softBackend does
// word-by-word — the lane grouping is purely an internal detail and
// never leaks into Backend's interface. Bit-identical to softBackend by
// construction; permute_test.go checks this on every variant.
type vectorBackend struct{}

func (vectorBackend) Permute(state *[consts.StateWords]uint64, rounds int) {
	var lane [4][4]uint64
	for l := 0; l < 4; l++ {
		copy(lane[l][:], state[l*4:l*4+4])
	}

	for r := 0; r < rounds; r++ {
		lane[0][0] ^= consts.RC[r]

		var g0, g1 [4]uint64
		for i := 0; i < 4; i++ {
			g0[i] = g(lane[0][i])
			g1[i] = g(lane[1][i])
		}
		for i := 0; i < 4; i++ {
			lane[2][i] ^= g0[i]
			lane[3][i] ^= g1[i]
		}
		for i := 0; i < 4; i++ {
			lane[0][i] ^= lane[2][i]
			lane[1][i] ^= lane[3][i]
		}

		var flat [consts.StateWords]uint64
		for l := 0; l < 4; l++ {
			copy(flat[l*4:l*4+4], lane[l][:])
		}
		var next [consts.StateWords]uint64
		for i := 0; i < consts.StateWords; i++ {
			next[i] = flat[consts.P[i]]
		}
		for l := 0; l < 4; l++ {
			copy(lane[l][:], next[l*4:l*4+4])
		}
	}

	for l := 0; l < 4; l++ {
		copy(state[l*4:l*4+4], lane[l][:])
	}
}
