// Package consts holds the fixed tables shared by every YSC2 back-end and
// variant: the round constants, the two rotation amounts of the non-linear
// layer, and the word permutation of the linear layer.
package consts

// RC holds the per-round constants injected into state word 0. A plain
// iota sequence is sufficient here; both permutation back-ends read the
// same table, so they stay bit-identical regardless of how "strong" the
// schedule is.
var RC = [20]uint64{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9,
	10, 11, 12, 13, 14, 15, 16, 17, 18, 19,
}

// ROT_A and ROT_B are the two rotation amounts used by the non-linear
// layer g(x) = x ^ (rotl(x, ROT_A) & rotl(x, ROT_B)). Both are coprime
// with 64 and distinct from each other.
const (
	ROT_A = 13
	ROT_B = 37
)

// P is the word permutation applied by the linear layer: word P[i] of
// the input becomes word i of the output. It is not a single cycle:
// words 0, 4, 8 and 12 stay in place, and the other twelve move in two
// 4-cycles (1 5 9 13), (3 15 11 7) and two 2-cycles (2 10), (6 14).
var P = [16]int{0, 5, 10, 15, 4, 9, 14, 3, 8, 13, 2, 7, 12, 1, 6, 11}

// RateBytes and CapacityBytes are the sponge/duplex parameters shared by
// every variant: 64 bytes of rate (8 words), 64 bytes of capacity (8
// words), for a total 1024-bit (16-word) state.
const (
	RateBytes     = 64
	CapacityBytes = 64
	StateWords    = 16
	StateBytes    = StateWords * 8

	// PadByte is the single byte used for 10*-style padding on every
	// absorb path (key, domain strings, nonce, AD, message). Some
	// sponge designs use 0x01; this one fixes 0x80 uniformly.
	PadByte = 0x80

	// TagBytes is the length of an AEAD authentication tag.
	TagBytes = 16
)
