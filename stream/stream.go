// Package stream implements the YSC2 counter-mode keystream generator.
// A StreamCore is created from a key and nonce, holds an immutable
// post-init state, and produces 128-byte keystream blocks by tweaking
// word 0 with a 64-bit counter and running the permutation — the
// initial state itself is never mutated, which makes seeking O(1).
package stream

import (
	"encoding/binary"

	"github.com/newsniper-org/ysc2/consts"
	"github.com/newsniper-org/ysc2/variant"
	"github.com/newsniper-org/ysc2/ysc2core"
)

// BlockBytes is the length, in bytes, of one keystream block.
const BlockBytes = consts.StateBytes // 128

// StreamCore is a counter-mode stream cipher instance. It is not safe
// for concurrent use without external synchronization.
type StreamCore struct {
	initial ysc2core.State
	variant variant.Variant
	counter uint64
}

// New creates a StreamCore from a key and nonce sized for v.
func New(v variant.Variant, key, nonce []byte) (*StreamCore, error) {
	initial, err := ysc2core.Init(v, key, nonce)
	if err != nil {
		return nil, err
	}
	return &StreamCore{initial: initial, variant: v}, nil
}

// KeystreamBlock deterministically derives the block at index i: it
// depends only on the immutable initial state and i, never on prior
// calls, which is what makes seeking consistent.
func (c *StreamCore) KeystreamBlock(i uint64) [BlockBytes]byte {
	tmp := c.initial
	tmp[0] ^= i
	tmp.Permute(c.variant)

	var out [BlockBytes]byte
	for w := 0; w < consts.StateWords; w++ {
		binary.LittleEndian.PutUint64(out[w*8:], tmp[w])
	}
	return out
}

// ApplyKeystream XORs the keystream onto buf in place, advancing the
// block counter by ceil(len(buf)/BlockBytes). It handles a partial tail
// block by discarding the unused keystream bytes.
func (c *StreamCore) ApplyKeystream(buf []byte) {
	for len(buf) > 0 {
		c.counter++
		block := c.KeystreamBlock(c.counter)
		n := len(buf)
		if n > BlockBytes {
			n = BlockBytes
		}
		for i := 0; i < n; i++ {
			buf[i] ^= block[i]
		}
		buf = buf[n:]
	}
}

// Seek sets the block counter so that the next KeystreamBlock-driven
// ApplyKeystream call produces the block a fresh cipher would produce
// after n prior block requests.
func (c *StreamCore) Seek(n uint64) {
	c.counter = n
}

// Position reports the current block counter.
func (c *StreamCore) Position() uint64 {
	return c.counter
}

// Erase zeros the cipher's backing state. Call this when the instance is
// no longer needed.
func (c *StreamCore) Erase() {
	c.initial.Erase()
	c.counter = 0
}
