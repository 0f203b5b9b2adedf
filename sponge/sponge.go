// Package sponge implements the YSC2 sponge construction. It serves
// three roles built on the same absorb/squeeze duplex — an
// extendable-output function (XOF), a fixed-length hash, and a keyed MAC.
package sponge

import (
	"crypto/subtle"

	"github.com/newsniper-org/ysc2/consts"
	"github.com/newsniper-org/ysc2/variant"
	"github.com/newsniper-org/ysc2/ysc2core"
)

// FixedDigestBytes is the output length of the fixed-length hash and the
// default MAC tag length: the first rate bytes of the first squeeze
// block.
const FixedDigestBytes = consts.RateBytes

// Core is a streaming sponge instance. It absorbs arbitrary-length input
// via Write and transitions, once, into the squeeze phase on the first
// call to FinalizeXOF or FinalizeFixed. Not safe for concurrent use.
type Core struct {
	v       variant.Variant
	state   ysc2core.State
	buf     [consts.RateBytes]byte
	bufLen  int
	started bool
}

// New creates an empty sponge for variant v (used for hashing and XOF).
func New(v variant.Variant) *Core {
	return &Core{v: v}
}

// NewKeyed creates a sponge that has already absorbed the variant's
// keyed-MAC domain string followed by key. The returned Core is then
// updated with message bytes exactly like an unkeyed instance.
func NewKeyed(v variant.Variant, key []byte) *Core {
	c := New(v)
	c.state.AbsorbSection(v, []byte(v.KeyedDomain))
	c.state.AbsorbSection(v, key)
	return c
}

// Write absorbs p into the sponge: input is consumed in rate-sized
// blocks, XORed into the state, followed by a permutation; a short
// final chunk is held until more input arrives or the sponge is
// finalized.
func (c *Core) Write(p []byte) (int, error) {
	written := len(p)
	for len(p) > 0 {
		n := copy(c.buf[c.bufLen:], p)
		c.bufLen += n
		p = p[n:]
		if c.bufLen == consts.RateBytes {
			c.state.AbsorbRawBlock(c.v, &c.buf)
			c.bufLen = 0
		}
	}
	return written, nil
}

// Erase zeros the Core's backing state and buffered bytes. Call this
// when the instance is no longer needed, in particular after NewKeyed.
func (c *Core) Erase() {
	c.state.Erase()
	for i := range c.buf {
		c.buf[i] = 0
	}
	c.bufLen = 0
}

// finalizeAbsorb pads and absorbs any buffered tail, exactly once.
func (c *Core) finalizeAbsorb() {
	if c.started {
		return
	}
	c.state.AbsorbFinalBlock(c.v, c.buf[:c.bufLen])
	c.bufLen = 0
	c.started = true
}

// XofReader squeezes an unbounded amount of output from a snapshot of a
// sponge's state, independent of the sponge it was created from.
type XofReader struct {
	v     variant.Variant
	state ysc2core.State
	buf   [consts.RateBytes]byte
	pos   int
}

// FinalizeXOF finalizes absorption and returns an independent reader
// that can squeeze arbitrary-length output.
func (c *Core) FinalizeXOF() *XofReader {
	c.finalizeAbsorb()
	return &XofReader{v: c.v, state: c.state, pos: consts.RateBytes}
}

// Erase zeros the reader's backing state and buffered output.
func (r *XofReader) Erase() {
	r.state.Erase()
	for i := range r.buf {
		r.buf[i] = 0
	}
	r.pos = 0
}

// Read fills p with the next len(p) bytes of squeeze output. It never
// returns an error.
func (r *XofReader) Read(p []byte) (int, error) {
	total := len(p)
	for len(p) > 0 {
		if r.pos == consts.RateBytes {
			r.state.Permute(r.v)
			r.buf = r.state.SqueezeRateBytes()
			r.pos = 0
		}
		n := copy(p, r.buf[r.pos:])
		r.pos += n
		p = p[n:]
	}
	return total, nil
}

// FinalizeFixed finalizes absorption and writes exactly
// FixedDigestBytes of output into out: the first rate bytes of the
// first squeeze block.
func (c *Core) FinalizeFixed(out []byte) {
	r := c.FinalizeXOF()
	r.Read(out[:FixedDigestBytes])
}

// Sum512 is a convenience one-shot fixed hash over data, per variant v.
func Sum512(v variant.Variant, data []byte) [FixedDigestBytes]byte {
	c := New(v)
	c.Write(data)
	var out [FixedDigestBytes]byte
	c.FinalizeFixed(out[:])
	return out
}

// MAC is a keyed message-authentication code built on the sponge.
type MAC struct {
	core *Core
}

// NewMAC constructs a MAC keyed by key, sized for v.
func NewMAC(v variant.Variant, key []byte) *MAC {
	return &MAC{core: NewKeyed(v, key)}
}

// Write absorbs more message bytes.
func (m *MAC) Write(p []byte) (int, error) {
	return m.core.Write(p)
}

// Sum finalizes and returns the FixedDigestBytes-length tag. Sum may
// only be called once per MAC instance.
func (m *MAC) Sum() [FixedDigestBytes]byte {
	var tag [FixedDigestBytes]byte
	m.core.FinalizeFixed(tag[:])
	return tag
}

// Verify recomputes the tag for the bytes absorbed so far and compares
// it against want in constant time, returning false rather than an
// error on mismatch.
func (m *MAC) Verify(want []byte) bool {
	got := m.Sum()
	return subtle.ConstantTimeCompare(got[:], want) == 1
}

// Erase zeros the MAC's backing state. Call this when the instance is
// no longer needed.
func (m *MAC) Erase() {
	m.core.Erase()
}
