// Package ysc2core implements the shared 1024-bit state, key/nonce
// initialization, and absorb/squeeze primitives that the stream, sponge
// and AEAD layers are built on. Nothing here is exported as a public
// API surface on its own; it exists so stream, sponge and aead don't
// each reimplement little-endian word (de)serialization and padding.
package ysc2core

import (
	"encoding/binary"

	"github.com/newsniper-org/ysc2/consts"
	"github.com/newsniper-org/ysc2/permute"
	"github.com/newsniper-org/ysc2/variant"
)

// State is the 1024-bit permutation state: 16 64-bit words, little-endian
// on serialization. Never expose a State by value to a caller once a
// secret has entered it — copy explicitly and Erase the copy when done.
type State [consts.StateWords]uint64

// Erase overwrites the state with zeros. Every keyed context (stream
// core, key-absorbed sponge, AEAD initial/per-message state) must call
// this on drop.
func (s *State) Erase() {
	for i := range s {
		s[i] = 0
	}
}

// Permute applies the variant's permutation rounds to s.
func (s *State) Permute(v variant.Variant) {
	permute.Selected.Permute((*[consts.StateWords]uint64)(s), v.Rounds)
}

// xorRateBytes XORs up to consts.RateBytes of data, little-endian, into
// the rate portion of the state (the first consts.RateBytes/8 words).
// The caller must ensure len(data) <= consts.RateBytes.
func (s *State) xorRateBytes(data []byte) {
	full := len(data) / 8
	for i := 0; i < full; i++ {
		s[i] ^= binary.LittleEndian.Uint64(data[i*8:])
	}
	if rem := len(data) % 8; rem != 0 {
		var last [8]byte
		copy(last[:], data[full*8:])
		s[full] ^= binary.LittleEndian.Uint64(last[:])
	}
}

// SqueezeRateBytes serializes the rate portion of the state as
// little-endian bytes, without applying the permutation.
func (s *State) SqueezeRateBytes() [consts.RateBytes]byte {
	var out [consts.RateBytes]byte
	for i := 0; i < consts.RateBytes/8; i++ {
		binary.LittleEndian.PutUint64(out[i*8:], s[i])
	}
	return out
}

// padBlock builds one rate-sized block holding data (which must be
// shorter than consts.RateBytes) followed by 10* padding: a single
// 0x80 byte immediately after the data, zeros for the rest.
func padBlock(data []byte) [consts.RateBytes]byte {
	var block [consts.RateBytes]byte
	copy(block[:], data)
	block[len(data)] = consts.PadByte
	return block
}

// AbsorbSection absorbs one complete, self-delimited section of input
// (a domain string, a key, a nonce, associated data, or a message) into
// the rate portion of the state, applying the permutation after every
// rate-sized chunk. The final chunk is always padded — if the input's
// length is an exact multiple of the rate, this naturally produces the
// extra all-zero padded block, since the final chunk handed to padBlock
// is then empty.
func (s *State) AbsorbSection(v variant.Variant, data []byte) {
	for len(data) >= consts.RateBytes {
		s.xorRateBytes(data[:consts.RateBytes])
		s.Permute(v)
		data = data[consts.RateBytes:]
	}
	block := padBlock(data)
	s.xorRateBytes(block[:])
	s.Permute(v)
}

// AbsorbRawBlock XORs exactly one full rate-sized block into the state
// with no padding, and applies the permutation. Used by streaming
// absorption (sponge.Core.Write) once a caller-filled buffer reaches the
// rate boundary.
func (s *State) AbsorbRawBlock(v variant.Variant, block *[consts.RateBytes]byte) {
	s.xorRateBytes(block[:])
	s.Permute(v)
}

// AbsorbFinalBlock pads a final, possibly-empty, sub-rate chunk and
// applies the permutation. See AbsorbSection's doc comment for the
// full-length trailing block case.
func (s *State) AbsorbFinalBlock(v variant.Variant, tail []byte) {
	block := padBlock(tail)
	s.xorRateBytes(block[:])
	s.Permute(v)
}

// Init loads key and nonce into a zero state and applies P once. For
// the 512-bit variant the key fills the first half of the state and the
// nonce overwrites the second half (both are exactly 8 words); for the
// 1024-bit variant the 128-byte key fills the entire state and the
// 64-byte nonce is XORed into the second half, since overwriting it
// would destroy key material.
func Init(v variant.Variant, key, nonce []byte) (State, error) {
	if len(key) != v.KeyBytes {
		return State{}, &InvalidKeyLengthError{Variant: v.Name, Got: len(key), Expected: v.KeyBytes}
	}
	if len(nonce) != v.NonceBytes {
		return State{}, &InvalidNonceLengthError{Variant: v.Name, Got: len(nonce), Expected: v.NonceBytes}
	}

	var s State
	keyWords := v.KeyBytes / 8
	for i := 0; i < keyWords; i++ {
		s[i] = binary.LittleEndian.Uint64(key[i*8:])
	}

	nonceWords := v.NonceBytes / 8
	if keyWords+nonceWords <= consts.StateWords && keyWords == consts.StateWords/2 {
		// 512-bit variant: key occupies words[0:8], nonce occupies the
		// untouched words[8:16] — a plain overwrite.
		for i := 0; i < nonceWords; i++ {
			s[keyWords+i] = binary.LittleEndian.Uint64(nonce[i*8:])
		}
	} else {
		// 1024-bit variant: the key already fills the whole state, so
		// the nonce is XORed into the last nonceWords words instead.
		offset := consts.StateWords - nonceWords
		for i := 0; i < nonceWords; i++ {
			s[offset+i] ^= binary.LittleEndian.Uint64(nonce[i*8:])
		}
	}

	s.Permute(v)
	return s, nil
}
