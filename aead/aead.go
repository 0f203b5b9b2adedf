// Package aead implements the YSC2 sponge-duplex AEAD construction. A
// Core is built once from a key; each Encrypt/Decrypt call works on a
// local copy of the post-key-schedule state, so a Core can be shared
// across goroutines and reused across messages with distinct nonces.
package aead

import (
	"crypto/subtle"
	"errors"

	"github.com/newsniper-org/ysc2/consts"
	"github.com/newsniper-org/ysc2/variant"
	"github.com/newsniper-org/ysc2/ysc2core"
)

// ErrAuthenticationFailure is returned by Decrypt when the supplied tag
// does not match the recomputed one. The buffer is zeroed before this is
// returned; no partial plaintext is retained.
var ErrAuthenticationFailure = errors.New("ysc2: authentication failure")

// TagBytes is the length of an authentication tag.
const TagBytes = consts.TagBytes

// Core holds the immutable state resulting from key-schedule. It is safe
// to share across goroutines: Encrypt/Decrypt only ever read it to seed
// a local copy.
type Core struct {
	v       variant.Variant
	initial ysc2core.State
}

// New runs key-schedule: absorb the key, then the variant's AEAD domain
// string, snapshotting the result.
func New(v variant.Variant, key []byte) (*Core, error) {
	if len(key) != v.KeyBytes {
		return nil, &ysc2core.InvalidKeyLengthError{Variant: v.Name, Got: len(key), Expected: v.KeyBytes}
	}
	var state ysc2core.State
	state.AbsorbSection(v, key)
	state.AbsorbSection(v, []byte(v.AEADDomain))
	return &Core{v: v, initial: state}, nil
}

// Erase zeros the Core's backing state.
func (c *Core) Erase() {
	c.initial.Erase()
}

// Encrypt absorbs nonce and associated data, then encrypts buffer in
// place, interleaving keystream extraction with ciphertext absorption.
// Returns the 16-byte tag.
func (c *Core) Encrypt(nonce, ad, buffer []byte) ([TagBytes]byte, error) {
	if len(nonce) != c.v.NonceBytes {
		return [TagBytes]byte{}, &ysc2core.InvalidNonceLengthError{Variant: c.v.Name, Got: len(nonce), Expected: c.v.NonceBytes}
	}

	state := c.initial
	state.AbsorbSection(c.v, []byte(c.v.NonceDomain))
	state.AbsorbSection(c.v, nonce)
	state.AbsorbSection(c.v, []byte(c.v.ADDomain))
	state.AbsorbSection(c.v, ad)
	state.AbsorbSection(c.v, []byte(c.v.CTDomain))

	rest := buffer
	for len(rest) > 0 {
		state.Permute(c.v)
		ks := state.SqueezeRateBytes()

		n := len(rest)
		if n > consts.RateBytes {
			n = consts.RateBytes
		}
		for i := 0; i < n; i++ {
			rest[i] ^= ks[i]
		}
		if n == consts.RateBytes {
			state.AbsorbRawBlock(c.v, (*[consts.RateBytes]byte)(rest[:n]))
		} else {
			state.AbsorbFinalBlock(c.v, rest[:n])
		}
		rest = rest[n:]
	}

	state.Permute(c.v)
	tagBlock := state.SqueezeRateBytes()
	var tag [TagBytes]byte
	copy(tag[:], tagBlock[:TagBytes])
	state.Erase()
	return tag, nil
}

// Decrypt absorbs nonce and associated data identically to Encrypt, then
// decrypts buffer in place: it absorbs the ciphertext bytes currently in
// buffer *before* XORing the keystream onto them, keeping the absorbed
// value identical between encrypt and decrypt. On tag mismatch, buffer
// is zeroed and ErrAuthenticationFailure is returned.
func (c *Core) Decrypt(nonce, ad, buffer []byte, tag [TagBytes]byte) error {
	if len(nonce) != c.v.NonceBytes {
		return &ysc2core.InvalidNonceLengthError{Variant: c.v.Name, Got: len(nonce), Expected: c.v.NonceBytes}
	}

	state := c.initial
	state.AbsorbSection(c.v, []byte(c.v.NonceDomain))
	state.AbsorbSection(c.v, nonce)
	state.AbsorbSection(c.v, []byte(c.v.ADDomain))
	state.AbsorbSection(c.v, ad)
	state.AbsorbSection(c.v, []byte(c.v.CTDomain))

	rest := buffer
	for len(rest) > 0 {
		state.Permute(c.v)
		ks := state.SqueezeRateBytes()

		n := len(rest)
		if n > consts.RateBytes {
			n = consts.RateBytes
		}
		if n == consts.RateBytes {
			state.AbsorbRawBlock(c.v, (*[consts.RateBytes]byte)(rest[:n]))
		} else {
			state.AbsorbFinalBlock(c.v, rest[:n])
		}
		for i := 0; i < n; i++ {
			rest[i] ^= ks[i]
		}
		rest = rest[n:]
	}

	state.Permute(c.v)
	tagBlock := state.SqueezeRateBytes()
	state.Erase()

	if subtle.ConstantTimeCompare(tagBlock[:TagBytes], tag[:]) != 1 {
		for i := range buffer {
			buffer[i] = 0
		}
		return ErrAuthenticationFailure
	}
	return nil
}
