// Package ysc2 is the public facade over the YSC2 primitive family: a
// counter-mode stream cipher, a sponge (XOF / fixed hash / keyed MAC),
// and a sponge-duplex AEAD, all built on one 1024-bit permutation.
//
// See sub-packages variant, permute, stream, sponge and aead for the
// underlying constructions; this package only re-exports the
// constructors and parameter sets callers need for everyday use.
package ysc2

import (
	"github.com/newsniper-org/ysc2/aead"
	"github.com/newsniper-org/ysc2/sponge"
	"github.com/newsniper-org/ysc2/stream"
	"github.com/newsniper-org/ysc2/variant"
)

// Variant is a security-level parameter set; see package variant.
type Variant = variant.Variant

// Variant512 and Variant1024 are the two supported security levels.
var (
	Variant512  = variant.Variant512
	Variant1024 = variant.Variant1024
)

// NewStream creates a counter-mode keystream generator for v, keyed by
// key and nonce.
func NewStream(v variant.Variant, key, nonce []byte) (*stream.StreamCore, error) {
	return stream.New(v, key, nonce)
}

// NewHash creates an empty sponge instance for v, used as a hash or XOF.
func NewHash(v variant.Variant) *sponge.Core {
	return sponge.New(v)
}

// Sum512 is a one-shot fixed-length hash of data under v.
func Sum512(v variant.Variant, data []byte) [sponge.FixedDigestBytes]byte {
	return sponge.Sum512(v, data)
}

// NewMAC creates a keyed message-authentication code for v.
func NewMAC(v variant.Variant, key []byte) *sponge.MAC {
	return sponge.NewMAC(v, key)
}

// NewAEAD runs AEAD key-schedule for v and returns a reusable Core.
func NewAEAD(v variant.Variant, key []byte) (*aead.Core, error) {
	return aead.New(v, key)
}

// ErrAuthenticationFailure is returned by an AEAD Core's Decrypt on tag
// mismatch.
var ErrAuthenticationFailure = aead.ErrAuthenticationFailure
