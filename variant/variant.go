// Package variant describes the per-security-level parameters of YSC2:
// key size, nonce size, round count, and the domain-separation strings
// absorbed before each logical section of a sponge or AEAD operation.
//
// The original implementation threads this information through a Rust
// trait with associated types and consts (Ysc2Variant). Go has no
// equivalent of an associated-const trait, so a variant is instead a
// plain, immutable, process-lifetime descriptor passed by value.
package variant

// Variant is an immutable parameter set for one YSC2 security level.
type Variant struct {
	Name string

	// KeyBytes and NonceBytes are the required lengths for keys and
	// nonces under this variant.
	KeyBytes   int
	NonceBytes int

	// Rounds is the number of permutation rounds applied per P call.
	// It must match between hashing, stream, and AEAD modes for a given
	// variant.
	Rounds int

	// KeyedDomain is absorbed before the key in a keyed MAC.
	KeyedDomain string
	// AEADDomain is absorbed once, right after the key, during AEAD
	// key-schedule.
	AEADDomain string

	// NonceDomain, ADDomain and CTDomain are absorbed as their own
	// padded block, immediately before the corresponding AEAD section,
	// to prevent cross-protocol collisions between modes sharing state.
	NonceDomain string
	ADDomain    string
	CTDomain    string
}

// Variant512 is the 512-bit security level: a 64-byte key, a 64-byte
// nonce, 12 rounds.
var Variant512 = Variant{
	Name:        "YSC2-512",
	KeyBytes:    64,
	NonceBytes:  64,
	Rounds:      12,
	KeyedDomain: "YSC2-X-MAC-512",
	AEADDomain:  "YSC2-512-AEAD-V1",
	NonceDomain: "NONCE",
	ADDomain:    "AD",
	CTDomain:    "CT",
}

// Variant1024 is the 1024-bit security level: a 128-byte key, a 64-byte
// nonce, 14 rounds (spec requires R >= 14 for this level).
var Variant1024 = Variant{
	Name:        "YSC2-1024",
	KeyBytes:    128,
	NonceBytes:  64,
	Rounds:      14,
	KeyedDomain: "YSC2-X-MAC-1024",
	AEADDomain:  "YSC2-1024-AEAD-V1",
	NonceDomain: "NONCE",
	ADDomain:    "AD",
	CTDomain:    "CT",
}
