package stream

import (
	"bytes"
	"testing"

	"github.com/newsniper-org/ysc2/variant"
	"github.com/newsniper-org/ysc2/ysc2core"
	"github.com/stretchr/testify/require"
)

func repeat(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

// TestRoundTrip covers the 512-bit variant with key/nonce of repeated
// bytes and a short ASCII message. Encrypting then decrypting with
// freshly initialized ciphers recovers the plaintext, and the
// ciphertext differs from the plaintext.
func TestRoundTrip(t *testing.T) {
	key := repeat(0x11, 64)
	nonce := repeat(0x22, 64)
	plaintext := []byte("Test message for the auxiliary stream cipher.")

	enc, err := New(variant.Variant512, key, nonce)
	require.NoError(t, err)
	buf := append([]byte(nil), plaintext...)
	enc.ApplyKeystream(buf)
	require.NotEqual(t, plaintext, buf)

	dec, err := New(variant.Variant512, key, nonce)
	require.NoError(t, err)
	dec.ApplyKeystream(buf)
	require.Equal(t, plaintext, buf)
}

// TestSeekConsistency checks, for the 1024-bit variant, that the
// keystream block produced by a seeked cipher at block n equals the
// block produced by a fresh cipher after n-1 prior requests.
func TestSeekConsistency(t *testing.T) {
	key := repeat(0x33, 128)
	nonce := repeat(0x44, 64)

	fresh, err := New(variant.Variant1024, key, nonce)
	require.NoError(t, err)
	a := make([]byte, 256)
	fresh.ApplyKeystream(a) // produces blocks 1 and 2

	seeked, err := New(variant.Variant1024, key, nonce)
	require.NoError(t, err)
	seeked.Seek(1) // next request should reproduce block 2
	b := make([]byte, BlockBytes)
	seeked.ApplyKeystream(b)

	require.Equal(t, a[BlockBytes:], b)
}

// TestKeystreamDeterministic checks that 512 bytes of keystream computed
// twice from the same key/nonce are byte-equal regardless of which
// permutation back-end the process selected — the real scalar-vs-vector
// cross-check lives in permute/permute_test.go's TestBackendEquivalence,
// which this relies on transitively since StreamCore always calls
// permute.Selected.
func TestKeystreamDeterministic(t *testing.T) {
	key := repeat(0x11, 64)
	nonce := repeat(0x22, 64)

	a, err := New(variant.Variant512, key, nonce)
	require.NoError(t, err)
	b, err := New(variant.Variant512, key, nonce)
	require.NoError(t, err)

	var bufA, bufB bytes.Buffer
	for i := uint64(1); i <= 4; i++ {
		blockA := a.KeystreamBlock(i)
		blockB := b.KeystreamBlock(i)
		bufA.Write(blockA[:])
		bufB.Write(blockB[:])
	}
	require.Equal(t, bufA.Bytes(), bufB.Bytes())
	require.Len(t, bufA.Bytes(), 512)
}

func TestApplyKeystreamAdvancesPosition(t *testing.T) {
	key := repeat(0x01, 64)
	nonce := repeat(0x02, 64)
	s, err := New(variant.Variant512, key, nonce)
	require.NoError(t, err)

	require.Equal(t, uint64(0), s.Position())
	s.ApplyKeystream(make([]byte, BlockBytes+1))
	require.Equal(t, uint64(2), s.Position())
}

func TestErase(t *testing.T) {
	key := repeat(0x01, 64)
	nonce := repeat(0x02, 64)
	s, err := New(variant.Variant512, key, nonce)
	require.NoError(t, err)
	s.Erase()
	require.Equal(t, uint64(0), s.Position())

	var zero ysc2core.State
	require.Equal(t, zero, s.initial)
}
