package aead

import (
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

func TestRoundTrip(t *testing.T) {
	key := repeat(0x07, variant.Variant512.KeyBytes)
	nonce := repeat(0x42, variant.Variant512.NonceBytes)
	ad := []byte("metadata")
	plaintext := []byte("Hello, AEAD.")

	core, err := New(variant.Variant512, key)
	require.NoError(t, err)

	ct := append([]byte(nil), plaintext...)
	tag, err := core.Encrypt(nonce, ad, ct)
	require.NoError(t, err)
	require.NotEqual(t, plaintext, ct)

	err = core.Decrypt(nonce, ad, ct, tag)
	require.NoError(t, err)
	require.Equal(t, plaintext, ct)
}

// TestTampering checks that flipping the first ciphertext byte, changing
// AD, flipping the first tag byte, or changing the nonce each cause
// authentication failure and leave the buffer zeroed.
func TestTampering(t *testing.T) {
	key := repeat(0x09, variant.Variant512.KeyBytes)
	nonce := repeat(0x42, variant.Variant512.NonceBytes)
	ad := []byte("metadata")
	plaintext := []byte("Hello, AEAD.")

	core, err := New(variant.Variant512, key)
	require.NoError(t, err)

	sealedCT := append([]byte(nil), plaintext...)
	tag, err := core.Encrypt(nonce, ad, sealedCT)
	require.NoError(t, err)

	t.Run("tampered ciphertext", func(t *testing.T) {
		buf := append([]byte(nil), sealedCT...)
		buf[0] ^= 0xFF
		err := core.Decrypt(nonce, ad, buf, tag)
		require.ErrorIs(t, err, ErrAuthenticationFailure)
		require.Equal(t, make([]byte, len(buf)), buf)
	})

	t.Run("tampered AD", func(t *testing.T) {
		buf := append([]byte(nil), sealedCT...)
		err := core.Decrypt(nonce, []byte("different-metadata"), buf, tag)
		require.ErrorIs(t, err, ErrAuthenticationFailure)
		require.Equal(t, make([]byte, len(buf)), buf)
	})

	t.Run("tampered tag", func(t *testing.T) {
		buf := append([]byte(nil), sealedCT...)
		badTag := tag
		badTag[0] ^= 0xFF
		err := core.Decrypt(nonce, ad, buf, badTag)
		require.ErrorIs(t, err, ErrAuthenticationFailure)
		require.Equal(t, make([]byte, len(buf)), buf)
	})

	t.Run("tampered nonce", func(t *testing.T) {
		buf := append([]byte(nil), sealedCT...)
		otherNonce := repeat(0x43, variant.Variant512.NonceBytes)
		err := core.Decrypt(otherNonce, ad, buf, tag)
		require.ErrorIs(t, err, ErrAuthenticationFailure)
		require.Equal(t, make([]byte, len(buf)), buf)
	})
}

func TestMultiBlockMessage(t *testing.T) {
	key := repeat(0x05, variant.Variant1024.KeyBytes)
	nonce := repeat(0x06, variant.Variant1024.NonceBytes)
	ad := []byte("ad")

	plaintext := make([]byte, 200) // spans more than one 64-byte rate block
	for i := range plaintext {
		plaintext[i] = byte(i)
	}

	core, err := New(variant.Variant1024, key)
	require.NoError(t, err)

	buf := append([]byte(nil), plaintext...)
	tag, err := core.Encrypt(nonce, ad, buf)
	require.NoError(t, err)

	err = core.Decrypt(nonce, ad, buf, tag)
	require.NoError(t, err)
	require.Equal(t, plaintext, buf)
}

func TestCoreIsReusableAcrossMessages(t *testing.T) {
	key := repeat(0x0A, variant.Variant512.KeyBytes)
	core, err := New(variant.Variant512, key)
	require.NoError(t, err)

	for i := byte(0); i < 5; i++ {
		nonce := repeat(i, variant.Variant512.NonceBytes)
		plaintext := []byte("message number")
		buf := append([]byte(nil), plaintext...)
		tag, err := core.Encrypt(nonce, nil, buf)
		require.NoError(t, err)
		require.NoError(t, core.Decrypt(nonce, nil, buf, tag))
		require.Equal(t, plaintext, buf)
	}
}

func TestRejectsWrongKeyLength(t *testing.T) {
	_, err := New(variant.Variant512, make([]byte, 10))
	require.Error(t, err)
}

func TestRejectsWrongNonceLength(t *testing.T) {
	key := repeat(0x01, variant.Variant512.KeyBytes)
	core, err := New(variant.Variant512, key)
	require.NoError(t, err)
	buf := []byte("x")
	_, err = core.Encrypt(make([]byte, 1), nil, buf)
	require.Error(t, err)
}

func TestEraseZeroesBackingState(t *testing.T) {
	key := repeat(0x0B, variant.Variant512.KeyBytes)
	core, err := New(variant.Variant512, key)
	require.NoError(t, err)

	core.Erase()
	var zero ysc2core.State
	require.Equal(t, zero, core.initial)
}
