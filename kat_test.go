package ysc2

import (
	"encoding/hex"
	"os"
	"testing"

	"github.com/newsniper-org/ysc2/katvectors"
	"github.com/stretchr/testify/require"
)

// variantByName maps the YAML fixture's variant names onto the concrete
// Variant values, so katvectors stays independent of the variant package.
func variantByName(t *testing.T, name string) Variant {
	switch name {
	case "YSC2-512":
		return Variant512
	case "YSC2-1024":
		return Variant1024
	default:
		t.Fatalf("unknown variant name %q", name)
		return Variant{}
	}
}

// TestKATFixturesAreSelfConsistent hashes every fixture message twice and
// checks both runs agree — the fixtures carry no pinned digest_hex since
// YSC2 has no published reference vectors, only determinism to check.
func TestKATFixturesAreSelfConsistent(t *testing.T) {
	data, err := os.ReadFile("katvectors/testdata/fixtures.yaml")
	require.NoError(t, err)
	doc, err := katvectors.Load(data)
	require.NoError(t, err)
	require.NotEmpty(t, doc.Vectors)

	for _, vec := range doc.Vectors {
		v := variantByName(t, vec.Variant)
		msg, err := hex.DecodeString(vec.Message)
		require.NoError(t, err)

		first := Sum512(v, msg)
		second := Sum512(v, msg)
		require.Equal(t, first, second)
	}
}
