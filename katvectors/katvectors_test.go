package katvectors

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFixtures(t *testing.T) {
	data, err := os.ReadFile("testdata/fixtures.yaml")
	require.NoError(t, err)

	doc, err := Load(data)
	require.NoError(t, err)
	require.Len(t, doc.Vectors, 3)
	require.Equal(t, "YSC2-512", doc.Vectors[0].Variant)
	require.Equal(t, "68656c6c6f", doc.Vectors[1].Message)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load([]byte("vectors: [this is not a mapping"))
	require.Error(t, err)
}
