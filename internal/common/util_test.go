package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandByteArray(t *testing.T) {
	a := GenerateRandByteArray(32)
	b := GenerateRandByteArray(32)

	assert.Len(t, a, 32)
	assert.Len(t, b, 32)
	assert.NotEqual(t, a, b, "two 32-byte random arrays should differ")
}

func TestWipeByteArray(t *testing.T) {
	buf := []byte("master-key")
	WipeByteArray(buf)
	assert.Equal(t, make([]byte, len("master-key")), buf)

	require.NotPanics(t, func() { WipeByteArray(nil) })
}
