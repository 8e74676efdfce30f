package lz4fh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressGreedyRoundTrip(t *testing.T) {
	src := make([]byte, MinSize)
	for i := range src {
		src[i] = byte(i % 7)
	}
	out := compressGreedy(src)
	assert.Equal(t, byte(Magic), out[0])
	decoded, err := Decompress(out)
	require.NoError(t, err)
	assert.Equal(t, src, decoded)
}

func TestCompressGreedyAllZero(t *testing.T) {
	src := make([]byte, MinSize)
	out := compressGreedy(src)
	decoded, err := Decompress(out)
	require.NoError(t, err)
	assert.Equal(t, src, decoded)
	// Every match chunk is capped at MaxMatchLen bytes, so an 8184-byte
	// run of zeros still needs on the order of MinSize/MaxMatchLen
	// four-byte match chunks (roughly 130 bytes total), not one giant
	// match — but that's still a small fraction of the uncompressed size.
	assert.Less(t, len(out), MinSize/10)
}

func TestCompressGreedyNoMatchable(t *testing.T) {
	src := make([]byte, MinSize)
	for i := range src {
		src[i] = byte(i * 37)
	}
	out := compressGreedy(src)
	decoded, err := Decompress(out)
	require.NoError(t, err)
	assert.Equal(t, src, decoded)
}

func TestCompressGreedyBoundedExpansion(t *testing.T) {
	src := make([]byte, MaxSize)
	for i := range src {
		src[i] = byte(i * 61)
	}
	out := compressGreedy(src)
	assert.LessOrEqual(t, len(out), len(src)+MaxExpansion)
}

func TestCompressGreedyEndsWithEOD(t *testing.T) {
	src := make([]byte, MinSize)
	out := compressGreedy(src)
	assert.Equal(t, byte(EODMatchToken), out[len(out)-1])
}
