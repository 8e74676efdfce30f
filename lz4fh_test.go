package lz4fh

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModeString(t *testing.T) {
	assert.Equal(t, "optimal", Optimal.String())
	assert.Equal(t, "greedy", Greedy.String())
	assert.Equal(t, "unknown", ParseMode(99).String())
}

func TestNewCompressorRejectsBadSize(t *testing.T) {
	_, err := NewCompressor(Options{}, bytes.NewReader(make([]byte, MinSize-1)))
	require.Error(t, err)
	var ce *CodecError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, BadInputSize, ce.Kind)
}

func TestCompressorWriteToRoundTrip(t *testing.T) {
	src := make([]byte, MaxSize)
	for i := range src {
		src[i] = byte(i % 11)
	}
	c, err := NewCompressor(Options{Verify: true}, bytes.NewReader(src))
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := c.WriteTo(&buf)
	require.NoError(t, err)
	assert.EqualValues(t, buf.Len(), n)

	res := c.Result()
	require.NotNil(t, res)
	assert.Equal(t, buf.Bytes(), res.Data)

	decoded, err := Decompress(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, res.InputSize, len(decoded))
}

func TestCompressorResultNilBeforeWriteTo(t *testing.T) {
	c, err := NewCompressor(Options{}, bytes.NewReader(make([]byte, MinSize)))
	require.NoError(t, err)
	assert.Nil(t, c.Result())
}

func TestCompressorWriteToIsIdempotent(t *testing.T) {
	c, err := NewCompressor(Options{}, bytes.NewReader(make([]byte, MinSize)))
	require.NoError(t, err)

	var first, second bytes.Buffer
	_, err = c.WriteTo(&first)
	require.NoError(t, err)
	_, err = c.WriteTo(&second)
	require.NoError(t, err)
	assert.Equal(t, first.Bytes(), second.Bytes())
}
