package lz4fh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadden/lz4fh/internal/testpic"
)

func TestCompressRejectsBadSize(t *testing.T) {
	_, err := Compress(make([]byte, MinSize-1), Options{})
	require.Error(t, err)
	var ce *CodecError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, BadInputSize, ce.Kind)

	_, err = Compress(make([]byte, MaxSize+1), Options{})
	require.Error(t, err)
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, BadInputSize, ce.Kind)
}

func TestCompressAcceptsMinAndMaxSize(t *testing.T) {
	for _, size := range []int{MinSize, MaxSize} {
		res, err := Compress(make([]byte, size), Options{Verify: true})
		require.NoError(t, err)
		assert.NotEmpty(t, res.Data)
	}
}

func TestCompressPreserveHolesSkipsRewrite(t *testing.T) {
	src := make([]byte, MaxSize)
	// Put a distinctive, unrepeated value in the first hole; a fill pass
	// would overwrite it, PreserveHoles must not.
	src[HoleFirstOffset] = 0xe5
	res, err := Compress(src, Options{PreserveHoles: true, Verify: true})
	require.NoError(t, err)
	decoded, err := Decompress(res.Data)
	require.NoError(t, err)
	assert.Equal(t, byte(0xe5), decoded[HoleFirstOffset])
	assert.False(t, res.UsedContentFill)
}

func TestCompressDefaultRewritesHolesAndTrims(t *testing.T) {
	src := make([]byte, MaxSize)
	for i := range src {
		src[i] = byte(i % 5)
	}
	res, err := Compress(src, Options{Verify: true})
	require.NoError(t, err)
	assert.Equal(t, MinSize, res.InputSize)
}

func TestCompressAllCanonicalImagesRoundTrip(t *testing.T) {
	for _, img := range testpic.All() {
		for _, mode := range []ParseMode{Optimal, Greedy} {
			t.Run(img.Name+"/"+mode.String(), func(t *testing.T) {
				res, err := Compress(img.Data, Options{Mode: mode, Verify: true})
				require.NoError(t, err)
				assert.LessOrEqual(t, len(res.Data), res.InputSize+MaxExpansion)

				decoded, err := Decompress(res.Data)
				require.NoError(t, err)
				assert.Equal(t, res.InputSize, len(decoded))
			})
		}
	}
}

func TestCompressOutputStartsWithMagic(t *testing.T) {
	res, err := Compress(make([]byte, MinSize), Options{})
	require.NoError(t, err)
	assert.Equal(t, byte(Magic), res.Data[0])
}

func TestCompressVerifyCatchesCorruption(t *testing.T) {
	// A hand-rolled, malformed stream is enough to exercise the verify()
	// failure path without needing to actually corrupt the encoder.
	err := verify([]byte{Magic, 0x00}, make([]byte, 4))
	require.Error(t, err)
	var ce *CodecError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, VerifyFailed, ce.Kind)
}
