// Package lz4fh implements LZ4FH, a byte-oriented compression format for
// Apple II hi-res graphics pages ("fadden's hi-res" variant of LZ4).
//
// The format trades the classic LZ4 back-distance encoding for absolute
// offsets into the output buffer, and packs literal/match run lengths into
// a single nibble pair so a decoder with 8-bit index registers never has
// to do more than an index-register increment per byte. See chunk.go for
// the chunk layout and decode.go for the state machine that reads it.
package lz4fh

import "io"

// Sizes and limits fixed by the LZ4FH format and the 8 KiB Apple II
// hi-res page it targets.
const (
	MaxSize      = 8192            // full hi-res page
	MinSize      = MaxSize - 8     // page with the final screen hole trimmed
	MaxExpansion = 100             // worst-case overhead for MaxSize input

	MinMatchLen     = 4
	MaxMatchLen     = 255
	MaxLiteralLen   = 255
	InitialLen      = 15 // nibble value that signals "read an extension byte"

	EmptyMatchToken = 253 // match-extension value: literals with no match
	EODMatchToken   = 254 // match-extension value: end of stream

	Magic = 0x66
)

// Screen-hole geometry: 8 invisible bytes at offset 120+128k, k in [0,64).
const (
	HoleFirstOffset = 120
	HoleStride      = 128
	HoleSize        = 8
	NumHoles        = 64
)

// ParseMode selects the parsing strategy used by Compress.
type ParseMode int

const (
	// Optimal solves the shortest-path DP over the literal/match DAG for
	// the minimum-size encoding. Slower, always produces output at least
	// as small as Greedy.
	Optimal ParseMode = iota
	// Greedy performs a single forward scan, taking the longest match
	// available at each position with no lookahead.
	Greedy
)

func (m ParseMode) String() string {
	switch m {
	case Optimal:
		return "optimal"
	case Greedy:
		return "greedy"
	default:
		return "unknown"
	}
}

// Options configures a compression run.
type Options struct {
	// Mode selects the greedy or optimal parser.
	Mode ParseMode
	// PreserveHoles disables screen-hole rewriting. When false (the
	// default), both hole-fill strategies are tried and the smaller
	// output wins (see the compress-twice driver in compress.go).
	PreserveHoles bool
	// Verify round-trips the compressed output through Decompress and
	// byte-compares it against the source before returning. On mismatch,
	// Compress returns a VerifyFailed error instead of the result.
	Verify bool
}

// CompressResult is the outcome of a successful Compress call.
type CompressResult struct {
	// Data is the compressed byte stream, magic byte through EOD marker.
	Data []byte
	// UsedContentFill is true when the content-fill hole strategy beat
	// zero-fill and was used to produce Data. Always false when
	// Options.PreserveHoles was set.
	UsedContentFill bool
	// InputSize is the length of the buffer that was actually compressed
	// (after any hole trimming), not necessarily len(src).
	InputSize int
}

// Compressor adapts the byte-slice Compress API to io.WriterTo, mirroring
// the constructor/WriteTo shape used elsewhere in this codebase's family
// of compressors.
type Compressor struct {
	opt    Options
	src    []byte
	result *CompressResult
}

// NewCompressor reads all of r (which must yield between MinSize and
// MaxSize bytes) and prepares it for compression under opt. The actual
// compression work happens lazily in WriteTo.
func NewCompressor(opt Options, r io.Reader) (*Compressor, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(src) < MinSize || len(src) > MaxSize {
		return nil, &CodecError{Kind: BadInputSize, Message: sizeMessage(len(src), MinSize, MaxSize)}
	}
	return &Compressor{opt: opt, src: src}, nil
}

// WriteTo compresses the buffered source image and writes the resulting
// LZ4FH stream to w. It implements io.WriterTo.
func (c *Compressor) WriteTo(w io.Writer) (int64, error) {
	if c.result == nil {
		res, err := Compress(c.src, c.opt)
		if err != nil {
			return 0, err
		}
		c.result = res
	}
	n, err := w.Write(c.result.Data)
	return int64(n), err
}

// Result returns the last compression outcome, or nil if WriteTo has not
// run yet.
func (c *Compressor) Result() *CompressResult {
	return c.result
}
