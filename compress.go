package lz4fh

// Compress encodes src as an LZ4FH stream under opt. src must be between
// MinSize and MaxSize bytes.
//
// When opt.PreserveHoles is false (the default), the screen holes are
// rewritten before parsing using both the zero-fill and content-fill
// strategies (§4.5); whichever produces the smaller output wins, with
// ties broken toward zero-fill. When it is true, src is compressed
// unmodified and no hole rewrite happens at all.
//
// When opt.Verify is set, the winning output is decoded and compared
// byte-for-byte against the buffer that produced it before Compress
// returns; a mismatch yields a VerifyFailed error. This should never
// trigger in a correct build — it exists as a self-test against encoder
// regressions, matching the reference C tool's compress-then-verify
// discipline.
func Compress(src []byte, opt Options) (*CompressResult, error) {
	if len(src) < MinSize || len(src) > MaxSize {
		return nil, newErr(BadInputSize, sizeMessage(len(src), MinSize, MaxSize))
	}

	parse := compressOptimal
	if opt.Mode == Greedy {
		parse = compressGreedy
	}

	if opt.PreserveHoles {
		data := parse(src)
		if opt.Verify {
			if err := verify(data, src); err != nil {
				return nil, err
			}
		}
		return &CompressResult{Data: data, InputSize: len(src)}, nil
	}

	// Always drop the final screen hole before rewriting: both strategies
	// operate on the trimmed MinSize buffer, matching the reference
	// tool's unconditional sourceLen = MIN_SIZE in the non-preserve path.
	base := make([]byte, MinSize)
	copy(base, src[:MinSize])

	zeroBuf := make([]byte, MinSize)
	copy(zeroBuf, base)
	zeroHoles(zeroBuf)
	zeroData := parse(zeroBuf)

	fillBuf := make([]byte, MinSize)
	copy(fillBuf, base)
	fillHoles(fillBuf)
	fillData := parse(fillBuf)

	result := &CompressResult{Data: zeroData, InputSize: MinSize}
	winningSrc := zeroBuf
	if len(fillData) < len(zeroData) {
		result = &CompressResult{Data: fillData, UsedContentFill: true, InputSize: MinSize}
		winningSrc = fillBuf
	}

	if opt.Verify {
		if err := verify(result.Data, winningSrc); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// verify decodes data and checks that it byte-for-byte reproduces src.
func verify(data, src []byte) error {
	decoded, err := Decompress(data)
	if err != nil {
		return &CodecError{Kind: VerifyFailed, Message: "round-trip decode failed", Cause: err}
	}
	if len(decoded) != len(src) {
		return newErr(VerifyFailed, "round-trip produced %d bytes, want %d", len(decoded), len(src))
	}
	for i := range src {
		if decoded[i] != src[i] {
			return newErr(VerifyFailed, "round-trip mismatch at byte %d: got 0x%02x, want 0x%02x", i, decoded[i], src[i])
		}
	}
	return nil
}
