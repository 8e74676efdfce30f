package lz4fh

// chunk is the pre-serialization form of one (literalRun, match?) pair.
// MatchOffset and MatchLen describe the match; MatchLen == 0 means "no match" for
// this chunk (the empty-match sentinel is emitted instead of an offset).
type chunk struct {
	LiteralStart int // index into the source buffer
	LiteralLen   int
	MatchLen     int
	MatchOffset  int
}

// appendChunk serializes c per the mixed-length-byte encoding rules
// (§4.4) and appends it to dst. eod selects whether the chunk's
// terminator is the end-of-data sentinel (254) rather than the
// empty-match sentinel (253); it only applies when c.MatchLen == 0.
func appendChunk(dst []byte, src []byte, c chunk, eod bool) []byte {
	litLen := c.LiteralLen
	litNibble := litLen
	if litNibble > InitialLen {
		litNibble = InitialLen
	}

	if c.MatchLen == 0 {
		mixed := byte(litNibble<<4) | 0x0f
		dst = append(dst, mixed)
		if litLen >= InitialLen {
			dst = append(dst, byte(litLen-InitialLen))
		}
		dst = append(dst, src[c.LiteralStart:c.LiteralStart+litLen]...)
		if eod {
			dst = append(dst, EODMatchToken)
		} else {
			dst = append(dst, EmptyMatchToken)
		}
		return dst
	}

	adjMatch := c.MatchLen - MinMatchLen
	matchNibble := adjMatch
	if matchNibble > InitialLen {
		matchNibble = InitialLen
	}

	mixed := byte(litNibble<<4) | byte(matchNibble)
	dst = append(dst, mixed)
	if litLen >= InitialLen {
		dst = append(dst, byte(litLen-InitialLen))
	}
	dst = append(dst, src[c.LiteralStart:c.LiteralStart+litLen]...)
	if adjMatch >= InitialLen {
		dst = append(dst, byte(adjMatch-InitialLen))
	}
	dst = append(dst, byte(c.MatchOffset&0xff), byte((c.MatchOffset>>8)&0xff))
	return dst
}

// literalChunkCost is the encoded size, in bytes, of a chunk carrying
// litLen literal bytes and no match (terminated by either the
// empty-match or end-of-data sentinel — both cost exactly one byte).
func literalChunkCost(litLen int) int {
	cost := 2 // mixed-length byte + sentinel/EOD byte
	if litLen >= InitialLen {
		cost++
	}
	return cost + litLen
}

// matchChunkCost is the fixed overhead of a chunk carrying a match of the
// given length: the mixed-length byte, the two-byte offset, and an
// optional match-length extension byte. It does not include the literal
// bytes that may precede the match in the same chunk.
func matchChunkCost(matchLen int) int {
	cost := 3 // mixed-length byte + 2-byte offset
	if matchLen-MinMatchLen >= InitialLen {
		cost++
	}
	return cost
}

// chunkCost is the total encoded size of a chunk carrying litLen literal
// bytes followed by a match of matchLen bytes (matchLen == 0 meaning no
// match). The literal-length extension byte, when needed, is shared by
// neither the match nor a following chunk, so it is added on top of
// matchChunkCost here rather than folded into it.
func chunkCost(litLen, matchLen int) int {
	if matchLen == 0 {
		return literalChunkCost(litLen)
	}
	cost := litLen + matchChunkCost(matchLen)
	if litLen >= InitialLen {
		cost++
	}
	return cost
}
