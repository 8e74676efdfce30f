package lz4fh

// compressGreedy performs a single forward scan, taking the longest match
// available at each position with no lookahead. It is the fast, lower-
// quality alternative to compressOptimal.
func compressGreedy(src []byte) []byte {
	out := make([]byte, 0, len(src)+MaxExpansion)
	out = append(out, Magic)

	litStart := 0
	numLiterals := 0

	pos := 0
	for pos < len(src) {
		m := findLongestMatch(src, pos)
		if m.Length < MinMatchLen {
			if numLiterals == MaxLiteralLen {
				out = appendChunk(out, src, chunk{LiteralStart: litStart, LiteralLen: numLiterals}, false)
				numLiterals = 0
			}
			if numLiterals == 0 {
				litStart = pos
			}
			numLiterals++
			pos++
			continue
		}

		out = appendChunk(out, src, chunk{
			LiteralStart: litStart,
			LiteralLen:   numLiterals,
			MatchLen:     m.Length,
			MatchOffset:  m.Offset,
		}, false)
		numLiterals = 0
		pos += m.Length
	}

	out = appendChunk(out, src, chunk{LiteralStart: litStart, LiteralLen: numLiterals}, true)
	return out
}
