package lz4fh

import "math"

// optNode is one record of the backward dynamic-programming array used by
// compressOptimal. It mirrors fhpack's OptNode: for position i, it says
// whether the cheapest way to encode src[i:] starts with a match or a
// literal, and how expensive that cheapest encoding is in total.
type optNode struct {
	totalCost     int
	matchLength   int // 0 means the literal path won at this position
	matchOffset   int
	literalLength int // running literal-run length, valid when matchLength == 0
}

// compressOptimal solves the shortest-path problem over the two-choice
// (literal vs. match) DAG described in spec §4.4: for every position it
// picks whichever of "emit one literal byte and recurse" or "emit the
// longest match here and recurse" yields the smaller total encoding, then
// walks forward once to emit the chosen chunks.
//
// The literal-path cost at position i depends on what the *next* position
// chose (whether it's a match, or a literal run about to hit the 255-byte
// cap, or a plain continuation) rather than on any fixed per-byte weight,
// because the format shares its one mixed-length byte between a literal
// run and the match that follows it. That coupling is what makes this a
// backward array walk instead of a plain edge-weighted graph search.
func compressOptimal(src []byte) []byte {
	n := len(src)
	nodes := make([]optNode, n+1)

	for i := n - 1; i >= 0; i-- {
		m := findLongestMatch(src, i)

		costForMatch := math.MaxInt32
		if m.Length >= MinMatchLen {
			nodes[i].matchLength = m.Length
			nodes[i].matchOffset = m.Offset
			costForMatch = nodes[i+m.Length].totalCost + matchChunkCost(m.Length)
		}

		var costForLiteral int
		switch {
		case i == n-1:
			nodes[i].literalLength = 1
			costForLiteral = 2 // mixed-length byte + the literal byte
		case nodes[i+1].matchLength != 0:
			nodes[i].literalLength = 1
			costForLiteral = 1 + nodes[i+1].totalCost
		case nodes[i+1].literalLength == MaxLiteralLen:
			nodes[i].literalLength = 1
			costForLiteral = 3 + nodes[i+1].totalCost // mixed byte + literal + empty-match sentinel
		default:
			newLen := nodes[i+1].literalLength + 1
			nodes[i].literalLength = newLen
			costForLiteral = 1
			if newLen == InitialLen {
				costForLiteral++ // just crossed into needing the extension byte
			}
			costForLiteral += nodes[i+1].totalCost
		}

		if costForLiteral > costForMatch {
			nodes[i].totalCost = costForMatch
		} else {
			nodes[i].matchLength = 0 // literal wins; clear any match candidate
			nodes[i].totalCost = costForLiteral
		}
	}

	out := make([]byte, 0, n+MaxExpansion)
	out = append(out, Magic)

	litStart := 0
	numLiterals := 0

	for i := 0; i < n; {
		if nodes[i].matchLength == 0 {
			if numLiterals != 0 {
				// Walking the DP backward can produce a short run
				// immediately followed by another (longer) run rather
				// than the other way around; emit the pending one with
				// an empty-match sentinel before starting the new one.
				out = appendChunk(out, src, chunk{LiteralStart: litStart, LiteralLen: numLiterals}, false)
			}
			numLiterals = nodes[i].literalLength
			litStart = i
			i += numLiterals
			continue
		}

		out = appendChunk(out, src, chunk{
			LiteralStart: litStart,
			LiteralLen:   numLiterals,
			MatchLen:     nodes[i].matchLength,
			MatchOffset:  nodes[i].matchOffset,
		}, false)
		numLiterals = 0
		i += nodes[i].matchLength
	}

	out = appendChunk(out, src, chunk{LiteralStart: litStart, LiteralLen: numLiterals}, true)
	return out
}
