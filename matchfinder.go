package lz4fh

// match is the result of a longest-match search: Length is 0 when no
// usable match (length >= MinMatchLen) was found at the position.
type match struct {
	Length int
	Offset int
}

// findLongestMatch searches buf[:len(buf)] for the longest run starting
// before pos that matches buf[pos:], capped at MaxMatchLen and at the
// distance remaining to the end of the buffer.
//
// The match source must start strictly before pos (self-referential runs
// are allowed: the match region may extend into or past pos, since the
// decoder copies byte-by-byte and can read bytes it just wrote). Ties
// keep the first (lowest-offset) candidate found, since the format's
// absolute-offset encoding costs the same regardless of which offset is
// chosen.
func findLongestMatch(buf []byte, pos int) match {
	maxLen := len(buf) - pos
	if maxLen > MaxMatchLen {
		maxLen = MaxMatchLen
	}
	if maxLen < MinMatchLen {
		return match{}
	}

	target := buf[pos : pos+maxLen]
	var best match
	for start := 0; start < pos; start++ {
		l := commonPrefixLen(buf[start:], target)
		if l > best.Length {
			best.Length = l
			best.Offset = start
			if l == maxLen {
				// Can't do better than the full capped length.
				break
			}
		}
	}
	if best.Length < MinMatchLen {
		return match{}
	}
	return best
}

// commonPrefixLen returns how many leading bytes of a and b agree, capped
// at len(b) (the caller passes the shorter, already-capped slice as b).
func commonPrefixLen(a, b []byte) int {
	n := len(b)
	if len(a) < n {
		n = len(a)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}
