package lz4fh

// zeroHoles overwrites every screen hole in buf with zero bytes. buf must
// be at least HoleFirstOffset+HoleSize bytes long for the first hole to
// exist at all; holes past the end of buf are left untouched.
func zeroHoles(buf []byte) {
	forEachHole(buf, func(h int) {
		for i := 0; i < HoleSize; i++ {
			buf[h+i] = 0
		}
	})
}

// fillHoles rewrites every screen hole in buf so it blends into the
// surrounding data instead of interrupting it, letting the match finder
// absorb holes into an ordinary run instead of paying chunk overhead for
// them. For each hole it prefers extending the two-byte pattern that
// follows the hole (when one is detectable) and otherwise extends the
// pattern that precedes it — see the "Open question" note in DESIGN.md
// about why the last hole always falls back to "before".
func fillHoles(buf []byte) {
	forEachHole(buf, func(h int) {
		useAfter := false
		checkp := h + HoleSize
		if checkp+4 <= len(buf) {
			if buf[checkp] == buf[checkp+2] && buf[checkp+1] == buf[checkp+3] {
				useAfter = true
			}
		}

		if useAfter {
			for i := HoleSize - 1; i >= 0; i-- {
				buf[h+i] = buf[h+i+2]
			}
		} else {
			for i := 0; i < HoleSize; i++ {
				buf[h+i] = buf[h+i-2]
			}
		}
	})
}

// forEachHole calls fn with the starting offset of every screen hole that
// fits entirely within buf.
func forEachHole(buf []byte, fn func(offset int)) {
	for k := 0; k < NumHoles; k++ {
		h := HoleFirstOffset + k*HoleStride
		if h+HoleSize > len(buf) {
			return
		}
		fn(h)
	}
}
