// Package testpic generates the canonical LZ4FH test images described in
// spec.md §8 and originally produced by the reference C tool's
// make-test-pic.cpp. It exists for tests and for the CLI's "testdata"
// subcommand; the core codec never imports it.
package testpic

// Image is a named fixture buffer.
type Image struct {
	Name string
	Data []byte
}

// AllZero returns size zero bytes: the trivial case, whose compressed
// form is a one-byte literal seed followed by a chain of self-referential
// matches, each capped at the format's 255-byte match length.
func AllZero(size int) []byte {
	return make([]byte, size)
}

// Alternating returns size bytes of the repeating {0x2a, 0x55} pattern,
// a two-byte-period image that compresses to long self-referential
// matches.
func Alternating(size int) []byte {
	buf := make([]byte, size)
	for i := range buf {
		if i%2 == 0 {
			buf[i] = 0x2a
		} else {
			buf[i] = 0x55
		}
	}
	return buf
}

// NoMatch generates a construction that rotates four-byte cycles so that,
// for long stretches, no 4-byte substring repeats — an adversarial input
// for the match finder that forces the encoder down the
// literals-with-no-match path repeatedly. It writes exactly 8192 bytes,
// matching the reference generator's WriteNoMatch.
func NoMatch() []byte {
	var buf []byte
	put := func(b byte) { buf = append(buf, b) }

	for ic := 0; ic < 252; ic++ {
		put(byte(ic))
		put(byte(ic + 1))
		put(byte(ic + 2))
		put(byte(ic + 3))
	}
	for ic := 0; ic < 252; ic++ {
		put(byte(ic))
		put(byte(ic + 2))
		put(byte(ic + 1))
		put(byte(ic + 3))
	}
	for ic := 0; ic < 252; ic++ {
		put(byte(ic))
		put(byte(ic + 1))
		put(byte(ic + 3))
		put(byte(ic + 2))
	}
	for ic := 0; ic < 252; ic++ {
		put(byte(ic))
		put(byte(ic + 3))
		put(byte(ic + 2))
		put(byte(ic + 1))
	}
	for ic := 0; ic < 252; ic++ {
		put(byte(ic))
		put(byte(ic + 3))
		put(byte(ic + 1))
		put(byte(ic + 2))
	}
	for ic := 0; ic < 252; ic++ {
		put(byte(ic + 1))
		put(byte(ic))
		put(byte(ic + 2))
		put(byte(ic + 3))
	}
	for ic := 0; ic < 252; ic++ {
		put(byte(ic + 1))
		put(byte(ic + 2))
		put(byte(ic))
		put(byte(ic + 3))
	}
	for ic := 0; ic < 252; ic++ {
		put(byte(ic + 1))
		put(byte(ic + 2))
		put(byte(ic + 3))
		put(byte(ic))
	}
	for ic := 0; ic < 32; ic++ {
		put(byte(ic + 2))
		put(byte(ic + 1))
		put(byte(ic + 3))
		put(byte(ic))
	}
	return buf
}

// HalfHalf returns size bytes of zeros followed by the NoMatch
// construction, truncated to size. It exercises a long match over the
// first half and the literals-with-no-match path over the second.
func HalfHalf(size int) []byte {
	buf := make([]byte, size/2)
	buf = append(buf, NoMatch()...)
	if len(buf) > size {
		buf = buf[:size]
	}
	for len(buf) < size {
		buf = append(buf, 0)
	}
	return buf
}

// All returns every canonical fixture at MaxSize, named as the reference
// generator named its output files.
func All() []Image {
	const maxSize = 8192
	return []Image{
		{Name: "allzero", Data: AllZero(maxSize)},
		{Name: "allgreen", Data: Alternating(maxSize)},
		{Name: "nomatch", Data: padTo(NoMatch(), maxSize)},
		{Name: "halfhalf", Data: HalfHalf(maxSize)},
	}
}

func padTo(buf []byte, size int) []byte {
	if len(buf) >= size {
		return buf[:size]
	}
	out := make([]byte, size)
	copy(out, buf)
	return out
}
