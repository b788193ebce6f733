package tinyrng

import "io"

// Fill fills buf with pseudo-random bytes. Each 32-bit draw supplies four bytes,
// least significant byte first. A draw happens only when a byte of it is needed:
// an empty buffer consumes nothing and a buffer of n bytes consumes ceil(n/4) draws.
func Fill(g Source, buf []byte) {
	for len(buf) >= 4 {
		x := g.Uint32()
		buf[0] = byte(x)
		buf[1] = byte(x >> 8)
		buf[2] = byte(x >> 16)
		buf[3] = byte(x >> 24)
		buf = buf[4:]
	}
	if len(buf) > 0 {
		x := g.Uint32()
		for i := range buf {
			buf[i] = byte(x)
			x >>= 8
		}
	}
}

type reader struct {
	g Source
}

// NewReader returns an io.Reader that fills every read from g using Fill.
// Reads always succeed with n == len(p). Bytes are not buffered between reads, so
// reading 3 then 1 byte consumes two draws while reading 4 bytes consumes one.
func NewReader(g Source) io.Reader {
	return &reader{g: g}
}

func (r *reader) Read(p []byte) (int, error) {
	Fill(r.g, p)
	return len(p), nil
}
