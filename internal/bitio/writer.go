package bitio

// Writer appends LSB-first, little-endian variable-width codes to a growing
// byte buffer. It is the exact inverse of Reader: a code of width w lands at
// the current bit position, low bit first, and the final partial byte is
// left as-is so the stream can be handed to the game verbatim.
type Writer struct {
	out    []byte
	bitPos int
}

// NewWriter creates a Writer with capacity pre-allocated for expectedSize
// output bytes.
func NewWriter(expectedSize int) *Writer {
	if expectedSize < 64 {
		expectedSize = 64
	}
	return &Writer{out: make([]byte, 0, expectedSize)}
}

// WriteCode appends one code of the given width (9..12 bits).
//
// A byte-aligned code occupies two fresh bytes. Otherwise the low bits of
// the code are ORed into the partial last byte, and one or two more bytes
// carry the remainder depending on whether the code still straddles a third
// byte at this alignment.
func (bw *Writer) WriteCode(code uint32, width int) {
	r := uint(bw.bitPos & 7)
	if r == 0 {
		bw.out = append(bw.out, byte(code), byte(code>>8))
	} else {
		bw.out[len(bw.out)-1] |= byte(code << r)
		bw.out = append(bw.out, byte(code>>(8-r)))
		if (8-int(r))+8 < width {
			bw.out = append(bw.out, byte(code>>((8-r)+8)))
		}
	}
	bw.bitPos += width
}

// Finish returns the encoded stream. The Writer must not be used afterwards.
func (bw *Writer) Finish() []byte {
	return bw.out
}

// NumBytes returns the number of bytes written so far, counting the partial
// last byte.
func (bw *Writer) NumBytes() int {
	return len(bw.out)
}
