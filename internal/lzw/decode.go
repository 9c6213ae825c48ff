package lzw

import "github.com/deepteams/td3/internal/bitio"

// decoder holds the dictionary and width state for one Decode call.
type decoder struct {
	br *bitio.Reader

	// table maps a code to its byte sequence. Codes 0..255 are the
	// single-byte seeds; Reset and EndOfStream are never mapped; dynamic
	// entries start at firstDynamicCode.
	table    [][]byte
	nextCode int
	width    int
	grow     int
	prev     []byte

	out []byte
}

// Decode decompresses a complete LZW stream.
//
// A Reset code may appear at any position, including first, and restores the
// initial dictionary and 9-bit width. A code that is not yet in the
// dictionary while no previous sequence exists produces no output, matching
// the game's decoder. A stream that ends without EndOfStream returns the
// bytes decoded so far along with ErrTruncated.
func Decode(data []byte) ([]byte, error) {
	d := &decoder{
		br: bitio.NewReader(data),
		// Decoded assets are typically a few times larger than the stream.
		out: make([]byte, 0, 4*len(data)),
	}
	d.reset()

	for {
		code, ok := d.br.ReadCode(d.width)
		if !ok {
			return d.out, ErrTruncated
		}
		switch {
		case code == EndOfStream:
			return d.out, nil
		case code == Reset:
			d.reset()
			code, ok = d.br.ReadCode(d.width)
			if !ok {
				return d.out, ErrTruncated
			}
			if code == EndOfStream {
				// Reset directly followed by EndOfStream is an empty stream.
				return d.out, nil
			}
			// Any other code following a reset is a literal byte.
			seq := []byte{byte(code)}
			d.out = append(d.out, seq...)
			d.prev = seq
		case d.inTable(int(code)):
			seq := d.table[code]
			d.out = append(d.out, seq...)
			d.add(append(append([]byte{}, d.prev...), seq[0]))
			d.prev = seq
		case len(d.prev) > 0:
			// The classic KwKwK case: the encoder referenced the entry it
			// is about to create, so it must be prev plus prev's first byte.
			seq := append(append([]byte{}, d.prev...), d.prev[0])
			d.add(seq)
			d.out = append(d.out, seq...)
			d.prev = seq
		}
	}
}

// reset restores the initial dictionary, width and threshold.
func (d *decoder) reset() {
	if d.table == nil {
		d.table = make([][]byte, firstDynamicCode, 1<<maxCodeBits)
		for i := 0; i < 256; i++ {
			d.table[i] = []byte{byte(i)}
		}
	} else {
		d.table = d.table[:firstDynamicCode]
	}
	d.nextCode = firstDynamicCode
	d.width = initialCodeBits
	d.grow = initialGrowThreshold
	d.prev = nil
}

func (d *decoder) inTable(code int) bool {
	return code < len(d.table) && d.table[code] != nil
}

// add registers seq under the next free code and widens the read width once
// the dictionary reaches the current width's capacity. The decoder widens on
// insert (not one code later like the encoder) so that its read width always
// matches the width the encoder used for the next code. There is no
// automatic reset at the 12-bit ceiling; the encoder signals one explicitly.
func (d *decoder) add(seq []byte) {
	d.table = append(d.table, seq)
	d.nextCode++
	if d.nextCode >= d.grow && d.width != maxCodeBits {
		d.width++
		d.grow <<= 1
	}
}
