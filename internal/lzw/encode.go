package lzw

import "github.com/deepteams/td3/internal/bitio"

// encoder holds the dictionary and width state for one Encode call.
type encoder struct {
	bw *bitio.Writer

	// table maps a byte sequence to its code. Seeded with the 256
	// single-byte sequences; dynamic entries start at firstDynamicCode.
	table    map[string]uint32
	nextCode int
	width    int
	grow     int
}

// Encode compresses data into an LZW stream the game's decoder accepts.
//
// The stream always opens with a Reset code and ends with EndOfStream.
// Greedy longest-match: the scan extends the current sequence while it stays
// in the dictionary, then emits the matched code, registers the one-byte
// extension and rewinds a byte. When registering an entry would exceed the
// 12-bit code space, a Reset is emitted mid-stream and the dictionary starts
// over.
func Encode(data []byte) []byte {
	e := &encoder{bw: bitio.NewWriter(len(data)/2 + 16)}
	e.reset()
	e.writeCode(Reset)

	pos := 0
	for pos < len(data) {
		start := pos
		pos++
		seqEnd := pos // longest match: data[start:seqEnd]
		newEnd := pos // over-extended probe: data[start:newEnd]
		for e.inTable(data[start:newEnd]) && pos < len(data) {
			newEnd++
			pos++
			if e.inTable(data[start:newEnd]) {
				seqEnd = newEnd
			}
		}
		e.writeCode(e.table[string(data[start:seqEnd])])
		if seqEnd != newEnd {
			e.add(data[start:newEnd])
			pos--
		}
	}

	e.writeCode(EndOfStream)
	return e.bw.Finish()
}

func (e *encoder) reset() {
	e.table = make(map[string]uint32, 512)
	for i := 0; i < 256; i++ {
		e.table[string([]byte{byte(i)})] = uint32(i)
	}
	e.nextCode = firstDynamicCode
	e.width = initialCodeBits
	e.grow = initialGrowThreshold
}

func (e *encoder) inTable(seq []byte) bool {
	_, ok := e.table[string(seq)]
	return ok
}

func (e *encoder) writeCode(code uint32) {
	e.bw.WriteCode(code, e.width)
}

// add registers seq under the next free code. The width grows one code later
// than the decoder's threshold (grow+1 rather than grow): the decoder widens
// on insert for its *next* read, so both sides agree on the width of every
// code. At the 12-bit ceiling the encoder instead emits Reset and starts the
// dictionary over before the decoder would outgrow the code space.
func (e *encoder) add(seq []byte) {
	e.table[string(seq)] = uint32(e.nextCode)
	e.nextCode++
	if e.nextCode >= e.grow+1 {
		if e.width == maxCodeBits {
			e.writeCode(Reset)
			e.reset()
		} else {
			e.width++
			e.grow <<= 1
		}
	}
}
