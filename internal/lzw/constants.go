// Package lzw implements the variable-width LZW codec used by the game's
// compressed asset streams.
//
// Codes are 9 to 12 bits wide, packed LSB-first (see internal/bitio). Two
// code values are reserved: Reset (0x100) discards the dynamic dictionary
// and returns to 9-bit codes, EndOfStream (0x101) terminates the stream.
// Dynamic dictionary entries start at 0x102, and the code width grows by one
// bit each time the next free code reaches the width's capacity, up to the
// 12-bit ceiling. The encoder emits an explicit Reset when the 12-bit code
// space is exhausted, so encoder and decoder dictionaries stay in lock-step
// for the whole stream.
package lzw

import "errors"

const (
	// Reset discards the dynamic dictionary and returns to 9-bit codes.
	Reset = 0x100
	// EndOfStream terminates the code stream; no code follows it.
	EndOfStream = 0x101

	// firstDynamicCode is the first code value available for dictionary
	// entries (0x100 and 0x101 are reserved).
	firstDynamicCode = 0x102

	// initialCodeBits is the code width after a reset.
	initialCodeBits = 9
	// maxCodeBits is the width ceiling; growth stops here.
	maxCodeBits = 12

	// initialGrowThreshold is the next-code value at which the width first
	// grows (doubled on each increment).
	initialGrowThreshold = 0x200
)

// ErrTruncated is returned when a stream ends before an EndOfStream code.
var ErrTruncated = errors.New("lzw: truncated stream")
