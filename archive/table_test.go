package archive

import (
	"errors"
	"testing"
)

// magicBytes is TableMagic in scan order (big-endian).
var magicBytes = []byte{0xEF, 0x0E, 0x4D, 0x4C}

// fillerBuf returns n bytes of filler that cannot contain the signature.
func fillerBuf(n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = 0x55
	}
	return buf
}

func TestFindTableOffset(t *testing.T) {
	exe := fillerBuf(10000)
	copy(exe[1234:], magicBytes)

	offset, err := FindTableOffset(exe)
	if err != nil {
		t.Fatalf("FindTableOffset: %v", err)
	}
	if offset != 1234 {
		t.Errorf("offset = %d, want 1234", offset)
	}
}

func TestFindTableOffset_AtStart(t *testing.T) {
	exe := fillerBuf(100)
	copy(exe, magicBytes)

	offset, err := FindTableOffset(exe)
	if err != nil {
		t.Fatalf("FindTableOffset: %v", err)
	}
	if offset != 0 {
		t.Errorf("offset = %d, want 0", offset)
	}
}

func TestFindTableOffset_FirstMatchWins(t *testing.T) {
	exe := fillerBuf(1000)
	copy(exe[300:], magicBytes)
	copy(exe[700:], magicBytes)

	offset, err := FindTableOffset(exe)
	if err != nil {
		t.Fatalf("FindTableOffset: %v", err)
	}
	if offset != 300 {
		t.Errorf("offset = %d, want 300", offset)
	}
}

func TestFindTableOffset_Missing(t *testing.T) {
	_, err := FindTableOffset(fillerBuf(10000))
	if !errors.Is(err, ErrTableNotFound) {
		t.Errorf("error = %v, want ErrTableNotFound", err)
	}

	// Too short to hold the signature at all.
	_, err = FindTableOffset(magicBytes[:3])
	if !errors.Is(err, ErrTableNotFound) {
		t.Errorf("short buffer error = %v, want ErrTableNotFound", err)
	}
}
