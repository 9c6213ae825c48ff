package rle

import (
	"bytes"
	"testing"
)

func TestUnpack(t *testing.T) {
	tests := []struct {
		name   string
		packed []byte
		want   []byte
	}{
		{"even run", []byte{0xAA, 0x04}, bytes.Repeat([]byte{0xAA}, 4)},
		{"odd run", []byte{0x11, 0x03}, []byte{0x11, 0x11, 0x11}},
		{"single byte", []byte{0x42, 0x01}, []byte{0x42}},
		{"zero length", []byte{0x42, 0x00}, nil},
		{"max run", []byte{0x07, 0xFF}, bytes.Repeat([]byte{0x07}, 255)},
		{"two pairs", []byte{0x01, 0x02, 0x02, 0x03}, []byte{0x01, 0x01, 0x02, 0x02, 0x02}},
		{"empty", nil, nil},
		{"dangling value byte", []byte{0x42}, nil},
	}
	for _, tt := range tests {
		if got := Unpack(tt.packed); !bytes.Equal(got, tt.want) {
			t.Errorf("%s: Unpack(%x) = %x, want %x", tt.name, tt.packed, got, tt.want)
		}
	}
}

func TestPack(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want []byte
	}{
		{"five of a kind", bytes.Repeat([]byte{0xAA}, 5), []byte{0xAA, 0x05}},
		{"three of a kind", []byte{0x11, 0x11, 0x11}, []byte{0x11, 0x03}},
		{"no runs", []byte{0x01, 0x02, 0x03}, []byte{0x01, 0x01, 0x02, 0x01, 0x03, 0x01}},
		{"empty", nil, nil},
		{"run split at 255", bytes.Repeat([]byte{0x07}, 600), []byte{0x07, 0xFF, 0x07, 0xFF, 0x07, 0x5A}},
	}
	for _, tt := range tests {
		if got := Pack(tt.data); !bytes.Equal(got, tt.want) {
			t.Errorf("%s: Pack = %x, want %x", tt.name, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	// Deterministic few-symbol noise gives a mix of runs and singletons.
	x := uint32(1)
	data := make([]byte, 5000)
	for i := range data {
		x = x*1103515245 + 12345
		data[i] = byte(x>>16) & 0x03
	}

	if got := Unpack(Pack(data)); !bytes.Equal(got, data) {
		t.Error("round trip mismatch")
	}
}

func TestRoundTrip_LongRuns(t *testing.T) {
	var data []byte
	data = append(data, bytes.Repeat([]byte{0x00}, 1000)...)
	data = append(data, 0x01)
	data = append(data, bytes.Repeat([]byte{0xFF}, 255)...)
	data = append(data, bytes.Repeat([]byte{0x02}, 256)...)

	if got := Unpack(Pack(data)); !bytes.Equal(got, data) {
		t.Error("round trip mismatch on long runs")
	}
}
