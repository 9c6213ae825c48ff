package td3

import (
	"errors"
	"image/color"
	"testing"
)

func TestLoadPalette(t *testing.T) {
	data := make([]byte, PaletteFileSize)
	for i := range data {
		data[i] = byte(i) & 0x3f
	}

	pal, err := LoadPalette(data)
	if err != nil {
		t.Fatalf("LoadPalette: %v", err)
	}
	if len(pal) != 256 {
		t.Fatalf("palette has %d entries, want 256", len(pal))
	}

	// Entry 0 is base black; entry 1 is the base dark blue (0x28 << 2).
	if pal[0] != (color.RGBA{0, 0, 0, 0xff}) {
		t.Errorf("entry 0 = %v, want opaque black", pal[0])
	}
	if pal[1] != (color.RGBA{0, 0, 0xa0, 0xff}) {
		t.Errorf("entry 1 = %v, want {0,0,0xa0,0xff}", pal[1])
	}

	// Entry 16 comes from the file's first triple, each channel << 2.
	want := color.RGBA{data[0] << 2, data[1] << 2, data[2] << 2, 0xff}
	if pal[16] != want {
		t.Errorf("entry 16 = %v, want %v", pal[16], want)
	}

	// Entries beyond the file-supplied range are opaque black.
	if pal[128] != (color.RGBA{A: 0xff}) {
		t.Errorf("entry 128 = %v, want opaque black", pal[128])
	}
	if pal[255] != (color.RGBA{A: 0xff}) {
		t.Errorf("entry 255 = %v, want opaque black", pal[255])
	}
}

func TestLoadPalette_ExtraBytesIgnored(t *testing.T) {
	// Palette files may carry trailing data; only the first 336 bytes count.
	data := make([]byte, PaletteFileSize+100)
	data[0] = 0x3f
	pal, err := LoadPalette(data)
	if err != nil {
		t.Fatalf("LoadPalette: %v", err)
	}
	if pal[16] != (color.RGBA{0xfc, 0, 0, 0xff}) {
		t.Errorf("entry 16 = %v, want {0xfc,0,0,0xff}", pal[16])
	}
}

func TestLoadPalette_Short(t *testing.T) {
	if _, err := LoadPalette(make([]byte, PaletteFileSize-1)); !errors.Is(err, ErrShortPalette) {
		t.Errorf("error = %v, want ErrShortPalette", err)
	}
}
