package td3

import (
	"errors"
	"fmt"
	"image/color"
)

// PaletteFileSize is the number of palette bytes a companion palette file
// must supply: 112 RGB triples for palette entries 16..127.
const PaletteFileSize = 336

// basePalette holds the 16 fixed palette entries as 6-bit VGA triples,
// expanded with << 2 like the file-supplied entries.
var basePalette = [48]uint8{
	0x00, 0x00, 0x00,
	0x00, 0x00, 0x28,
	0x00, 0x28, 0x00,
	0x00, 0x28, 0x28,
	0x28, 0x00, 0x00,
	0x28, 0x00, 0x28,
	0x28, 0x14, 0x00,
	0x28, 0x28, 0x28,
	0x14, 0x14, 0x14,
	0x14, 0x14, 0x3c,
	0x14, 0x3c, 0x14,
	0x14, 0x3c, 0x3c,
	0x3c, 0x14, 0x14,
	0x3c, 0x14, 0x3c,
	0x3c, 0x3c, 0x14,
	0x3c, 0x3c, 0x3c,
}

// ErrShortPalette is returned when a palette file holds fewer than
// PaletteFileSize bytes.
var ErrShortPalette = errors.New("td3: palette file too short")

// LoadPalette builds the full 256-entry palette from the contents of a
// palette file. Entries 0..15 are the fixed base colours, 16..127 come from
// the first 336 bytes of data, and the remainder are opaque black. Channels
// are 6-bit VGA values shifted left by 2.
func LoadPalette(data []byte) (color.Palette, error) {
	if len(data) < PaletteFileSize {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ErrShortPalette, len(data), PaletteFileSize)
	}

	pal := make(color.Palette, 256)
	for i := 0; i < 16; i++ {
		pal[i] = color.RGBA{
			R: basePalette[i*3] << 2,
			G: basePalette[i*3+1] << 2,
			B: basePalette[i*3+2] << 2,
			A: 0xff,
		}
	}
	for i := 0; i < PaletteFileSize/3; i++ {
		pal[16+i] = color.RGBA{
			R: data[i*3] << 2,
			G: data[i*3+1] << 2,
			B: data[i*3+2] << 2,
			A: 0xff,
		}
	}
	for i := 16 + PaletteFileSize/3; i < 256; i++ {
		pal[i] = color.RGBA{A: 0xff}
	}
	return pal, nil
}
