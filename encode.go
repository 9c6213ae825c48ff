package td3

import (
	"image"

	"github.com/deepteams/td3/internal/lzw"
	"github.com/deepteams/td3/internal/rle"
)

// EncodeImage compresses a paletted image into an LZW stream the game can
// load. Rows are written bottom-up, run-length packed, then LZW encoded —
// the exact inverse of DecodeImage. The palette is not part of the stream;
// the game reads it from the asset's companion palette file.
func EncodeImage(img *image.Paletted) []byte {
	width := img.Rect.Dx()
	height := img.Rect.Dy()

	flipped := make([]byte, 0, width*height)
	for y := 0; y < height; y++ {
		row := (height - 1 - y) * img.Stride
		flipped = append(flipped, img.Pix[row:row+width]...)
	}

	return lzw.Encode(rle.Pack(flipped))
}
