package td3

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/deepteams/td3/internal/lzw"
	"github.com/deepteams/td3/internal/rle"
)

// ErrBadWidth is returned when the decoded pixel count is not a multiple of
// the requested image width.
var ErrBadWidth = errors.New("td3: insufficient image data for specified width")

// DecodeImage decodes a compressed image asset into an *image.Paletted.
//
// data is the raw LZW stream; width is the image width in pixels, which the
// asset itself does not record; pal is the 256-entry palette, typically from
// LoadPalette. The height follows from the decoded pixel count. The payload
// is stored bottom-up and is flipped into the usual top-down row order.
func DecodeImage(data []byte, width int, pal color.Palette) (*image.Paletted, error) {
	if width <= 0 {
		return nil, fmt.Errorf("td3: invalid width %d", width)
	}

	payload, err := lzw.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("td3: decoding image stream: %w", err)
	}
	pixels := rle.Unpack(payload)

	if len(pixels)%width != 0 {
		return nil, fmt.Errorf("%w: %d pixels, width %d", ErrBadWidth, len(pixels), width)
	}
	height := len(pixels) / width

	img := image.NewPaletted(image.Rect(0, 0, width, height), pal)
	for y := 0; y < height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+width], pixels[(height-1-y)*width:])
	}
	return img, nil
}
