// Package td3 decodes and encodes the compressed paletted images found in a
// classic DOS racing game's asset archives.
//
// An image asset is a variable-width LZW stream (see internal/lzw) whose
// decoded payload is run-length encoded pixel data (see internal/rle),
// stored bottom-up. The pixel values index a 256-entry VGA palette built
// from 16 fixed base colours plus 112 colours supplied by a companion
// palette file.
//
// Decoding an asset:
//
//	pal, err := td3.LoadPalette(palData)
//	img, err := td3.DecodeImage(lzData, 320, pal)
//
// The result is an *image.Paletted, ready for image/png. Encoding reverses
// the pipeline and produces a stream the game itself can load.
//
// The archive subpackage locates and extracts the game's data archives; the
// td3x command ties both together.
package td3
