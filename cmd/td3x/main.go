// Command td3x extracts, decodes and patches the game's asset archives.
//
// Usage:
//
//	td3x x                            extract all assets into the current directory
//	td3x p                            patch TD3.EXE → TD3_U.EXE
//	td3x d <in.lz> <out>              decompress one LZW stream
//	td3x c <in> <out.lz>              compress one file to an LZW stream
//	td3x png -w N -pal <file> <in.lz> decode an LZ image to an indexed PNG
//	td3x lz <in.png>                  encode an indexed PNG to an LZ image
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/deepteams/td3"
	"github.com/deepteams/td3/archive"
	"github.com/deepteams/td3/internal/lzw"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "x":
		err = runExtract(os.Args[2:])
	case "p":
		err = runPatch(os.Args[2:])
	case "d":
		err = runDecompress(os.Args[2:])
	case "c":
		err = runCompress(os.Args[2:])
	case "png":
		err = runPNG(os.Args[2:])
	case "lz":
		err = runLZ(os.Args[2:])
	case "-h", "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "td3x: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "td3x: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage:
  td3x x                            Extract all assets from the game files in
                                    the current directory
  td3x p                            Patch TD3.EXE to load loose files (writes TD3_U.EXE)
  td3x d <in.lz> <out>              Decompress an LZW compressed file
  td3x c <in> <out.lz>              Compress a file to an LZW stream
  td3x png -w N -pal <file> <in.lz> Decode an LZ image to an indexed PNG
  td3x lz <in.png>                  Encode an indexed PNG to an LZ image

Run "td3x <command> -h" for command-specific options.
`)
}

// --- x ---

func runExtract(args []string) error {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	dir := fs.String("dir", "", "directory holding the game files (default: current)")
	out := fs.String("o", "", "output directory (default: current)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	x := &archive.Extractor{
		Dir:    *dir,
		OutDir: *out,
		Progress: func(name string) {
			fmt.Printf("Extracting: %s\n", name)
		},
	}
	return x.ExtractAll()
}

// --- p ---

func runPatch(args []string) error {
	fs := flag.NewFlagSet("p", flag.ContinueOnError)
	out := fs.String("o", "TD3_U.EXE", "output path for the patched executable")
	if err := fs.Parse(args); err != nil {
		return err
	}

	exe, err := os.ReadFile(archive.ExeName)
	if err != nil {
		return err
	}
	patched, offset, err := archive.PatchExecutable(exe)
	if err != nil {
		return err
	}

	fmt.Printf("Found offset of file info table at 0x%x\n", offset)
	fmt.Printf("Patching %s -> %s\n", archive.ExeName, *out)
	if err := os.WriteFile(*out, patched, 0o644); err != nil {
		return err
	}
	fmt.Println("Done.")
	return nil
}

// --- d / c ---

func runDecompress(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("d: missing arguments\nUsage: td3x d <in.lz> <out>")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	raw, err := lzw.Decode(data)
	if err != nil {
		return fmt.Errorf("d: %s: %w", args[0], err)
	}
	return os.WriteFile(args[1], raw, 0o644)
}

func runCompress(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("c: missing arguments\nUsage: td3x c <in> <out.lz>")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	return os.WriteFile(args[1], lzw.Encode(data), 0o644)
}

// --- png ---

func runPNG(args []string) error {
	fs := flag.NewFlagSet("png", flag.ContinueOnError)
	width := fs.Int("w", 0, "image width in pixels (required)")
	palPath := fs.String("pal", "", "companion palette file (required)")
	output := fs.String("o", "", "output path (default: <input>.png)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("png: missing input file\nUsage: td3x png -w N -pal <file> <in.lz>")
	}
	if *width <= 0 {
		return fmt.Errorf("png: -w is required")
	}
	if *palPath == "" {
		return fmt.Errorf("png: -pal is required")
	}
	inputPath := fs.Arg(0)

	palData, err := os.ReadFile(*palPath)
	if err != nil {
		return err
	}
	pal, err := td3.LoadPalette(palData)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}
	img, err := td3.DecodeImage(data, *width, pal)
	if err != nil {
		return fmt.Errorf("png: %s: %w", inputPath, err)
	}

	outputPath := *output
	if outputPath == "" {
		base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		outputPath = base + ".png"
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		os.Remove(outputPath)
		return fmt.Errorf("png: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(outputPath)
		return err
	}

	b := img.Bounds()
	fmt.Fprintf(os.Stderr, "Decoded %s → %s (%dx%d)\n", inputPath, outputPath, b.Dx(), b.Dy())
	return nil
}

// --- lz ---

func runLZ(args []string) error {
	fs := flag.NewFlagSet("lz", flag.ContinueOnError)
	output := fs.String("o", "", "output path (default: <input>.LZ)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("lz: missing input file\nUsage: td3x lz <in.png>")
	}
	inputPath := fs.Arg(0)

	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	img, err := png.Decode(in)
	in.Close()
	if err != nil {
		return fmt.Errorf("lz: decoding input: %w", err)
	}
	paletted, ok := img.(*image.Paletted)
	if !ok {
		return fmt.Errorf("lz: %s: only 8-bit indexed PNG files allowed", inputPath)
	}

	outputPath := *output
	if outputPath == "" {
		base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		outputPath = base + ".LZ"
	}

	if err := os.WriteFile(outputPath, td3.EncodeImage(paletted), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Encoded %s → %s\n", inputPath, outputPath)
	return nil
}
