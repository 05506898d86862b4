package palette

import (
	"fmt"
	"log/slog"

	"walrus/quantize"
	"walrus/sample"
)

// Options controls palette generation.
type Options struct {
	Backend string
	Light   bool
	// Saturation applied to accent slots; 1 keeps the extracted saturation.
	Saturation float32
}

// Generate builds the palette for the image at path.
func Generate(path string, opts Options) (Palette, error) {
	backend, err := quantize.Lookup(opts.Backend)
	if err != nil {
		return Palette{}, err
	}

	img, err := sample.Load(path)
	if err != nil {
		return Palette{}, err
	}

	res, err := backend(img)
	if err != nil {
		return Palette{}, fmt.Errorf("could not extract colors from %q: %w", path, err)
	}
	slog.Info("extracted colors", "file", path, "backend", opts.Backend,
		"colors", len(res.Colors), "dominant", res.Dominant.Hex())

	return FromResult(res, opts)
}

// FromResult adjusts quantized colors into a palette.
func FromResult(res quantize.Result, opts Options) (Palette, error) {
	p, err := Adjust(res.Palette(), opts.Light)
	if err != nil {
		return p, err
	}

	if opts.Saturation != 1 {
		p = p.Saturate(opts.Saturation)
	}
	return p, nil
}
