// Package sample turns image files into the bounded pixel sample the
// quantizer works on.
package sample

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

// Size of the thumbnail every image is reduced to before sampling.
const Size = 256

// Decode opens and decodes the image at path.
func Decode(path string) (image.Image, string, error) {
	imgFile, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("could not open image %q: %w", path, err)
	}
	defer func() {
		if closeErr := imgFile.Close(); closeErr != nil {
			slog.Error("could not close image", "file", path, "error", closeErr)
		}
	}()

	img, imgType, err := image.Decode(imgFile)
	if err != nil {
		return nil, "", fmt.Errorf("could not decode image %q: %w", path, err)
	}
	return img, imgType, nil
}

// Thumbnail scales img to exactly width x height, ignoring its aspect ratio.
func Thumbnail(logger *slog.Logger, img image.Image, width, height int) image.Image {
	srcBounds := img.Bounds()
	if srcBounds.Dx() == width && srcBounds.Dy() == height {
		return img
	}

	logger.Debug("resizing", "from_width", srcBounds.Dx(), "from_height", srcBounds.Dy(),
		"width", width, "height", height)
	if srcBounds.Empty() {
		return image.NewNRGBA(image.Rectangle{})
	}
	dest := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dest, dest.Bounds(), img, srcBounds, draw.Src, nil)

	return dest
}

// Load decodes the image at path and returns its thumbnail.
func Load(path string) (image.Image, error) {
	logger := slog.Default().With("file", path)

	img, imgType, err := Decode(path)
	if err != nil {
		return nil, err
	}
	logger.Info("decoded image", "format", imgType,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	return Thumbnail(logger, img, Size, Size), nil
}
