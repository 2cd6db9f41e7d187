package keyer

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

func load(logger *slog.Logger, path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("could not open image %q: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logger.Error("could not close image", "error", closeErr)
		}
	}()

	img, imgType, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("could not decode image %q: %w", path, err)
	}
	return img, imgType, nil
}

// Orient mirrors (left-right) and then flips (top-bottom) img as requested.
// Flipping happens on non-premultiplied pixels, so translucent pixels keep
// their exact values. img is never modified.
func Orient(logger *slog.Logger, img image.Image, mirror, flip bool) image.Image {
	if mirror {
		logger.Info("mirroring image")
		img = imaging.FlipH(img)
	}
	if flip {
		logger.Info("flipping image")
		img = imaging.FlipV(img)
	}
	return img
}
