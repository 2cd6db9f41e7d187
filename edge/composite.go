package edge

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Composite builds the keyed output. The canvas starts filled with key; every
// pixel set in mask receives fill, or the matching src pixel when fill is nil.
// A nil key is opaque black. src and mask must have the same dimensions.
func Composite(src image.Image, mask *Mask, key, fill color.Color) (*image.NRGBA, error) {
	b := src.Bounds()
	if b.Dx() != mask.width || b.Dy() != mask.height {
		return nil, fmt.Errorf("%w: image %dx%d, mask %dx%d", ErrSizeMismatch,
			b.Dx(), b.Dy(), mask.width, mask.height)
	}

	if key == nil {
		key = color.NRGBA{A: 0xFF}
	}

	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, image.NewUniform(key), image.Point{}, draw.Src)

	var fillNRGBA color.NRGBA
	if fill != nil {
		fillNRGBA = color.NRGBAModel.Convert(fill).(color.NRGBA)
	}

	for y := range mask.height {
		for x := range mask.width {
			if !mask.data[y*mask.width+x] {
				continue
			}
			px, py := b.Min.X+x, b.Min.Y+y
			if fill != nil {
				dst.SetNRGBA(px, py, fillNRGBA)
			} else {
				dst.Set(px, py, src.At(px, py))
			}
		}
	}
	return dst, nil
}
