package edge

import (
	"image"
	"image/color"

	"gonum.org/v1/gonum/mat"
)

// Grayscale returns a copy of img where every pixel holds the truncated
// average of its 8-bit red, green and blue channels. Alpha is kept.
func Grayscale(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			v := average(c)
			dst.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: c.A})
		}
	}
	return dst
}

// GrayMatrix returns the grayscale values of img as an H×W matrix: row y,
// column x, relative to the image origin.
func GrayMatrix(img image.Image) *mat.Dense {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	data := make([]float64, w*h)
	for y := range h {
		for x := range w {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			data[y*w+x] = float64(average(c))
		}
	}
	return mat.NewDense(h, w, data)
}

func average(c color.NRGBA) uint8 {
	return uint8((int(c.R) + int(c.G) + int(c.B)) / 3)
}
