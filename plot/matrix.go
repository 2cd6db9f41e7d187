package plot

import (
	"fmt"
	"image"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/mat"
)

// Range returns the smallest and largest value of m.
func Range(m mat.Matrix) (lo, hi float64, err error) {
	values := Values(m)
	if lo, err = stats.Min(values); err != nil {
		return 0, 0, fmt.Errorf("could not compute minimum: %w", err)
	}
	if hi, err = stats.Max(values); err != nil {
		return 0, 0, fmt.Errorf("could not compute maximum: %w", err)
	}
	return lo, hi, nil
}

// Values flattens m row by row.
func Values(m mat.Matrix) stats.Float64Data {
	rows, cols := m.Dims()
	values := make(stats.Float64Data, 0, rows*cols)
	for y := range rows {
		for x := range cols {
			values = append(values, m.At(y, x))
		}
	}
	return values
}

// MatrixImage renders m the way imshow does: one pixel per cell, row y at
// image row y, values normalised linearly from min..max onto cm. A constant
// matrix renders with the low end of cm.
func MatrixImage(m mat.Matrix, cm Colormap) (*image.RGBA, error) {
	lo, hi, err := Range(m)
	if err != nil {
		return nil, err
	}

	rows, cols := m.Dims()
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	span := hi - lo
	for y := range rows {
		for x := range cols {
			var t float64
			if span > 0 {
				t = (m.At(y, x) - lo) / span
			}
			img.Set(x, y, cm(t))
		}
	}
	return img, nil
}
