package edge

import (
	"gonum.org/v1/gonum/mat"
)

// Convolve convolves data with kernel using a constant zero boundary. The
// kernel is flipped and centred on row/column n/2 (integer division), so
// even-sized kernels lean towards the lower-right neighbours:
//
//	out[y][x] = Σ k[i][j] · data[y+n/2-i][x+n/2-j]
//
// The result has the same shape as data.
func Convolve(data, kernel mat.Matrix) *mat.Dense {
	rows, cols := data.Dims()
	kr, kc := kernel.Dims()
	cr, cc := kr/2, kc/2

	out := mat.NewDense(rows, cols, nil)
	for y := range rows {
		for x := range cols {
			var sum float64
			for i := range kr {
				sy := y + cr - i
				if sy < 0 || sy >= rows {
					continue
				}
				for j := range kc {
					sx := x + cc - j
					if sx < 0 || sx >= cols {
						continue
					}
					sum += kernel.At(i, j) * data.At(sy, sx)
				}
			}
			out.Set(y, x, sum)
		}
	}
	return out
}
