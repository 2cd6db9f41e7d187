package edge

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	MinKernelSize = 2
	MaxKernelSize = 99
)

var (
	ErrKernelSize   = errors.New("kernel size out of range")
	ErrSizeMismatch = errors.New("mask and image sizes differ")
	ErrEmptyImage   = errors.New("image has no pixels")
)

// BuildKernel returns the n×n directional edge kernel. Rows come first:
// At(i, j) is row i, column j.
//
// The rules are applied in order, later ones overwriting earlier ones:
// every cell starts at 1, the anti-diagonal (n-1-i, i) is set to -n,
// cells with i+j == n are set to n and cells with i+j > n to -1.
func BuildKernel(n int) (*mat.Dense, error) {
	if n < MinKernelSize || n > MaxKernelSize {
		return nil, fmt.Errorf("%w: %d not in %d..%d", ErrKernelSize, n, MinKernelSize, MaxKernelSize)
	}

	data := make([]float64, n*n)
	for i := range data {
		data[i] = 1
	}
	k := mat.NewDense(n, n, data)

	for i := range n {
		k.Set(n-1-i, i, float64(-n))
	}
	for i := range n {
		for j := range n {
			if i+j == n {
				k.Set(i, j, float64(n))
			}
		}
	}
	for i := range n {
		for j := range n {
			if i+j > n {
				k.Set(i, j, -1)
			}
		}
	}

	return k, nil
}
