package keyer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"edgekey/edge"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/mat"
)

type Params struct {
	KernelSize int
	EdgeValue  float64
	Chromakey  color.Color
	// Fill is painted on edge pixels. nil copies the source pixel instead.
	Fill color.Color
}

// Result holds every stage of one run.
type Result struct {
	Source image.Image
	Gray   *image.NRGBA
	Data   *mat.Dense
	Kernel *mat.Dense
	Conv   *mat.Dense
	Mask   *edge.Mask
	Output *image.NRGBA
}

// Process runs grayscale conversion, convolution, thresholding and
// compositing over img, which must already be mirrored/flipped.
func Process(logger *slog.Logger, img image.Image, p Params) (*Result, error) {
	if img.Bounds().Empty() {
		return nil, edge.ErrEmptyImage
	}

	k, err := edge.BuildKernel(p.KernelSize)
	if err != nil {
		return nil, err
	}

	res := &Result{Source: img, Kernel: k}
	res.Gray = edge.Grayscale(img)
	res.Data = edge.GrayMatrix(res.Gray)
	res.Conv = edge.Convolve(res.Data, k)
	res.Mask = edge.Threshold(res.Conv, p.EdgeValue)

	if logger.Enabled(context.Background(), slog.LevelDebug) {
		logConvolution(logger, res)
	}

	if res.Output, err = edge.Composite(img, res.Mask, p.Chromakey, p.Fill); err != nil {
		return nil, fmt.Errorf("could not composite image: %w", err)
	}
	return res, nil
}

func logConvolution(logger *slog.Logger, res *Result) {
	rows, cols := res.Conv.Dims()
	values := make(stats.Float64Data, 0, rows*cols)
	for y := range rows {
		values = append(values, res.Conv.RawRowView(y)...)
	}

	lo, _ := values.Min()
	hi, _ := values.Max()
	mean, _ := values.Mean()
	logger.Debug("convolution", "min", lo, "max", hi, "mean", mean,
		"edges", res.Mask.Count(), "pixels", rows*cols)
}
