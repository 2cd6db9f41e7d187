package keyer

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"

	"edgekey/edge"
	"edgekey/plot"

	"github.com/alecthomas/kong"
)

const usageHint = `You should choose at least one of the following options:
 - output file
 - print option
`

// plotWidth caps the width of each panel of the diagnostic sheet.
const plotWidth = 800

type CLICmd struct {
	Input      string `arg:"" help:"Input image" placeholder:"/path/to/input/file"`
	Output     string `short:"o" help:"Output image. Format follows the extension unless --format is given" placeholder:"/path/to/output/file"`
	Print      bool   `short:"p" help:"Render and show the diagnostic plot"`
	Mirror     bool   `short:"m" help:"Flip the input image horizontally"`
	Flip       bool   `short:"f" help:"Flip the input image vertically"`
	KernelSize int    `short:"k" help:"Size of the kernel matrix (2..99)" default:"6"`
	EdgeValue  int    `short:"e" help:"Minimum convolution value considered an edge" default:"200"`
	Chromakey  RGB    `help:"Chromakey color, each channel 0..254" placeholder:"R G B"`
	FillColor  RGB    `help:"Fill color for edges. If not given, the original pixel is kept" placeholder:"R G B"`
	Format     string `help:"Output encoder" enum:"same,png,jpeg,gif,bmp,tiff" default:"same"`
	PlotFile   string `help:"Where the diagnostic plot is written. Defaults to a temporary PNG file" group:"plot"`
	NoView     bool   `help:"Do not open the diagnostic plot in an image viewer" group:"plot"`
	Colormap   string `help:"Colormap of the convolution panel" enum:"gray,diverging" default:"gray" group:"plot"`

	Stdout io.Writer          `kong:"-"`
	Show   func(string) error `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if c.KernelSize < edge.MinKernelSize || c.KernelSize > edge.MaxKernelSize {
		return fmt.Errorf("invalid kernel size %d: must be in %d..%d",
			c.KernelSize, edge.MinKernelSize, edge.MaxKernelSize)
	}

	if c.Output != "" {
		if _, err := outputFormat(c.Output, c.Format); err != nil {
			return err
		}
	}

	if _, err := plot.ColormapByName(c.Colormap); err != nil {
		return err
	}

	return nil
}

func (c *CLICmd) Params() Params {
	p := Params{
		KernelSize: c.KernelSize,
		EdgeValue:  float64(c.EdgeValue),
		Chromakey:  c.Chromakey.Color(),
	}
	if c.FillColor.IsSet() {
		p.Fill = c.FillColor.Color()
	}
	return p
}

func (c *CLICmd) Run(logger *slog.Logger) error {
	if c.Output == "" && !c.Print {
		stdout := c.Stdout
		if stdout == nil {
			stdout = os.Stdout
		}
		_, err := fmt.Fprint(stdout, usageHint)
		return err
	}

	logger = logger.With("file", c.Input)

	img, imgType, err := load(logger, c.Input)
	if err != nil {
		return err
	}
	logger.Info("loaded image", "format", imgType,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	img = Orient(logger, img, c.Mirror, c.Flip)

	res, err := Process(logger, img, c.Params())
	if err != nil {
		return fmt.Errorf("could not process image %q: %w", c.Input, err)
	}
	logger.Info("edges detected", "kernel", c.KernelSize, "edge", c.EdgeValue, "pixels", res.Mask.Count())

	if c.Output != "" {
		logger.Info("saving image", "output", c.Output)
		if err := save(res.Output, c.Output, c.Format); err != nil {
			return err
		}
	}

	if c.Print {
		if err := c.plot(logger, res); err != nil {
			return err
		}
	}

	return nil
}

func (c *CLICmd) plot(logger *slog.Logger, res *Result) error {
	cm, err := plot.ColormapByName(c.Colormap)
	if err != nil {
		return err
	}

	sheet, err := Sheet(res, cm)
	if err != nil {
		return err
	}

	path := c.PlotFile
	if path == "" {
		if path, err = tempPlotFile(); err != nil {
			return err
		}
	}

	logger.Info("saving plot", "plot", path)
	if err := save(sheet, path, "png"); err != nil {
		return err
	}

	if c.NoView {
		return nil
	}
	show := c.Show
	if show == nil {
		show = plot.Show
	}
	if err := show(path); err != nil {
		logger.Warn("could not show plot", "plot", path, "error", err)
	}
	return nil
}

// Sheet renders the 2×2 diagnostic plot of res: grayscale data, convolution
// result, original image and final image.
func Sheet(res *Result, cm plot.Colormap) (image.Image, error) {
	data, err := plot.MatrixImage(res.Data, plot.Gray)
	if err != nil {
		return nil, fmt.Errorf("could not render grayscale data: %w", err)
	}
	conv, err := plot.MatrixImage(res.Conv, cm)
	if err != nil {
		return nil, fmt.Errorf("could not render convolution result: %w", err)
	}

	return plot.Sheet([4]plot.Panel{
		{Title: "grayscale", Image: data},
		{Title: "convolution", Image: conv},
		{Title: "original", Image: res.Source},
		{Title: "result", Image: res.Output},
	}, plotWidth)
}

func tempPlotFile() (string, error) {
	f, err := os.CreateTemp("", "edgekey-*.png")
	if err != nil {
		return "", fmt.Errorf("could not create plot file: %w", err)
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("could not close plot file %q: %w", name, err)
	}
	return name, nil
}
