package plot

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Colormap maps t in [0, 1] to a colour.
type Colormap func(t float64) color.Color

// Gray maps 0 to black and 1 to white.
func Gray(t float64) color.Color {
	v := uint8(clamp01(t)*255 + 0.5)
	return color.RGBA{R: v, G: v, B: v, A: 0xFF}
}

var (
	divLow  = colorful.Color{R: 0.230, G: 0.299, B: 0.754}
	divMid  = colorful.Color{R: 0.865, G: 0.865, B: 0.865}
	divHigh = colorful.Color{R: 0.706, G: 0.016, B: 0.150}
)

// Diverging maps 0 to blue, 0.5 to light gray and 1 to red, blended in HCL.
func Diverging(t float64) color.Color {
	t = clamp01(t)
	var c colorful.Color
	if t < 0.5 {
		c = divLow.BlendHcl(divMid, t*2)
	} else {
		c = divMid.BlendHcl(divHigh, (t-0.5)*2)
	}
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// ColormapByName returns the colormap called name ("gray" or "diverging").
func ColormapByName(name string) (Colormap, error) {
	switch name {
	case "", "gray":
		return Gray, nil
	case "diverging":
		return Diverging, nil
	}
	return nil, fmt.Errorf("unknown colormap %q", name)
}

func clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}
