package plot

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

const (
	titleHeight = 24
	margin      = 12
)

type Panel struct {
	Title string
	Image image.Image
}

// Sheet lays panels out on a 2×2 grid, row by row, each under its title.
// Panels share the size of the first one, scaled down so that a panel is at
// most maxWidth pixels wide. maxWidth <= 0 keeps the original size.
func Sheet(panels [4]Panel, maxWidth int) (image.Image, error) {
	for i, p := range panels {
		if p.Image == nil || p.Image.Bounds().Empty() {
			return nil, fmt.Errorf("panel %d (%q) has no image", i, p.Title)
		}
	}

	pw, ph := panelSize(panels[0].Image.Bounds(), maxWidth)
	width := 2*pw + 3*margin
	height := 2*(ph+titleHeight) + 3*margin

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for i, p := range panels {
		col, row := i%2, i/2
		x := margin + col*(pw+margin)
		y := margin + row*(ph+titleHeight+margin)

		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(p.Title, float64(x)+float64(pw)/2, float64(y)+titleHeight/2, 0.5, 0.5)
		dc.DrawImage(scale(p.Image, pw, ph), x, y+titleHeight)
	}

	return dc.Image(), nil
}

func panelSize(b image.Rectangle, maxWidth int) (int, int) {
	w, h := b.Dx(), b.Dy()
	if maxWidth <= 0 || w <= maxWidth {
		return w, h
	}
	s := float64(maxWidth) / float64(w)
	return maxWidth, max(1, int(math.Round(float64(h)*s)))
}

func scale(img image.Image, w, h int) image.Image {
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return img
	}
	dest := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dest, dest.Bounds(), img, b, draw.Over, nil)
	return dest
}
