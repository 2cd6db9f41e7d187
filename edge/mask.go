package edge

import (
	"image"

	"gonum.org/v1/gonum/mat"
)

// Mask is a boolean edge mask in image orientation: At(x, y).
type Mask struct {
	width  int
	height int
	data   []bool
}

func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]bool, width*height),
	}
}

// Threshold marks every cell of result strictly greater than edge. result is
// indexed (row y, column x); the returned mask is indexed (x, y).
func Threshold(result mat.Matrix, edge float64) *Mask {
	rows, cols := result.Dims()
	m := NewMask(cols, rows)
	for y := range rows {
		for x := range cols {
			m.data[y*cols+x] = result.At(y, x) > edge
		}
	}
	return m
}

func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// At reports whether (x, y) is an edge pixel. Out of range is false.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.data[y*m.width+x]
}

func (m *Mask) Set(x, y int, v bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = v
}

// Count returns the number of edge pixels.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.data {
		if v {
			n++
		}
	}
	return n
}
