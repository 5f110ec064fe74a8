package web

import (
	"github.com/jnb666/playground/dataset"
	"image"
	"image/color"
	"image/draw"
	"math"
)

const (
	pointRadius     = 5.0
	testPointRadius = 3.5
	edgeWidth       = 2.0
	testEdgeWidth   = 1.5
)

// BoundaryImage draws the decision boundary heatmap with the data points on
// top onto a size x size image. Canvas y runs downwards in the same way as the
// heatmap j index. Test points are skipped unless showTest is set.
func BoundaryImage(grid [][]float64, points []dataset.Point, showTest bool, size int) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(m, m.Bounds(), &image.Uniform{toNRGBA(background)}, image.Point{}, draw.Src)
	cells := len(grid)
	for i, col := range grid {
		for j, pred := range col {
			x0, y0 := i*size/cells, j*size/cells
			x1, y1 := (i+1)*size/cells, (j+1)*size/cells
			draw.Draw(m, image.Rect(x0, y0, x1, y1), &image.Uniform{boundaryColor(pred)}, image.Point{}, draw.Src)
		}
	}
	for _, p := range points {
		if p.Test && !showTest {
			continue
		}
		drawPoint(m, p, size)
	}
	return m
}

func drawPoint(m *image.NRGBA, p dataset.Point, size int) {
	fill, edge := pointColors(p)
	x, y := p.X*float64(size), p.Y*float64(size)
	r, w := pointRadius, edgeWidth
	if p.Test {
		r, w = testPointRadius, testEdgeWidth
	}
	disc(m, x, y, r+w/2, edge)
	disc(m, x, y, r-w/2, fill)
	if !p.Test {
		disc(m, x-1, y-1, 1.5, color.NRGBA{255, 255, 255, 128})
	}
}

// fill a circle centred on x, y compositing the colour over the image
func disc(m *image.NRGBA, x, y, r float64, c color.NRGBA) {
	rect := image.Rect(int(math.Floor(x-r)), int(math.Floor(y-r)), int(math.Ceil(x+r))+1, int(math.Ceil(y+r))+1)
	rect = rect.Intersect(m.Bounds())
	draw.DrawMask(m, rect, &image.Uniform{c}, image.Point{}, &circle{x, y, r}, rect.Min, draw.Over)
}

// circle is an alpha mask which is opaque inside the radius
type circle struct {
	x, y, r float64
}

func (c *circle) ColorModel() color.Model {
	return color.AlphaModel
}

func (c *circle) Bounds() image.Rectangle {
	return image.Rect(int(c.x-c.r)-1, int(c.y-c.r)-1, int(c.x+c.r)+2, int(c.y+c.r)+2)
}

func (c *circle) At(x, y int) color.Color {
	dx, dy := float64(x)+0.5-c.x, float64(y)+0.5-c.y
	if dx*dx+dy*dy <= c.r*c.r {
		return color.Alpha{255}
	}
	return color.Alpha{0}
}
